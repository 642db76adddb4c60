package mock

import (
	"context"

	"github.com/fwojciec/catscrape"
)

var _ catscrape.DepartmentService = (*DepartmentService)(nil)

// DepartmentService is a mock implementation of catscrape.DepartmentService.
type DepartmentService struct {
	DepartmentsFn func(ctx context.Context) (map[string]string, error)
}

func (s *DepartmentService) Departments(ctx context.Context) (map[string]string, error) {
	return s.DepartmentsFn(ctx)
}
