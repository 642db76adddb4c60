package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/catscrape"
)

// Ensure LoggingDepartmentService implements catscrape.DepartmentService.
var _ catscrape.DepartmentService = (*LoggingDepartmentService)(nil)

// LoggingDepartmentService wraps a DepartmentService with logging.
type LoggingDepartmentService struct {
	next   catscrape.DepartmentService
	logger *slog.Logger
}

// NewLoggingDepartmentService creates a new LoggingDepartmentService.
func NewLoggingDepartmentService(next catscrape.DepartmentService, logger *slog.Logger) *LoggingDepartmentService {
	return &LoggingDepartmentService{next: next, logger: logger}
}

// Departments delegates to the wrapped service and logs the operation.
func (s *LoggingDepartmentService) Departments(ctx context.Context) (departments map[string]string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("department lookup",
			"count", len(departments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Departments(ctx)
}
