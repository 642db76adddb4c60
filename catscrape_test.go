package catscrape_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/catscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := catscrape.Errorf(catscrape.ENOTFOUND, "course %q not found", "test")

	assert.Equal(t, catscrape.ENOTFOUND, catscrape.ErrorCode(err))
	assert.Equal(t, "course \"test\" not found", catscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, catscrape.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("page 3: %w", catscrape.Errorf(catscrape.EUNPROCESSABLE, "row count mismatch"))

	assert.Equal(t, catscrape.EUNPROCESSABLE, catscrape.ErrorCode(err))
	assert.Equal(t, "row count mismatch", catscrape.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, catscrape.ErrorMessage(nil))
}
