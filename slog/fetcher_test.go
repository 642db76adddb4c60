package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/catscrape/mock"
	catslog "github.com/fwojciec/catscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes, checksum, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := catslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://catalog.example.edu/content.php")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://catalog.example.edu/content.php")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "checksum=")
		assert.Contains(t, output, "duration=")
	})

	t.Run("identical content yields identical checksums", func(t *testing.T) {
		t.Parallel()

		var first, second bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>stable</html>", nil
			},
		}

		_, err := catslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&first, nil))).
			Fetch(context.Background(), "https://catalog.example.edu/a")
		require.NoError(t, err)
		_, err = catslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&second, nil))).
			Fetch(context.Background(), "https://catalog.example.edu/b")
		require.NoError(t, err)

		checksum := func(b *bytes.Buffer) string {
			s := b.String()
			i := len("checksum=") + bytes.Index(b.Bytes(), []byte("checksum="))
			return s[i : i+16]
		}
		assert.Equal(t, checksum(&first), checksum(&second))
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := catslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://catalog.example.edu/content.php")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}

func TestLoggingDepartmentService_Departments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DepartmentService{
		DepartmentsFn: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{"ACCT": "Accounting"}, nil
		},
	}

	service := catslog.NewLoggingDepartmentService(inner, logger)
	departments, err := service.Departments(context.Background())

	require.NoError(t, err)
	assert.Len(t, departments, 1)
	output := buf.String()
	assert.Contains(t, output, "department lookup")
	assert.Contains(t, output, "count=1")
	assert.Contains(t, output, "duration=")
}
