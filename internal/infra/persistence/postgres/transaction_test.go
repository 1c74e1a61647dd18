package postgres

import (
	"context"
	"database/sql/driver"
	"testing"

	domainerrors "vaxtrack/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTransientTxError_RetryableFailures(t *testing.T) {
	retryable := map[string]error{
		"serialization failure": &pgconn.PgError{Code: "40001"},
		"deadlock detected":     &pgconn.PgError{Code: "40P01"},
		"cannot connect now":    &pgconn.PgError{Code: "57P03"},
		"too many connections":  &pgconn.PgError{Code: "53300"},
		"connection exception":  &pgconn.PgError{Code: "08006"},
		"bad connection":        errors.Wrap(driver.ErrBadConn, "commit"),
		"network timeout":       timeoutError{},
	}

	for name, err := range retryable {
		t.Run(name, func(t *testing.T) {
			assert.True(t, isTransientTxError(err))
		})
	}
}

func TestIsTransientTxError_DeliberateOutcomesNeverRetry(t *testing.T) {
	final := map[string]error{
		"nil":                    nil,
		"context canceled":       context.Canceled,
		"context deadline":       context.DeadlineExceeded,
		"authorization denied":   domainerrors.ErrForbidden,
		"wrapped domain error":   errors.Wrap(domainerrors.ErrRefreshTokenReused, "refresh"),
		"session limit":          domainerrors.ErrSessionLimitExceeded,
		"unique violation":       &pgconn.PgError{Code: "23505"},
		"plain business failure": errors.New("email already registered"),
	}

	for name, err := range final {
		t.Run(name, func(t *testing.T) {
			assert.False(t, isTransientTxError(err))
		})
	}
}
