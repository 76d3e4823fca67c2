package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"barbershop/shared/failure"

	"github.com/lib/pq"
)

const pqClassConnectionException = "08"

// Classify turns connectivity failures into failure.ErrStoreUnavailable and leaves everything else untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, failure.ErrStoreUnavailable) {
		return err
	}

	if IsUnavailable(err) {
		return failure.StoreUnavailable(err)
	}

	return err
}

func IsUnavailable(err error) bool {
	if errors.Is(err, ErrNoConnection) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == pqClassConnectionException
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
