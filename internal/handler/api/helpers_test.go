//go:build unit

package api_test

import (
	"time"

	"library-circulation/internal/infra"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func notFoundErr(msg string) error {
	return infra.NewRepositoryError(msg, infra.KindNotFound)
}
