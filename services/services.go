// Package services holds the business logic between Fiber handlers and the
// repositories. Each entry point returns an HTTP status plus the payload to
// serialize, so handlers stay one-liners.
package services

import (
	"errors"

	"promcare/internal/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
