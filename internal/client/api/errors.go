package api

import (
	"fmt"

	"github.com/dmitrijs2005/eventhive/internal/common"
)

// Error is a typed failure for a non-2xx response, carrying the
// human-readable message extracted from the response body when present.
//
// It matches the shared sentinels through errors.Is:
//
//	errors.Is(err, common.ErrUnauthorized)  // 401 / 403
//	errors.Is(err, common.ErrNotFound)      // 404
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case common.ErrNotFound:
		return e.Status == 404
	}
	return false
}
