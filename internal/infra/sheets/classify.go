package sheets

import (
	"errors"
	"net"

	"citas-unidades/internal/infra/store"

	"google.golang.org/api/googleapi"
)

// classify maps a Sheets API failure to a store error kind. The API signals
// quota exhaustion as 429, but older per-user quotas still arrive as 403
// with a rate-limit reason, so both spellings count as transient.
func classify(err error) store.ErrorKind {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 429:
			return store.KindRateLimited
		case gerr.Code == 403:
			for _, item := range gerr.Errors {
				if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
					return store.KindRateLimited
				}
			}
			return store.KindPermission
		case gerr.Code == 401:
			return store.KindPermission
		case gerr.Code == 404:
			return store.KindInvalid
		case gerr.Code == 408 || gerr.Code >= 500:
			return store.KindUnavailable
		default:
			return store.KindInvalid
		}
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return store.KindUnavailable
	}

	// Anything else at this level is a transport failure of some shape.
	return store.KindUnavailable
}
