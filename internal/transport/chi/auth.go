package chi

import (
	"net/http"

	"github.com/kailas-cloud/cvrdex/internal/domain"
)

const apiKeyHeader = "X-API-Key"

// exemptPaths are routes that bypass authentication and rate limiting.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// APIKeyAuthMiddleware returns a middleware that validates the X-API-Key header.
// If apiKeys is empty, authentication is disabled (pass-through).
func APIKeyAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	validKeys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			validKeys[k] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		// Auth disabled — pass everything through
		if len(validKeys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Exempt paths
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(apiKeyHeader)
			if key == "" {
				writeError(w, http.StatusForbidden, codeUnauthorized, "missing api key")
				return
			}

			if _, ok := validKeys[key]; !ok {
				writeError(w, http.StatusForbidden, codeUnauthorized, domain.ErrUnauthorized.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
