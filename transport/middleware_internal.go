package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/utils/errors"
)

const internalKeyHeader = "X-Internal-Key"

// InternalMiddleware checks for static API key in header, either
// X-Internal-Key: <key> or Authorization: Bearer <key>.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !keyMatches(r.Header.Get(internalKeyHeader), apiKey) &&
				!keyMatches(r.Header.Get("Authorization"), "Bearer "+apiKey) {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func keyMatches(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
