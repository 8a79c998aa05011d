// ABOUTME: HTTP middleware for bearer-token authentication on API endpoints
// ABOUTME: Extracts the token from the Authorization header and adds the identity to context

package auth

import (
	"net/http"
	"strings"

	"github.com/taskwell/taskwell/internal/identity"
)

// invalidTokenBody is the static 400 response for missing or malformed headers.
const invalidTokenBody = "Invalid token"

// Middleware creates an HTTP middleware that verifies bearer tokens.
//
// The token is whatever follows the literal "Bearer " substring in the
// Authorization header. A header without that substring (including a missing
// header) is a malformed request and gets a 400 with a static body; a token
// the verifier rejects gets a 401 carrying the verification error.
func Middleware(verifier identity.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, token, found := strings.Cut(r.Header.Get("Authorization"), "Bearer ")
			if !found {
				http.Error(w, invalidTokenBody, http.StatusBadRequest)
				return
			}

			email, err := verifier.Verify(token)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			id := &Identity{Email: email}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
