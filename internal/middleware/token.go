package middleware

import (
	"net/http"
	"strings"

	"github.com/bloglist/bloglist/internal/auth"
)

// bearerPrefix is matched case-sensitively, mirroring the canonical
// "Authorization: Bearer <token>" form.
const bearerPrefix = "Bearer "

// TokenExtractor pulls the bearer token out of the Authorization header and
// stores it in the request context. A missing or malformed header is not an
// error at this stage; routes that require identity fail later in
// UserExtractor.
func TokenExtractor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if strings.HasPrefix(authorization, bearerPrefix) {
			token := strings.TrimPrefix(authorization, bearerPrefix)
			r = r.WithContext(auth.ContextWithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
