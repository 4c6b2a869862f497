// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file bridges the identity-provider adapter into the request pipeline.
// Two flavors are provided:
//
//   - RequireAuth: hard gate. Requests without a verifiable bearer token are
//     rejected with 401 before reaching the handler.
//   - OptionalAuth: best-effort. A verifiable token attaches the principal;
//     anything else (absent, malformed, expired) leaves the request
//     anonymous and proceeds. Used only by download tracking, which records
//     events for signed-out visitors too.
//
// Both store the verified principal in the Gin context and mirror its id
// under the "userID" key consumed by the logger and the rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-partner-backend/internal/identity"
)

// ctxKeyPrincipal is the Gin context key under which the verified principal
// is stored.
const ctxKeyPrincipal = "principal"

// PrincipalFrom returns the verified principal attached by RequireAuth or
// OptionalAuth. The second return value is false for anonymous requests.
func PrincipalFrom(c *gin.Context) (*identity.Principal, bool) {
	v, ok := c.Get(ctxKeyPrincipal)
	if !ok {
		return nil, false
	}
	p, ok := v.(*identity.Principal)
	return p, ok && p != nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, returning "" when the header is absent or differently shaped.
func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// attach stores the principal and mirrors its id for downstream middleware.
func attach(c *gin.Context, p *identity.Principal) {
	c.Set(ctxKeyPrincipal, p)
	c.Set("userID", p.ID)
}

// RequireAuth returns a middleware that rejects requests lacking a valid
// session token with a 401 envelope. On success the principal is attached
// to the context for handlers and the rate limiter.
func RequireAuth(v *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := v.Verify(bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "authentication required",
			})
			return
		}
		attach(c, p)
		c.Next()
	}
}

// OptionalAuth returns a middleware that attaches a principal when a valid
// session token is present and otherwise leaves the request anonymous.
// Verification failures are intentionally swallowed here.
func OptionalAuth(v *identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, err := v.Verify(bearerToken(c)); err == nil {
			attach(c, p)
		}
		c.Next()
	}
}
