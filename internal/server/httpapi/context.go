package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dsmirnov/promoboard/internal/server/auth"
)

const (
	claimsKey    = "auth_claims"
	requestIDKey = "request_id"
)

// setClaims attaches verified token claims to the request context.
func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}

// ClaimsFromContext returns the verified claims attached by the auth
// middleware. The second return value is false on unprotected routes.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
