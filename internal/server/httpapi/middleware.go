package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dsmirnov/promoboard/internal/common"
	"github.com/dsmirnov/promoboard/internal/logging"
)

// RequestIDMiddleware assigns every request a UUID, echoes it in the
// X-Request-Id response header, and logs the request outcome.
func RequestIDMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// AuthMiddleware is the verification gate in front of protected routes.
//
// A request without a bearer credential is rejected with 403 before the
// verifier is consulted. A token that fails verification is rejected with
// 401: expired tokens and bad signatures are both authorization failures,
// not server faults. On success the claims travel with the request context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			respondError(c, http.StatusForbidden, "MISSING_TOKEN", "no token provided")
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				respondError(c, http.StatusUnauthorized, "TOKEN_EXPIRED", "token has expired")
			} else {
				respondError(c, http.StatusUnauthorized, "INVALID_TOKEN", "failed to authenticate token")
			}
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. An absent header or a different scheme counts as missing.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", common.ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", common.ErrMissingToken
	}
	return parts[1], nil
}
