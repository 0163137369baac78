package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmirnov/promoboard/internal/common"
	"github.com/dsmirnov/promoboard/internal/logging"
	"github.com/dsmirnov/promoboard/internal/server/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

// secretVerifier verifies tokens against a fixed secret, the way the real
// user service does.
type secretVerifier struct {
	secret []byte
}

func (v *secretVerifier) VerifyToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, v.secret)
}

func protectedRouter(t *testing.T, verifier TokenVerifier) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok, "claims must be attached after the gate")
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := protectedRouter(t, &secretVerifier{secret: []byte("k")})

	w := doRequest(r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	r := protectedRouter(t, &secretVerifier{secret: []byte("k")})

	w := doRequest(r, "Basic dXNlcjpwdw==")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_ForeignSecret(t *testing.T) {
	r := protectedRouter(t, &secretVerifier{secret: []byte("service-secret")})

	foreign, err := auth.GenerateToken(1, "eve", "user", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+foreign)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_Expired(t *testing.T) {
	secret := []byte("k")
	r := protectedRouter(t, &secretVerifier{secret: secret})

	expired, err := auth.GenerateToken(1, "bob", "user", secret, -time.Second)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	secret := []byte("k")
	r := protectedRouter(t, &secretVerifier{secret: secret})

	tok, err := auth.GenerateToken(7, "carol", "admin", secret, time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"empty", "", "", common.ErrMissingToken},
		{"no scheme", "abc", "", common.ErrMissingToken},
		{"wrong scheme", "Basic abc", "", common.ErrMissingToken},
		{"empty token", "Bearer ", "", common.ErrMissingToken},
		{"ok", "Bearer abc", "abc", nil},
		{"case insensitive scheme", "bearer abc", "abc", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bearerToken(tc.header)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got err %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequestIDMiddleware_SetsHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(testLogger()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
