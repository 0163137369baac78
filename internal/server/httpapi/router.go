// Package httpapi exposes the service over HTTP: a gin router with the
// registration/login endpoints and the token-guarded promotion CRUD.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsmirnov/promoboard/internal/logging"
	"github.com/dsmirnov/promoboard/internal/server/auth"
	"github.com/dsmirnov/promoboard/internal/server/models"
)

// AuthService is the slice of UserService the HTTP layer depends on.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	TokenVerifier
}

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*auth.Claims, error)
}

// PromotionService is the promotion CRUD surface used by the handlers.
type PromotionService interface {
	Create(ctx context.Context, promo *models.Promotion) (*models.Promotion, error)
	Get(ctx context.Context, id int64) (*models.Promotion, error)
	List(ctx context.Context) ([]*models.Promotion, error)
	Update(ctx context.Context, promo *models.Promotion) error
	Delete(ctx context.Context, id int64) error
}

// NewRouter constructs the gin engine with all routes wired.
func NewRouter(log logging.Logger, authService AuthService, promoService PromotionService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ah := &authHandlers{service: authService, log: log}
	r.POST("/register", ah.register)
	r.POST("/login", ah.login)

	ph := &promotionHandlers{service: promoService, log: log}
	protected := r.Group("/promotions")
	protected.Use(AuthMiddleware(authService))
	{
		protected.POST("", ph.create)
		protected.GET("", ph.list)
		protected.GET("/:id", ph.get)
		protected.PUT("/:id", ph.update)
		protected.DELETE("/:id", ph.delete)
	}

	return r
}
