package promotions

import (
	"context"

	"github.com/dsmirnov/promoboard/internal/server/models"
)

// Repository persists promotion records. Update and Delete report
// common.ErrorNotFound when no row matched the given ID.
type Repository interface {
	Create(ctx context.Context, promo *models.Promotion) (*models.Promotion, error)
	GetByID(ctx context.Context, id int64) (*models.Promotion, error)
	List(ctx context.Context) ([]*models.Promotion, error)
	Update(ctx context.Context, promo *models.Promotion) error
	Delete(ctx context.Context, id int64) error
}
