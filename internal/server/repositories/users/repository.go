package users

import (
	"context"

	"github.com/dsmirnov/promoboard/internal/server/models"
)

// Repository is the credential store. Create must be atomic with respect to
// the username uniqueness constraint: of two concurrent inserts with the same
// username, exactly one succeeds and the other sees common.ErrorConflict.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
