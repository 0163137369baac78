package services

import (
	"context"
	"database/sql"

	"github.com/dsmirnov/promoboard/internal/server/models"
	"github.com/dsmirnov/promoboard/internal/server/repositories/repomanager"
)

// PromotionService provides CRUD operations on promotion records. Access
// control happens at the HTTP boundary; by the time a call reaches this
// service the bearer token has already been verified.
type PromotionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewPromotionService constructs a PromotionService.
func NewPromotionService(db *sql.DB, m repomanager.RepositoryManager) *PromotionService {
	return &PromotionService{db: db, repomanager: m}
}

// Create stores a new promotion and returns it with the assigned ID.
func (s *PromotionService) Create(ctx context.Context, promo *models.Promotion) (*models.Promotion, error) {
	return s.repomanager.Promotions(s.db).Create(ctx, promo)
}

// Get returns the promotion with the given ID or common.ErrorNotFound.
func (s *PromotionService) Get(ctx context.Context, id int64) (*models.Promotion, error) {
	return s.repomanager.Promotions(s.db).GetByID(ctx, id)
}

// List returns all promotions.
func (s *PromotionService) List(ctx context.Context) ([]*models.Promotion, error) {
	return s.repomanager.Promotions(s.db).List(ctx)
}

// Update overwrites the promotion with the given ID.
func (s *PromotionService) Update(ctx context.Context, promo *models.Promotion) error {
	return s.repomanager.Promotions(s.db).Update(ctx, promo)
}

// Delete removes the promotion with the given ID.
func (s *PromotionService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Promotions(s.db).Delete(ctx, id)
}
