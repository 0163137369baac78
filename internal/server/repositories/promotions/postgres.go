// Package promotions provides the PostgreSQL-backed promotion store.
package promotions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dsmirnov/promoboard/internal/common"
	"github.com/dsmirnov/promoboard/internal/dbx"
	"github.com/dsmirnov/promoboard/internal/server/models"
)

// PostgresRepository implements promotion storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a promotion and returns it with the assigned ID.
func (r *PostgresRepository) Create(ctx context.Context, promo *models.Promotion) (*models.Promotion, error) {
	query :=
		`INSERT INTO promotions (title, full_price, promo_price, location)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		promo.Title, promo.FullPrice, promo.PromoPrice, promo.Location).Scan(&promo.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return promo, nil
}

// GetByID returns the promotion with the given ID or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Promotion, error) {
	query :=
		`SELECT id, title, full_price, promo_price, location FROM promotions
		 WHERE id = $1
		 `

	promo := &models.Promotion{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&promo.ID, &promo.Title, &promo.FullPrice, &promo.PromoPrice, &promo.Location)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return promo, nil
}

// List returns all promotions ordered by ID.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Promotion, error) {
	query :=
		`SELECT id, title, full_price, promo_price, location FROM promotions
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Promotion
	for rows.Next() {
		var item models.Promotion
		if err := rows.Scan(&item.ID, &item.Title, &item.FullPrice, &item.PromoPrice, &item.Location); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update overwrites all mutable fields of the promotion with the given ID.
func (r *PostgresRepository) Update(ctx context.Context, promo *models.Promotion) error {
	query :=
		`UPDATE promotions
		 SET title = $1, full_price = $2, promo_price = $3, location = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		promo.Title, promo.FullPrice, promo.PromoPrice, promo.Location, promo.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireOneRow(res)
}

// Delete removes the promotion with the given ID.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM promotions
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
