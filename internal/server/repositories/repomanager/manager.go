package repomanager

import (
	"context"
	"database/sql"

	"github.com/dsmirnov/promoboard/internal/dbx"
	"github.com/dsmirnov/promoboard/internal/server/repositories/promotions"
	"github.com/dsmirnov/promoboard/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX (a *sql.DB or an open
// transaction) and exposes the schema migration hook run at startup.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Promotions(db dbx.DBTX) promotions.Repository
}
