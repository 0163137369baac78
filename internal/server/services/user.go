// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and bearer-token
// verification for protected operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dsmirnov/promoboard/internal/common"
	"github.com/dsmirnov/promoboard/internal/dbx"
	"github.com/dsmirnov/promoboard/internal/server/auth"
	"github.com/dsmirnov/promoboard/internal/server/config"
	"github.com/dsmirnov/promoboard/internal/server/models"
	"github.com/dsmirnov/promoboard/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with bcrypt-hashed passwords
// - Login: verify credentials and mint a signed token
// - VerifyToken: the gate every protected request passes through
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username, password, and role.
// A taken username yields common.ErrorConflict. The lookup and insert run in
// one transaction, but the username uniqueness constraint in the store is
// what decides the winner when two registrations race.
func (s *UserService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Username: username, PasswordHash: passwordHash, Role: role}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrorConflict
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error searching user: %w", err)
		}

		created, err := repo.Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrorConflict) {
				return common.ErrorConflict
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		user = created
		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the provided password against the stored bcrypt digest and,
// on success, returns a signed token embedding the user's id, username, and
// role. Unknown usernames and wrong passwords both collapse into
// common.ErrorUnauthorized so callers cannot tell which field was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// VerifyToken validates the signature and expiry of a bearer token and
// returns its claims. The claims are the issuance-time snapshot; the live
// user record is not consulted.
func (s *UserService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.jwtSecret)
}
