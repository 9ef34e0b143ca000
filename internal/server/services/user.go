// Package services contains the application services sitting between the
// HTTP layer and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dailydiet/internal/common"
	"github.com/dmitrijs2005/dailydiet/internal/server/models"
	"github.com/dmitrijs2005/dailydiet/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account. The password is stored only as a bcrypt
// digest. If presentedToken is non-empty (the caller already holds a session
// cookie) it is reused and bound to the new row; otherwise a fresh opaque
// token is minted. The returned minted flag tells the transport layer
// whether a new credential must be issued to the client.
//
// A second registration with the same email fails with
// common.ErrorAlreadyExists and writes no row.
func (s *UserService) Register(ctx context.Context, name, email, password, presentedToken string) (token string, minted bool, err error) {

	repo := s.repomanager.Users(s.db)

	_, err = repo.GetByEmail(ctx, email)
	if err == nil {
		return "", false, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", false, fmt.Errorf("error checking for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", false, fmt.Errorf("error hashing password: %w", err)
	}

	token = presentedToken
	if token == "" {
		token = uuid.NewString()
		minted = true
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		SessionToken: token,
	}

	if _, err := repo.Create(ctx, user); err != nil {
		return "", false, fmt.Errorf("error creating user: %w", err)
	}

	return token, minted, nil
}

// ResolveSession returns the user bound to the given opaque session token.
// An unknown token yields common.ErrorUnauthorized; the caller must not be
// able to distinguish a missing user from a revoked token.
func (s *UserService) ResolveSession(ctx context.Context, token string) (*models.User, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error resolving session: %w", err)
	}

	return user, nil
}
