package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/dailydiet/internal/dbx"
	"github.com/dmitrijs2005/dailydiet/internal/server/repositories/meals"
	"github.com/dmitrijs2005/dailydiet/internal/server/repositories/users"
)

// RepositoryManager constructs repositories bound to an explicitly injected
// database handle. Services hold the *sql.DB opened at process start and
// pass it in per call; nothing reaches the database through package-level
// state.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Meals(db dbx.DBTX) meals.Repository
}
