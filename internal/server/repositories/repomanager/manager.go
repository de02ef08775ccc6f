// Package repomanager wires repository implementations to a concrete data
// store. The backend is chosen by the DSN scheme: postgres:// (pgx),
// mongodb:// (mongo-driver) or memory:// (in-process, used for development
// and tests).
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// RepositoryManager vends the repositories of one data store and owns its
// connection lifecycle.
type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository

	// RunMigrations brings the schema (or indexes) up to date.
	RunMigrations(ctx context.Context) error

	Close(ctx context.Context) error
}

// New selects a backend by DSN scheme and runs its migrations.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		m, err = NewPostgresRepositoryManager(dsn)
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		m, err = NewMongoRepositoryManager(ctx, dsn)
	case strings.HasPrefix(dsn, "memory://"):
		m = NewMemoryRepositoryManager()
	default:
		return nil, fmt.Errorf("unsupported database DSN: %q", dsn)
	}
	if err != nil {
		return nil, err
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
