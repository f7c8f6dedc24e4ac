// Package db wires the Postgres connection, migrations, and repositories.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mkorchagin/authsvc/internal/server/migrations"
	"github.com/mkorchagin/authsvc/internal/server/repositories/users"
)

// PostgresStore owns the database handle and exposes the repositories built
// on top of it.
type PostgresStore struct {
	db    *sql.DB
	users users.Repository
}

func (s *PostgresStore) Conn() *sql.DB {
	return s.db
}

func (s *PostgresStore) Users() users.Repository {
	return s.users
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresStore opens the pgx stdlib driver against dsn, applies pending
// migrations, and returns the ready store.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := &PostgresStore{
		db:    db,
		users: users.NewPostgresRepository(db),
	}

	if err := s.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}
