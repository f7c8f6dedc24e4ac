package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mkorchagin/authsvc/internal/server/repositories/users"
)

func TestPostgresStore_Accessors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}

	s := &PostgresStore{
		db:    mockDB,
		users: users.NewPostgresRepository(mockDB),
	}

	if s.Conn() != mockDB {
		t.Fatal("Conn must return the underlying handle")
	}
	if s.Users() == nil {
		t.Fatal("Users must not be nil")
	}

	mock.ExpectClose()
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
