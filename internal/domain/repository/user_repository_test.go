package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"stockroom/internal/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "hashed_password", "created_at"}

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), "alice", "hash").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "alice", "hash", time.Now()))

	user, err := repo.Create(context.Background(), "alice", "hash")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Equal(t, "alice", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), "alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), "alice", "hash")
	require.ErrorIs(t, err, common.ErrDuplicateUser)
}

func TestUserRepo_FindByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = $1`)).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUserRepo_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "alice", "hash", time.Now()))

	user, err := repo.FindByID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
}
