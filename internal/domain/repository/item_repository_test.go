package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"stockroom/internal/common"
	"stockroom/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var itemColumns = []string{"id", "name", "quantity", "description", "last_updated"}

func TestItemRepo_ListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, quantity, description, last_updated FROM items`)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow("item-1", "Widget", 5, "blue", now).
			AddRow("item-2", "Gadget", 0, "", now))

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Widget", items[0].Name)
	require.Equal(t, 0, items[1].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_ListAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, quantity, description, last_updated FROM items`)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestItemRepo_Insert_StoreAssignsIDAndTimestamp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO items`)).
		WithArgs(sqlmock.AnyArg(), "Widget", 5, "blue").
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow("item-1", "Widget", 5, "blue", now))

	item, err := repo.Insert(context.Background(), "Widget", 5, "blue")
	require.NoError(t, err)
	require.Equal(t, "item-1", item.ID)
	require.WithinDuration(t, now, item.LastUpdated, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, quantity, description, last_updated FROM items WHERE id = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestItemRepo_Replace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE items SET name = $1, quantity = $2, description = $3, last_updated = now()`)).
		WithArgs("Widget", 0, "blue", "item-1").
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow("item-1", "Widget", 0, "blue", now))

	updated, err := repo.Replace(context.Background(), "item-1", model.Item{
		Name: "Widget", Quantity: 0, Description: "blue",
	})
	require.NoError(t, err)
	require.Equal(t, 0, updated.Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_Replace_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE items SET`)).
		WithArgs("Widget", 1, "", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Replace(context.Background(), "missing", model.Item{Name: "Widget", Quantity: 1})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestItemRepo_DeleteByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
		WithArgs("item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteByID(context.Background(), "item-1"))
}

func TestItemRepo_DeleteByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgItemRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM items WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.DeleteByID(context.Background(), "missing"), common.ErrNotFound)
}
