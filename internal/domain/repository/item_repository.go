package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stockroom/internal/common"
	"stockroom/internal/domain/model"

	"github.com/google/uuid"
)

// ItemRepository is the minimal document-store interface the item service
// works against. The store is the sole source of generated ids and
// last_updated timestamps.
type ItemRepository interface {
	ListAll(ctx context.Context) ([]model.Item, error)
	Insert(ctx context.Context, name string, quantity int, description string) (*model.Item, error)
	FindByID(ctx context.Context, id string) (*model.Item, error)
	Replace(ctx context.Context, id string, item model.Item) (*model.Item, error)
	DeleteByID(ctx context.Context, id string) error
}

type pgItemRepository struct {
	db *sql.DB
}

func NewPgItemRepository(db *sql.DB) ItemRepository {
	return &pgItemRepository{db: db}
}

func (r *pgItemRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	query := `SELECT id, name, quantity, description, last_updated FROM items`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgItemRepository.ListAll: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Description, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("pgItemRepository.ListAll scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *pgItemRepository) Insert(ctx context.Context, name string, quantity int, description string) (*model.Item, error) {
	query := `INSERT INTO items (id, name, quantity, description, last_updated)
	          VALUES ($1, $2, $3, $4, now())
	          RETURNING id, name, quantity, description, last_updated`
	item := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name, quantity, description).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Description, &item.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("pgItemRepository.Insert: %w", err)
	}
	return item, nil
}

func (r *pgItemRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	query := `SELECT id, name, quantity, description, last_updated FROM items WHERE id = $1`
	item := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.Description, &item.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgItemRepository.FindByID: %w", err)
	}
	return item, nil
}

func (r *pgItemRepository) Replace(ctx context.Context, id string, item model.Item) (*model.Item, error) {
	query := `UPDATE items SET name = $1, quantity = $2, description = $3, last_updated = now()
	          WHERE id = $4
	          RETURNING id, name, quantity, description, last_updated`
	updated := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, item.Name, item.Quantity, item.Description, id).Scan(
		&updated.ID, &updated.Name, &updated.Quantity, &updated.Description, &updated.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgItemRepository.Replace: %w", err)
	}
	return updated, nil
}

func (r *pgItemRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgItemRepository.DeleteByID: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgItemRepository.DeleteByID: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
