package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/catalogd/catalogd/internal/domain"
	"github.com/catalogd/catalogd/internal/pkg/database"
	apperrors "github.com/catalogd/catalogd/internal/pkg/errors"
)

// ItemRepository handles item data operations in PostgreSQL. Every method
// dials its own connection and releases it before returning; nothing is
// pooled or cached across requests.
type ItemRepository struct {
	db *database.Postgres
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *database.Postgres) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemSelect = `
	SELECT i.id, i.name, i.description, i.price,
	       u.username AS owner, c.name AS category
	FROM items i
	JOIN users u ON i.user_id = u.id
	LEFT JOIN categories c ON i.category_id = c.id
`

// List retrieves all items joined with their owner and category
func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, itemSelect)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Owner,
			&item.Category,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	var item domain.Item
	err = conn.QueryRow(ctx, itemSelect+" WHERE i.id = $1", id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Owner,
		&item.Category,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("item")
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

// Create inserts a new item and returns the generated ID
func (r *ItemRepository) Create(ctx context.Context, input domain.NewItem) (int64, error) {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close(ctx)

	query := `
		INSERT INTO items (name, description, price, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err = conn.QueryRow(ctx, query,
		input.Name,
		input.Description,
		input.Price,
		input.UserID,
		input.CategoryID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create item: %w", err)
	}

	return id, nil
}

// Update applies a partial update to an existing item. The SET clause is
// assembled from a fixed enumeration of columns filtered by presence;
// updated_at is refreshed even when no other field is present. An existence
// check runs first, so a missing ID maps to not-found rather than a silent
// zero-row update.
func (r *ItemRepository) Update(ctx context.Context, id int64, update domain.ItemUpdate) error {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := itemExists(ctx, conn, id); err != nil {
		return err
	}

	assignments := []string{}
	params := []any{}

	appendField := func(column string, value any) {
		params = append(params, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if update.Name != nil {
		appendField("name", *update.Name)
	}
	if update.Description != nil {
		appendField("description", *update.Description)
	}
	if update.Price != nil {
		appendField("price", *update.Price)
	}
	if update.CategoryID != nil {
		appendField("category_id", *update.CategoryID)
	}

	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")

	params = append(params, id)
	query := fmt.Sprintf(
		"UPDATE items SET %s WHERE id = $%d",
		strings.Join(assignments, ", "),
		len(params),
	)

	if _, err := conn.Exec(ctx, query, params...); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return nil
}

// Delete removes an item. Deletion is physical and immediate; an existence
// check runs first so a missing ID maps to not-found.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := itemExists(ctx, conn, id); err != nil {
		return err
	}

	if _, err := conn.Exec(ctx, "DELETE FROM items WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// itemExists checks that a row with the given ID is present. The check and
// the following mutation are separate round trips on the same connection;
// the race between them is accepted.
func itemExists(ctx context.Context, conn *pgx.Conn, id int64) error {
	var found int64
	err := conn.QueryRow(ctx, "SELECT id FROM items WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("item")
		}
		return fmt.Errorf("failed to check item existence: %w", err)
	}
	return nil
}
