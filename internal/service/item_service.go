package service

import (
	"context"

	"github.com/catalogd/catalogd/internal/domain"
)

// ItemRepository defines the item data operations the service depends on
type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, input domain.NewItem) (int64, error)
	Update(ctx context.Context, id int64, update domain.ItemUpdate) error
	Delete(ctx context.Context, id int64) error
}

// ItemService handles item operations
type ItemService struct {
	itemRepo ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// List retrieves all items
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.List(ctx)
}

// Get retrieves an item by ID
func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// Create creates a new item and returns its generated ID
func (s *ItemService) Create(ctx context.Context, input domain.NewItem) (int64, error) {
	return s.itemRepo.Create(ctx, input)
}

// Update applies a partial update to an item
func (s *ItemService) Update(ctx context.Context, id int64, update domain.ItemUpdate) error {
	return s.itemRepo.Update(ctx, id, update)
}

// Delete removes an item
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}
