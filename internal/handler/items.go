package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/catalogd/catalogd/internal/domain"
	apperrors "github.com/catalogd/catalogd/internal/pkg/errors"
)

// ItemService defines the item operations the handler depends on
type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, input domain.NewItem) (int64, error)
	Update(ctx context.Context, id int64, update domain.ItemUpdate) error
	Delete(ctx context.Context, id int64) error
}

// ItemsHandler handles item CRUD endpoints
type ItemsHandler struct {
	items  ItemService
	logger *zap.Logger
}

// NewItemsHandler creates a new items handler
func NewItemsHandler(items ItemService, logger *zap.Logger) *ItemsHandler {
	return &ItemsHandler{
		items:  items,
		logger: logger,
	}
}

// ListItems handles GET /items
func (h *ItemsHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.items.List(c.Context())
	if err != nil {
		h.logger.Error("failed to list items", zap.Error(err))
		return internalError(c)
	}

	return c.JSON(items)
}

// GetItem handles GET /items/:id
func (h *ItemsHandler) GetItem(c *fiber.Ctx) error {
	id, ok := parseItemID(c)
	if !ok {
		return itemNotFound(c)
	}

	item, err := h.items.Get(c.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return itemNotFound(c)
		}
		h.logger.Error("failed to get item", zap.Int64("item_id", id), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(item)
}

// CreateItem handles POST /items
func (h *ItemsHandler) CreateItem(c *fiber.Ctx) error {
	var input struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		UserID      *int64   `json:"user_id"`
		CategoryID  *int64   `json:"category_id"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Presence-only validation; values are passed through as supplied.
	if input.Name == nil || input.Price == nil || input.UserID == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	item := domain.NewItem{
		Name:       *input.Name,
		Price:      *input.Price,
		UserID:     *input.UserID,
		CategoryID: input.CategoryID,
	}
	if input.Description != nil {
		item.Description = *input.Description
	}

	id, err := h.items.Create(c.Context(), item)
	if err != nil {
		h.logger.Error("failed to create item", zap.Error(err))
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Item created successfully",
	})
}

// UpdateItem handles PUT /items/:id
func (h *ItemsHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := parseItemID(c)
	if !ok {
		return itemNotFound(c)
	}

	// The body is decoded into a key set first: an empty object is rejected,
	// but a body carrying only unrecognized keys still counts as data and
	// refreshes updated_at.
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No data provided",
		})
	}

	var update domain.ItemUpdate
	if raw, ok := payload["name"]; ok {
		_ = json.Unmarshal(raw, &update.Name)
	}
	if raw, ok := payload["description"]; ok {
		_ = json.Unmarshal(raw, &update.Description)
	}
	if raw, ok := payload["price"]; ok {
		_ = json.Unmarshal(raw, &update.Price)
	}
	if raw, ok := payload["category_id"]; ok {
		_ = json.Unmarshal(raw, &update.CategoryID)
	}

	if err := h.items.Update(c.Context(), id, update); err != nil {
		if apperrors.IsNotFound(err) {
			return itemNotFound(c)
		}
		h.logger.Error("failed to update item", zap.Int64("item_id", id), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Item updated successfully",
	})
}

// DeleteItem handles DELETE /items/:id
func (h *ItemsHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := parseItemID(c)
	if !ok {
		return itemNotFound(c)
	}

	if err := h.items.Delete(c.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			return itemNotFound(c)
		}
		h.logger.Error("failed to delete item", zap.Int64("item_id", id), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}
