package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseItemID parses the :id path parameter. The route only makes sense for
// integer IDs; anything else is indistinguishable from a missing item.
func parseItemID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// itemNotFound sends the 404 response body shared by GET, PUT and DELETE.
func itemNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Item not found",
	})
}

// internalError sends a generic 500 response. The underlying cause is
// logged but never surfaced to the client.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
