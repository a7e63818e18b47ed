package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hathive/internal/services"
	"hathive/internal/validate"
)

type InventoryHandler struct {
	Inv *services.InventoryService
}

// GET /api/v1/availability?hatId=N
func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	hatID, ok := validate.ID(c.Query("hatId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing or invalid hatId",
		})
	}

	avail, err := h.Inv.CheckAvailability(hatID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(avail)
}
