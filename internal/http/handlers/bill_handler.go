package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "hathive/internal/log"
	"hathive/internal/repos"
)

type BillHandler struct {
	Bills *repos.BillRepo
}

// GET /bills
// An order placed without a paid bill shows up here with a blank status,
// which is how the operator notices a payment step that never ran.
func (h *BillHandler) List(c *fiber.Ctx) error {
	rows, err := h.Bills.ListAll()
	if err != nil {
		applog.Error(c, "bills.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load bills"})
	}
	return render(c, "bills", fiber.Map{"Bills": rows})
}
