package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	applog "hathive/internal/log"
	"hathive/internal/repos"
)

type AdminHandler struct {
	DB *sqlx.DB
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin_dashboard", fiber.Map{})
}

// POST /admin/clear
// Truncates all five tables in dependency order. Idempotent on an empty store.
func (h *AdminHandler) ClearAll(c *fiber.Ctx) error {
	if err := repos.ClearAll(h.DB); err != nil {
		applog.Error(c, "admin.clear.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not clear records"})
	}
	applog.Audit(c, "admin.clear", nil)
	return c.Redirect("/admin")
}
