package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "hathive/internal/log"
	"hathive/internal/repos"
	"hathive/internal/validate"
)

type HatHandler struct {
	Hats *repos.HatRepo
}

// GET /hats
func (h *HatHandler) List(c *fiber.Ctx) error {
	rows, err := h.Hats.ListAll()
	if err != nil {
		applog.Error(c, "hats.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load hats"})
	}
	return render(c, "hats", fiber.Map{"Hats": rows})
}

// GET /hats/new
func (h *HatHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "hat_new", fiber.Map{})
}

// POST /hats
func (h *HatHandler) Create(c *fiber.Ctx) error {
	brandID, okBrandID := validate.ID(c.FormValue("brand_id"))
	brandName, okBrand := validate.Text(c.FormValue("brand_name"))
	style, okStyle := validate.Text(c.FormValue("style"))
	size, okSize := validate.NonNegInt(c.FormValue("size"))
	qty, okQty := validate.NonNegInt(c.FormValue("quantity"))
	price, perr := decimal.NewFromString(c.FormValue("price"))

	switch {
	case !okBrandID:
		return badField(c, "hat_new", "brand id must be a positive integer")
	case !okBrand:
		return badField(c, "hat_new", "brand name is required")
	case !okStyle:
		return badField(c, "hat_new", "style is required")
	case !okSize:
		return badField(c, "hat_new", "size must be a whole number")
	case !okQty:
		return badField(c, "hat_new", "quantity must be zero or more")
	case perr != nil || price.IsNegative():
		return badField(c, "hat_new", "price must be a non-negative amount")
	}

	id, err := h.Hats.Create(brandID, brandName, style, size, qty, price)
	if err != nil {
		applog.Error(c, "hats.create.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save the hat"})
	}
	applog.Audit(c, "hats.create", map[string]any{"hat_id": id})
	return c.Redirect("/hats")
}
