package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "hathive/internal/log"
	"hathive/internal/repos"
	"hathive/internal/validate"
)

type CustomerHandler struct {
	Customers *repos.CustomerRepo
}

// GET /customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	rows, err := h.Customers.ListAll()
	if err != nil {
		applog.Error(c, "customers.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load customers"})
	}
	return render(c, "customers", fiber.Map{"Customers": rows})
}

// GET /customers/new
func (h *CustomerHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "customer_new", fiber.Map{})
}

// POST /customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	name, okName := validate.Text(c.FormValue("name"))
	dob, okDOB := validate.Date(c.FormValue("dob"))
	email, okEmail := validate.Email(c.FormValue("email"))
	contact, okContact := validate.Text(c.FormValue("contact_info"))
	address, okAddr := validate.Text(c.FormValue("address"))

	switch {
	case !okName:
		return badField(c, "customer_new", "name is required")
	case !okDOB:
		return badField(c, "customer_new", "date of birth must be a real date in YYYY-MM-DD form")
	case !okEmail:
		return badField(c, "customer_new", "enter a valid email address")
	case !okContact:
		return badField(c, "customer_new", "contact info is required")
	case !okAddr:
		return badField(c, "customer_new", "address is required")
	}

	id, err := h.Customers.Create(name, dob, email, contact, address)
	if err != nil {
		applog.Error(c, "customers.create.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not save the customer"})
	}
	applog.Audit(c, "customers.create", map[string]any{"customer_id": id})
	return c.Redirect("/customers")
}

// badField re-renders a form page with a validation message.
func badField(c *fiber.Ctx, tmpl, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"msg": msg})
	return c.Status(fiber.StatusBadRequest).Render(tmpl, fiber.Map{"Err": msg})
}
