package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hathive/internal/domain"
	applog "hathive/internal/log"
	"hathive/internal/repos"
	"hathive/internal/services"
	"hathive/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

func (h *OrderHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

// GET /orders/new
func (h *OrderHandler) NewForm(c *fiber.Ctx) error {
	h.ensureSID(c)
	return render(c, "order_new", fiber.Map{})
}

// POST /orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := h.ensureSID(c)

	customerID, okCust := validate.ID(c.FormValue("customer_id"))
	hatID, okHat := validate.ID(c.FormValue("hat_id"))
	qty, okQty := validate.Qty(c.FormValue("quantity"))

	switch {
	case !okCust:
		return badField(c, "order_new", "customer id must be a positive integer")
	case !okHat:
		return badField(c, "order_new", "hat id must be a positive integer")
	case !okQty:
		return badField(c, "order_new", "quantity must be a positive integer")
	}

	in := services.PlaceOrderInput{
		CustomerID: customerID,
		HatID:      hatID,
		Date:       c.FormValue("order_date"),
		Quantity:   qty,
	}

	rcpt, err := h.Order.Place(in)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			return badField(c, "order_new", verr.Error())
		case errors.Is(err, domain.ErrCustomerNotFound),
			errors.Is(err, domain.ErrHatNotFound),
			errors.Is(err, domain.ErrInsufficientStock):
			applog.Security(c, "order.place.fail", map[string]any{"sid": sid, "error": err.Error()})
			return c.Status(fiber.StatusBadRequest).Render("order_new", fiber.Map{"Err": err.Error()})
		default:
			applog.Error(c, "order.place.fail", err, map[string]any{"sid": sid})
			return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not place the order. Please try again."})
		}
	}

	applog.Audit(c, "order.place", map[string]any{
		"sid":      sid,
		"order_id": rcpt.OrderID,
		"price":    rcpt.Price.StringFixed(2),
		"tax":      rcpt.Tax.StringFixed(2),
		"txn_ref":  rcpt.TxnRef,
	})
	return c.Redirect("/order/" + strconv.FormatInt(rcpt.OrderID, 10))
}

// GET /order/:id
func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	o, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": o})
}

// GET /orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	rows, err := h.Repo.ListAll()
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "orders", fiber.Map{"Orders": rows})
}
