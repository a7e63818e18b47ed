package handlers_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"hathive/internal/http/handlers"
	"hathive/internal/repos"
)

// Minimal app setup for form tests; CSRF is exercised separately in main.
func newFormApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// one pooled conn, so every statement sees the same in-memory DB
	db.SetMaxOpenConns(1)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/order/:id", deps.OrderHandler.View)
	api := app.Group("/api/v1")
	api.Get("/availability", deps.InventoryHandler.Check)

	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestPlaceOrder_RejectsBadDate(t *testing.T) {
	app := newFormApp(t)

	for _, bad := range []string{"2021-13-01", "31-12-2021", ""} {
		code, body := postForm(t, app, "/orders", url.Values{
			"customer_id": {"1"},
			"hat_id":      {"1"},
			"order_date":  {bad},
			"quantity":    {"1"},
		})
		if code != fiber.StatusBadRequest {
			t.Fatalf("date %q: expected 400, got %d", bad, code)
		}
		if !strings.Contains(body, "YYYY-MM-DD") {
			t.Fatalf("date %q: expected format hint in body", bad)
		}
	}
}

func TestPlaceOrder_RejectsMissingFields(t *testing.T) {
	app := newFormApp(t)

	code, _ := postForm(t, app, "/orders", url.Values{
		"hat_id":     {"1"},
		"order_date": {"2024-01-10"},
		"quantity":   {"1"},
	})
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing customer id, got %d", code)
	}
}

func TestPlaceOrder_RedirectsOnSuccess(t *testing.T) {
	app := newFormApp(t)

	// Seeded store: customer 1 and hat 1 exist with stock
	code, _ := postForm(t, app, "/orders", url.Values{
		"customer_id": {"1"},
		"hat_id":      {"1"},
		"order_date":  {"2024-01-10"},
		"quantity":    {"1"},
	})
	if code != fiber.StatusFound {
		t.Fatalf("expected 302 redirect to the confirmation page, got %d", code)
	}
}

func TestAvailability_Validation(t *testing.T) {
	app := newFormApp(t)

	req := httptest.NewRequest("GET", "/api/v1/availability", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without hatId, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/v1/availability?hatId=1", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "IN_STOCK") {
		t.Fatalf("seeded hat should be in stock; body=%s", body)
	}
}
