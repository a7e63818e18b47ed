package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"hathive/internal/domain"
	"hathive/internal/repos"
	"hathive/internal/services"
)

func memdbAll(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one pooled conn, so every statement sees the same in-memory DB
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE customers(customer_id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, dob TEXT,
	  email TEXT, contact_info TEXT, address TEXT);
	CREATE TABLE hats(hat_id INTEGER PRIMARY KEY AUTOINCREMENT, brand_id INTEGER, brand_name TEXT,
	  style TEXT, size INTEGER, quantity INTEGER CHECK (quantity >= 0), price NUMERIC);
	CREATE TABLE orders(order_id INTEGER PRIMARY KEY AUTOINCREMENT, customer_id INTEGER, hat_id INTEGER,
	  date TEXT, quantity INTEGER);
	CREATE TABLE delivery(delivery_id INTEGER PRIMARY KEY AUTOINCREMENT, order_id INTEGER, arrival_date TEXT);
	CREATE TABLE bills(bill_id INTEGER PRIMARY KEY AUTOINCREMENT, order_id INTEGER UNIQUE, tax NUMERIC,
	  price NUMERIC, payment_method TEXT, payment_status TEXT, txn_ref TEXT);

	INSERT INTO customers(customer_id,name,dob,email,contact_info,address)
	  VALUES (3,'Ada Hatfield','1990-04-12','ada@hathive.test','555-0101','12 Brim Lane');
	INSERT INTO hats(hat_id,brand_id,brand_name,style,size,quantity,price)
	  VALUES (7,1,'Stetson','Fedora',7,10,19.99);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func newOrderService(db *sqlx.DB) *services.OrderService {
	return services.NewOrderService(db,
		repos.NewCustomerRepo(db),
		repos.NewHatRepo(db),
		repos.NewOrderRepo(db),
		repos.NewBillRepo(db))
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestOrderFlow_Place(t *testing.T) {
	db := memdbAll(t)
	svc := newOrderService(db)

	rcpt, err := svc.Place(services.PlaceOrderInput{
		CustomerID: 3, HatID: 7, Date: "2024-01-10", Quantity: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rcpt.OrderID == 0 {
		t.Fatal("no order id")
	}
	if rcpt.ArrivalDate != "2024-01-15" {
		t.Fatalf("want arrival 2024-01-15, got %s", rcpt.ArrivalDate)
	}
	if got := rcpt.Price.StringFixed(2); got != "39.98" {
		t.Fatalf("want price 39.98, got %s", got)
	}
	if got := rcpt.Tax.StringFixed(2); got != "2.80" {
		t.Fatalf("want tax 2.80, got %s", got)
	}
	if rcpt.TxnRef == "" {
		t.Fatal("no txn ref")
	}

	// stock decremented from 10 to 8
	qty, err := repos.NewHatRepo(db).Stock(7)
	if err != nil {
		t.Fatal(err)
	}
	if qty != 8 {
		t.Fatalf("want stock=8, got %d", qty)
	}

	// exactly one order, one delivery, one paid bill
	if n := countRows(t, db, "orders"); n != 1 {
		t.Fatalf("want 1 order, got %d", n)
	}
	d, err := repos.NewOrderRepo(db).DeliveryFor(rcpt.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if d.ArrivalDate != "2024-01-15" {
		t.Fatalf("bad delivery date: %s", d.ArrivalDate)
	}
	b, err := repos.NewBillRepo(db).ByOrder(rcpt.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if b.PaymentMethod != services.PaymentMethod {
		t.Fatalf("bad payment method: %s", b.PaymentMethod)
	}
	if b.PaymentStatus == nil || *b.PaymentStatus != "Paid" {
		t.Fatalf("bill not paid: %+v", b)
	}
	if b.TxnRef == nil || *b.TxnRef != rcpt.TxnRef {
		t.Fatalf("txn ref mismatch: %+v", b)
	}
}

func TestOrderFlow_InsufficientStock(t *testing.T) {
	db := memdbAll(t)
	svc := newOrderService(db)

	_, err := svc.Place(services.PlaceOrderInput{
		CustomerID: 3, HatID: 7, Date: "2024-01-10", Quantity: 11,
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}

	// zero writes
	for _, table := range []string{"orders", "delivery", "bills"} {
		if n := countRows(t, db, table); n != 0 {
			t.Fatalf("want 0 rows in %s, got %d", table, n)
		}
	}
	qty, _ := repos.NewHatRepo(db).Stock(7)
	if qty != 10 {
		t.Fatalf("stock mutated: %d", qty)
	}
}

func TestOrderFlow_UnknownCustomer(t *testing.T) {
	db := memdbAll(t)
	svc := newOrderService(db)

	_, err := svc.Place(services.PlaceOrderInput{
		CustomerID: 99, HatID: 7, Date: "2024-01-10", Quantity: 1,
	})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("want ErrCustomerNotFound, got %v", err)
	}
	if n := countRows(t, db, "orders"); n != 0 {
		t.Fatalf("want 0 orders, got %d", n)
	}
}

func TestOrderFlow_UnknownHat(t *testing.T) {
	db := memdbAll(t)
	svc := newOrderService(db)

	_, err := svc.Place(services.PlaceOrderInput{
		CustomerID: 3, HatID: 42, Date: "2024-01-10", Quantity: 1,
	})
	if !errors.Is(err, domain.ErrHatNotFound) {
		t.Fatalf("want ErrHatNotFound, got %v", err)
	}
}

func TestOrderFlow_DateValidation(t *testing.T) {
	db := memdbAll(t)
	svc := newOrderService(db)

	for _, bad := range []string{"2021-13-01", "31-12-2021", "", "2021-02-30"} {
		_, err := svc.Place(services.PlaceOrderInput{
			CustomerID: 3, HatID: 7, Date: bad, Quantity: 1,
		})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("date %q: want ValidationError, got %v", bad, err)
		}
	}
	if n := countRows(t, db, "orders"); n != 0 {
		t.Fatalf("rejected dates must not write, got %d orders", n)
	}

	rcpt, err := svc.Place(services.PlaceOrderInput{
		CustomerID: 3, HatID: 7, Date: "2021-12-31", Quantity: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if rcpt.ArrivalDate != "2022-01-05" {
		t.Fatalf("want arrival 2022-01-05, got %s", rcpt.ArrivalDate)
	}
}

// Two placements against a single remaining unit: the conditional decrement
// inside the transaction must let exactly one through.
func TestOrderFlow_LastUnitContention(t *testing.T) {
	db := memdbAll(t)
	svc := newOrderService(db)

	db.MustExec(`UPDATE hats SET quantity = 1 WHERE hat_id = 7`)

	in := services.PlaceOrderInput{CustomerID: 3, HatID: 7, Date: "2024-01-10", Quantity: 1}
	_, err1 := svc.Place(in)
	_, err2 := svc.Place(in)

	if err1 != nil {
		t.Fatalf("first placement should win: %v", err1)
	}
	if !errors.Is(err2, domain.ErrInsufficientStock) {
		t.Fatalf("second placement should fail with ErrInsufficientStock, got %v", err2)
	}
	qty, _ := repos.NewHatRepo(db).Stock(7)
	if qty != 0 {
		t.Fatalf("want stock=0, got %d", qty)
	}
	if n := countRows(t, db, "orders"); n != 1 {
		t.Fatalf("want exactly 1 order, got %d", n)
	}
}
