package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hathive/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (customers/hats)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Customers
CREATE TABLE IF NOT EXISTS customers(
  customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  dob TEXT NOT NULL,
  email TEXT NOT NULL,
  contact_info TEXT NOT NULL,
  address TEXT NOT NULL
);

-- Hats (inventory)
CREATE TABLE IF NOT EXISTS hats(
  hat_id INTEGER PRIMARY KEY AUTOINCREMENT,
  brand_id INTEGER NOT NULL,
  brand_name TEXT NOT NULL,
  style TEXT NOT NULL,
  size INTEGER NOT NULL,
  quantity INTEGER NOT NULL CHECK (quantity >= 0),
  price NUMERIC NOT NULL CHECK (price >= 0)
);
CREATE INDEX IF NOT EXISTS idx_hats_brand ON hats(brand_name);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  order_id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_id INTEGER NOT NULL REFERENCES customers(customer_id) ON DELETE CASCADE,
  hat_id INTEGER NOT NULL REFERENCES hats(hat_id) ON DELETE CASCADE,
  date TEXT NOT NULL,
  quantity INTEGER NOT NULL CHECK (quantity > 0)
);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_hat ON orders(hat_id);

-- Delivery projections
CREATE TABLE IF NOT EXISTS delivery(
  delivery_id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
  arrival_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_delivery_order ON delivery(order_id);

-- Bills
CREATE TABLE IF NOT EXISTS bills(
  bill_id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL UNIQUE REFERENCES orders(order_id) ON DELETE CASCADE,
  tax NUMERIC NOT NULL,
  price NUMERIC NOT NULL,
  payment_method TEXT NOT NULL,
  payment_status TEXT,
  txn_ref TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM customers`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo customers/hats")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO customers(name,dob,email,contact_info,address) VALUES
	  ('Ada Hatfield','1990-04-12','ada@hathive.test','555-0101','12 Brim Lane'),
	  ('Felix Fedora','1985-11-30','felix@hathive.test','555-0102','9 Crown Court')`)

	tx.MustExec(`INSERT INTO hats(brand_id,brand_name,style,size,quantity,price) VALUES
	  (1,'Stetson','Fedora',7,10,49.99),
	  (1,'Stetson','Panama',8,4,59.50),
	  (2,'Kangol','Flat Cap',7,12,24.00)`)

	return tx.Commit()
}

// ClearAll truncates every table in dependency order with referential
// integrity checks suspended. Safe to run on an already-empty store.
func ClearAll(db *sqlx.DB) error {
	if _, err := db.Exec(`PRAGMA foreign_keys = OFF`); err != nil {
		return domain.DataAccess("clear: disable fk", err)
	}
	for _, table := range []string{"bills", "delivery", "orders", "hats", "customers"} {
		if _, err := db.Exec(`DELETE FROM ` + table); err != nil {
			return domain.DataAccess("clear "+table, err)
		}
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return domain.DataAccess("clear: enable fk", err)
	}
	return nil
}
