package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hathive/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderDetail is the joined view shown on the order page and listings.
type OrderDetail struct {
	ID            int64           `db:"order_id"`
	CustomerID    int64           `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	HatID         int64           `db:"hat_id"`
	BrandName     string          `db:"brand_name"`
	Style         string          `db:"style"`
	Date          string          `db:"date"`
	Quantity      int             `db:"quantity"`
	ArrivalDate   string          `db:"arrival_date"`
	Price         decimal.Decimal `db:"price"`
	Tax           decimal.Decimal `db:"tax"`
	PaymentStatus string          `db:"payment_status"`
}

// Create inserts the order row and returns the store-assigned id.
// Runs against a transaction when the caller passes one.
func (r *OrderRepo) Create(q sqlx.Ext, customerID, hatID int64, date string, qty int) (int64, error) {
	res, err := q.Exec(`
	  INSERT INTO orders(customer_id, hat_id, date, quantity)
	  VALUES(?, ?, ?, ?)
	`, customerID, hatID, date, qty)
	if err != nil {
		return 0, domain.DataAccess("insert order", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.DataAccess("insert order", err)
	}
	return id, nil
}

// InsertDelivery records the projected arrival date for a placed order.
func (r *OrderRepo) InsertDelivery(q sqlx.Ext, orderID int64, arrivalDate string) error {
	_, err := q.Exec(`
	  INSERT INTO delivery(order_id, arrival_date)
	  VALUES(?, ?)
	`, orderID, arrivalDate)
	if err != nil {
		return domain.DataAccess("insert delivery", err)
	}
	return nil
}

func (r *OrderRepo) Get(orderID int64) (OrderDetail, error) {
	var o OrderDetail
	err := r.db.Get(&o, `
		SELECT o.order_id, o.customer_id, c.name AS customer_name,
		       o.hat_id, h.brand_name, h.style, o.date, o.quantity,
		       COALESCE(d.arrival_date,'') AS arrival_date,
		       COALESCE(b.price,0) AS price, COALESCE(b.tax,0) AS tax,
		       COALESCE(b.payment_status,'') AS payment_status
		FROM orders o
		JOIN customers c ON c.customer_id = o.customer_id
		JOIN hats h ON h.hat_id = o.hat_id
		LEFT JOIN delivery d ON d.order_id = o.order_id
		LEFT JOIN bills b ON b.order_id = o.order_id
		WHERE o.order_id = ?
	`, orderID)
	if err != nil {
		return OrderDetail{}, domain.DataAccess("get order", err)
	}
	return o, nil
}

func (r *OrderRepo) ListAll() ([]OrderDetail, error) {
	var out []OrderDetail
	err := r.db.Select(&out, `
		SELECT o.order_id, o.customer_id, c.name AS customer_name,
		       o.hat_id, h.brand_name, h.style, o.date, o.quantity,
		       COALESCE(d.arrival_date,'') AS arrival_date,
		       COALESCE(b.price,0) AS price, COALESCE(b.tax,0) AS tax,
		       COALESCE(b.payment_status,'') AS payment_status
		FROM orders o
		JOIN customers c ON c.customer_id = o.customer_id
		JOIN hats h ON h.hat_id = o.hat_id
		LEFT JOIN delivery d ON d.order_id = o.order_id
		LEFT JOIN bills b ON b.order_id = o.order_id
		ORDER BY o.order_id DESC
	`)
	if err != nil {
		return nil, domain.DataAccess("list orders", err)
	}
	return out, nil
}

func (r *OrderRepo) DeliveryFor(orderID int64) (domain.Delivery, error) {
	var d domain.Delivery
	err := r.db.Get(&d, `
		SELECT delivery_id, order_id, arrival_date
		FROM delivery
		WHERE order_id = ?
	`, orderID)
	if err != nil {
		return domain.Delivery{}, domain.DataAccess("get delivery", err)
	}
	return d, nil
}
