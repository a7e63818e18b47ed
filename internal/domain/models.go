package domain

import "github.com/shopspring/decimal"

type Customer struct {
	ID      int64  `db:"customer_id"`
	Name    string `db:"name"`
	DOB     string `db:"dob"` // YYYY-MM-DD
	Email   string `db:"email"`
	Contact string `db:"contact_info"`
	Address string `db:"address"`
}

type Hat struct {
	ID        int64           `db:"hat_id"`
	BrandID   int64           `db:"brand_id"`
	BrandName string          `db:"brand_name"`
	Style     string          `db:"style"`
	Size      int             `db:"size"`
	Quantity  int             `db:"quantity"` // stock on hand, never negative
	Price     decimal.Decimal `db:"price"`
}

type Order struct {
	ID         int64  `db:"order_id"`
	CustomerID int64  `db:"customer_id"`
	HatID      int64  `db:"hat_id"`
	Date       string `db:"date"` // YYYY-MM-DD
	Quantity   int    `db:"quantity"`
}

type Delivery struct {
	ID          int64  `db:"delivery_id"`
	OrderID     int64  `db:"order_id"`
	ArrivalDate string `db:"arrival_date"`
}

// Bill links one order to its computed price, tax and payment outcome.
// PaymentStatus and TxnRef stay NULL until the payment step runs.
type Bill struct {
	ID            int64           `db:"bill_id"`
	OrderID       int64           `db:"order_id"`
	Tax           decimal.Decimal `db:"tax"`
	Price         decimal.Decimal `db:"price"`
	PaymentMethod string          `db:"payment_method"`
	PaymentStatus *string         `db:"payment_status"`
	TxnRef        *string         `db:"txn_ref"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
