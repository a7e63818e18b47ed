package services

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hathive/internal/domain"
	"hathive/internal/repos"
	"hathive/internal/validate"
)

// DeliveryLeadDays is the fixed interval between order date and projected arrival.
const DeliveryLeadDays = 5

// PaymentMethod is the only method the simulated processor supports.
const PaymentMethod = "Card"

type PlaceOrderInput struct {
	CustomerID int64
	HatID      int64
	Date       string // YYYY-MM-DD
	Quantity   int
}

// Receipt is what the confirmation page shows after a successful placement.
type Receipt struct {
	OrderID     int64
	ArrivalDate string
	Price       decimal.Decimal
	Tax         decimal.Decimal
	TxnRef      string
}

type OrderService struct {
	DB        *sqlx.DB
	Customers *repos.CustomerRepo
	Hats      *repos.HatRepo
	Orders    *repos.OrderRepo
	Bills     *repos.BillRepo
}

func NewOrderService(db *sqlx.DB, customers *repos.CustomerRepo, hats *repos.HatRepo, orders *repos.OrderRepo, bills *repos.BillRepo) *OrderService {
	return &OrderService{DB: db, Customers: customers, Hats: hats, Orders: orders, Bills: bills}
}

// Place runs the order workflow: validate, check customer and stock, then
// order insert, conditional stock decrement, delivery projection, bill and
// simulated payment, all inside one transaction. A failure after the order
// insert leaves nothing behind.
func (s *OrderService) Place(in PlaceOrderInput) (Receipt, error) {
	if in.CustomerID <= 0 {
		return Receipt{}, domain.Invalid("customer id", "must be a positive integer")
	}
	if in.HatID <= 0 {
		return Receipt{}, domain.Invalid("hat id", "must be a positive integer")
	}
	if in.Quantity <= 0 {
		return Receipt{}, domain.Invalid("quantity", "must be a positive integer")
	}
	date, ok := validate.Date(in.Date)
	if !ok {
		return Receipt{}, domain.Invalid("order date", "must be a real date in YYYY-MM-DD form")
	}

	ok, err := s.Customers.Exists(in.CustomerID)
	if err != nil {
		return Receipt{}, err
	}
	if !ok {
		return Receipt{}, domain.ErrCustomerNotFound
	}

	hat, err := s.Hats.Get(in.HatID)
	if err != nil {
		return Receipt{}, err
	}
	if in.Quantity > hat.Quantity {
		return Receipt{}, domain.ErrInsufficientStock
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return Receipt{}, domain.DataAccess("begin order tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	orderID, err := s.Orders.Create(tx, in.CustomerID, in.HatID, date, in.Quantity)
	if err != nil {
		return Receipt{}, err
	}

	// The guard on the decrement re-checks stock under the transaction, so
	// two interleaved placements can never both succeed on the last unit.
	if err := s.Hats.DecrementStock(tx, in.HatID, in.Quantity); err != nil {
		return Receipt{}, err
	}

	orderDate, _ := time.Parse("2006-01-02", date)
	arrival := orderDate.AddDate(0, 0, DeliveryLeadDays).Format("2006-01-02")
	if err := s.Orders.InsertDelivery(tx, orderID, arrival); err != nil {
		return Receipt{}, err
	}

	total := OrderTotal(hat.Price, in.Quantity)
	tax := Tax(total)
	billID, err := s.Bills.Create(tx, orderID, total, tax, PaymentMethod)
	if err != nil {
		return Receipt{}, err
	}

	ref := PaymentReference(orderID, total.Add(tax))
	if err := s.Bills.MarkPaid(tx, billID, ref); err != nil {
		return Receipt{}, err
	}

	if err := tx.Commit(); err != nil {
		return Receipt{}, domain.DataAccess("commit order tx", err)
	}

	return Receipt{OrderID: orderID, ArrivalDate: arrival, Price: total, Tax: tax, TxnRef: ref}, nil
}
