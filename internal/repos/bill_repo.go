package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hathive/internal/domain"
)

type BillRepo struct{ db *sqlx.DB }

func NewBillRepo(db *sqlx.DB) *BillRepo { return &BillRepo{db: db} }

// Create inserts the bill with payment fields left unset.
// Runs against a transaction when the caller passes one.
func (r *BillRepo) Create(q sqlx.Ext, orderID int64, price, tax decimal.Decimal, method string) (int64, error) {
	res, err := q.Exec(`
	  INSERT INTO bills(order_id, tax, price, payment_method)
	  VALUES(?, ?, ?, ?)
	`, orderID, tax, price, method)
	if err != nil {
		return 0, domain.DataAccess("insert bill", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.DataAccess("insert bill", err)
	}
	return id, nil
}

// MarkPaid sets the payment outcome exactly once; an already-paid bill
// is left untouched.
func (r *BillRepo) MarkPaid(q sqlx.Ext, billID int64, txnRef string) error {
	_, err := q.Exec(`
		UPDATE bills
		SET payment_status = 'Paid', txn_ref = ?
		WHERE bill_id = ? AND payment_status IS NULL
	`, txnRef, billID)
	if err != nil {
		return domain.DataAccess("mark bill paid", err)
	}
	return nil
}

func (r *BillRepo) ListAll() ([]domain.Bill, error) {
	var out []domain.Bill
	err := r.db.Select(&out, `
		SELECT bill_id, order_id, tax, price, payment_method, payment_status, txn_ref
		FROM bills
		ORDER BY bill_id DESC
	`)
	if err != nil {
		return nil, domain.DataAccess("list bills", err)
	}
	return out, nil
}

func (r *BillRepo) ByOrder(orderID int64) (domain.Bill, error) {
	var b domain.Bill
	err := r.db.Get(&b, `
		SELECT bill_id, order_id, tax, price, payment_method, payment_status, txn_ref
		FROM bills
		WHERE order_id = ?
	`, orderID)
	if err != nil {
		return domain.Bill{}, domain.DataAccess("get bill", err)
	}
	return b, nil
}
