package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"hathive/internal/domain"
)

type HatRepo struct{ db *sqlx.DB }

func NewHatRepo(db *sqlx.DB) *HatRepo { return &HatRepo{db: db} }

func (r *HatRepo) Create(brandID int64, brandName, style string, size, qty int, price decimal.Decimal) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO hats(brand_id, brand_name, style, size, quantity, price)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, brandID, brandName, style, size, qty, price)
	if err != nil {
		return 0, domain.DataAccess("insert hat", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.DataAccess("insert hat", err)
	}
	return id, nil
}

func (r *HatRepo) ListAll() ([]domain.Hat, error) {
	var out []domain.Hat
	err := r.db.Select(&out, `
		SELECT hat_id, brand_id, brand_name, style, size, quantity, price
		FROM hats
		ORDER BY brand_name, style
	`)
	if err != nil {
		return nil, domain.DataAccess("list hats", err)
	}
	return out, nil
}

func (r *HatRepo) Get(id int64) (domain.Hat, error) {
	var h domain.Hat
	err := r.db.Get(&h, `
		SELECT hat_id, brand_id, brand_name, style, size, quantity, price
		FROM hats
		WHERE hat_id = ?
	`, id)
	if err == sql.ErrNoRows {
		return domain.Hat{}, domain.ErrHatNotFound
	}
	if err != nil {
		return domain.Hat{}, domain.DataAccess("get hat", err)
	}
	return h, nil
}

// UnitPrice returns the hat's price, or ErrHatNotFound.
func (r *HatRepo) UnitPrice(id int64) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.Get(&price, `SELECT price FROM hats WHERE hat_id = ?`, id)
	if err == sql.ErrNoRows {
		return decimal.Decimal{}, domain.ErrHatNotFound
	}
	if err != nil {
		return decimal.Decimal{}, domain.DataAccess("get unit price", err)
	}
	return price, nil
}

// Stock returns the current quantity on hand, or ErrHatNotFound.
func (r *HatRepo) Stock(id int64) (int, error) {
	var qty int
	err := r.db.Get(&qty, `SELECT quantity FROM hats WHERE hat_id = ?`, id)
	if err == sql.ErrNoRows {
		return 0, domain.ErrHatNotFound
	}
	if err != nil {
		return 0, domain.DataAccess("get stock", err)
	}
	return qty, nil
}

// DecrementStock subtracts "by" units in a single conditional statement.
// Zero rows affected means the stock guard failed: ErrInsufficientStock.
// Runs against a transaction when the caller passes one.
func (r *HatRepo) DecrementStock(q sqlx.Ext, hatID int64, by int) error {
	res, err := q.Exec(`
		UPDATE hats
		SET quantity = quantity - ?
		WHERE hat_id = ? AND quantity >= ?
	`, by, hatID, by)
	if err != nil {
		return domain.DataAccess("decrement stock", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
