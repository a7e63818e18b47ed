package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"hathive/internal/domain"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(name, dob, email, contact, address string) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO customers(name, dob, email, contact_info, address)
	  VALUES(?, ?, ?, ?, ?)
	`, name, dob, email, contact, address)
	if err != nil {
		return 0, domain.DataAccess("insert customer", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.DataAccess("insert customer", err)
	}
	return id, nil
}

func (r *CustomerRepo) ListAll() ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `
		SELECT customer_id, name, dob, email, contact_info, address
		FROM customers
		ORDER BY customer_id
	`)
	if err != nil {
		return nil, domain.DataAccess("list customers", err)
	}
	return out, nil
}

// Exists reports whether a customer row with the given id is present.
func (r *CustomerRepo) Exists(id int64) (bool, error) {
	var one int
	err := r.db.Get(&one, `SELECT 1 FROM customers WHERE customer_id = ?`, id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.DataAccess("check customer", err)
	}
	return true, nil
}
