package services

import (
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

// Fixed 7% tax on the pre-tax order total. No tiers, no exemptions.
var taxRate = decimal.New(7, -2)

// OrderTotal computes unit price x quantity in decimal to avoid float drift.
func OrderTotal(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// Tax returns the tax on a pre-tax total, rounded to cents.
func Tax(total decimal.Decimal) decimal.Decimal {
	return total.Mul(taxRate).Round(2)
}

// PaymentReference derives a deterministic transaction token from the order id
// and the charged amount. One-way; there is no payment network behind it.
func PaymentReference(orderID int64, amount decimal.Decimal) string {
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%d|%s", orderID, amount.StringFixed(2))))
	return hex.EncodeToString(sum[:16])
}
