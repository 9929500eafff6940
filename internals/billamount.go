package internals

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidBillAmount = errors.New("bill amount is not a non-negative number")

// ParseBillAmount parses the amount string stored on a bill. Amounts are kept
// as the exact string read off the bill, so every consumer parses through
// here.
func ParseBillAmount(amountStr string) (float64, error) {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, ErrInvalidBillAmount
	}
	if amount.IsNegative() {
		return 0, ErrInvalidBillAmount
	}
	return amount.InexactFloat64(), nil
}
