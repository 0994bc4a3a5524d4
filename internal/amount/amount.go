// Package amount holds the integer arithmetic of the credit ledger.
//
// All values are in the payment asset's smallest unit. Intermediate products are computed
// in 256 bits so they never wrap; results that do not fit an int64 are rejected.
package amount

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/and161185/pay2alpha/internal/errs"
)

// Cost returns credits * price.
func Cost(credits, price int64) (int64, error) {
	if credits <= 0 || price <= 0 {
		return 0, errs.ErrInvalidAmount
	}
	prod, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(uint64(credits)), uint256.NewInt(uint64(price)))
	if overflow || !fitsInt64(prod) {
		return 0, fmt.Errorf("cost %d x %d: %w", credits, price, errs.ErrInvalidAmount)
	}
	return int64(prod.Uint64()), nil
}

// Share returns total * count / granted, truncated toward zero.
//
// Summed over any sequence of counts whose total does not exceed granted, the shares never
// exceed total; the remainder stays with the payer of the shares.
func Share(total, count, granted int64) (int64, error) {
	if total < 0 || count <= 0 || granted <= 0 || count > granted {
		return 0, errs.ErrInvalidAmount
	}
	num := new(uint256.Int).Mul(uint256.NewInt(uint64(total)), uint256.NewInt(uint64(count)))
	q := new(uint256.Int).Div(num, uint256.NewInt(uint64(granted)))
	// q <= total because count <= granted
	return int64(q.Uint64()), nil
}

func fitsInt64(v *uint256.Int) bool {
	return v.IsUint64() && v.Uint64() <= 1<<63-1
}
