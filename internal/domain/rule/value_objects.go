package rule

import "errors"

var ErrInvalidRequiredCoupons = errors.New("required coupons must be greater than 0")

// RequiredCoupons is the collect-N threshold of a reward rule. The
// positivity check lives here, not in the schema, so partial updates
// that leave the field untouched are exempt.
type RequiredCoupons struct {
	value int32
}

func NewRequiredCoupons(n int32) (RequiredCoupons, error) {
	if n <= 0 {
		return RequiredCoupons{}, ErrInvalidRequiredCoupons
	}
	return RequiredCoupons{value: n}, nil
}

func (r RequiredCoupons) Value() int32 {
	return r.value
}
