package models

import "time"

// Coupon is immutable reference data. Period is the validity window in days
// granted to a member at issuance; ExpiredAt bounds the coupon itself.
type Coupon struct {
	ID           int64
	Name         string
	DiscountRate int
	Period       int
	ExpiredAt    time.Time
}
