package models

import "time"

// MemberCoupon is one issuance of a Coupon to a Member. IsUsed only ever
// moves from false to true.
type MemberCoupon struct {
	ID        int64
	Member    Member
	Coupon    Coupon
	IssuedAt  time.Time
	ExpiredAt time.Time
	IsUsed    bool
}

// NewMemberCoupon issues the coupon at now; the redemption window is the
// coupon's period in days from the issuance time.
func NewMemberCoupon(member Member, coupon Coupon, now time.Time) MemberCoupon {
	return MemberCoupon{
		Member:    member,
		Coupon:    coupon,
		IssuedAt:  now,
		ExpiredAt: now.AddDate(0, 0, coupon.Period),
		IsUsed:    false,
	}
}

func (mc MemberCoupon) CheckOwner(member Member) error {
	if mc.Member.ID != member.ID {
		return ErrNotOwner
	}
	return nil
}

// CanUse holds only while the issuance is unredeemed and unexpired. Both
// conditions are necessary.
func (mc MemberCoupon) CanUse(now time.Time) bool {
	return !mc.IsUsed && now.Before(mc.ExpiredAt)
}

// Use returns the redeemed copy; the receiver is left untouched so callers
// persist the transition as one full-record update.
func (mc MemberCoupon) Use() MemberCoupon {
	mc.IsUsed = true
	return mc
}
