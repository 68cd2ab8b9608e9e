package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mallkit/cart-service/internal/cache"
	"github.com/mallkit/cart-service/internal/models"
)

type CouponReader interface {
	GetByID(ctx context.Context, id int64) (*models.Coupon, error)
}

type MemberCouponStore interface {
	GetByMemberAndCoupon(ctx context.Context, memberID, couponID int64) (*models.MemberCoupon, error)
	FindAllByMemberID(ctx context.Context, memberID int64) ([]models.MemberCoupon, error)
	ExistsByMemberAndCoupon(ctx context.Context, memberID, couponID int64) (bool, error)
	Create(ctx context.Context, mc models.MemberCoupon) (int64, error)
	Update(ctx context.Context, mc models.MemberCoupon) error
}

type MemberCouponService struct {
	coupons       CouponReader
	memberCoupons MemberCouponStore
	couponCache   *cache.CouponCache
	now           func() time.Time
}

func NewMemberCouponService(coupons CouponReader, memberCoupons MemberCouponStore) *MemberCouponService {
	return &MemberCouponService{
		coupons:       coupons,
		memberCoupons: memberCoupons,
		couponCache:   cache.NewCouponCache(),
		now:           time.Now,
	}
}

// Add issues the coupon to the member. The existence pre-check is a courtesy;
// the unique (member_id, coupon_id) constraint is the real guard under
// concurrent issuance.
func (s *MemberCouponService) Add(ctx context.Context, member models.Member, couponID int64) error {
	coupon, err := s.loadCoupon(ctx, couponID)
	if err != nil {
		return err
	}

	issued, err := s.memberCoupons.ExistsByMemberAndCoupon(ctx, member.ID, couponID)
	if err != nil {
		return fmt.Errorf("check issuance: %w", err)
	}
	if issued {
		return models.ErrAlreadyIssued
	}

	if _, err := s.memberCoupons.Create(ctx, models.NewMemberCoupon(member, coupon, s.now())); err != nil {
		return fmt.Errorf("create member coupon: %w", err)
	}
	return nil
}

// GetMemberCoupons lists every issuance for the member, used or not, joined
// with the coupon's descriptive fields.
func (s *MemberCouponService) GetMemberCoupons(ctx context.Context, memberID int64) ([]models.MemberCoupon, error) {
	coupons, err := s.memberCoupons.FindAllByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("find member coupons: %w", err)
	}
	return coupons, nil
}

// UseMemberCoupon redeems the member's issuance of couponID. ErrAlreadyUsed
// covers both a spent coupon and an expired one.
func (s *MemberCouponService) UseMemberCoupon(ctx context.Context, member models.Member, couponID int64) error {
	mc, err := s.memberCoupons.GetByMemberAndCoupon(ctx, member.ID, couponID)
	if err != nil {
		return fmt.Errorf("load member coupon: %w", err)
	}
	if mc == nil {
		return fmt.Errorf("member coupon for coupon %d: %w", couponID, models.ErrNotFound)
	}

	// The lookup is already member-scoped; the owner check stays anyway.
	if err := mc.CheckOwner(member); err != nil {
		return err
	}
	if !mc.CanUse(s.now()) {
		return models.ErrAlreadyUsed
	}

	if err := s.memberCoupons.Update(ctx, mc.Use()); err != nil {
		return fmt.Errorf("update member coupon: %w", err)
	}
	return nil
}

// loadCoupon consults the in-process cache first; coupons are immutable so a
// cached copy never goes stale.
func (s *MemberCouponService) loadCoupon(ctx context.Context, couponID int64) (models.Coupon, error) {
	if coupon, ok := s.couponCache.Get(couponID); ok {
		return coupon, nil
	}

	coupon, err := s.coupons.GetByID(ctx, couponID)
	if err != nil {
		return models.Coupon{}, fmt.Errorf("load coupon: %w", err)
	}
	if coupon == nil {
		return models.Coupon{}, fmt.Errorf("coupon %d: %w", couponID, models.ErrNotFound)
	}

	s.couponCache.Set(*coupon)
	return *coupon, nil
}
