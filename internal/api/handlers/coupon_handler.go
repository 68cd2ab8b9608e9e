package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/mallkit/cart-service/internal/api/middleware"
	"github.com/mallkit/cart-service/internal/models"
)

type MemberCouponService interface {
	Add(ctx context.Context, member models.Member, couponID int64) error
	GetMemberCoupons(ctx context.Context, memberID int64) ([]models.MemberCoupon, error)
	UseMemberCoupon(ctx context.Context, member models.Member, couponID int64) error
}

type CouponCatalog interface {
	GetAll(ctx context.Context) ([]models.Coupon, error)
}

type CouponResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DiscountRate int       `json:"discount_rate"`
	Period       int       `json:"period"`
	ExpiredAt    time.Time `json:"expired_at"`
}

type MemberCouponResponse struct {
	ID           int64     `json:"id"`
	CouponID     int64     `json:"coupon_id"`
	Name         string    `json:"name"`
	DiscountRate int       `json:"discount_rate"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiredAt    time.Time `json:"expired_at"`
	IsUsed       bool      `json:"is_used"`
}

type CouponHandler struct {
	catalog       CouponCatalog
	memberCoupons MemberCouponService
}

func NewCouponHandler(catalog CouponCatalog, memberCoupons MemberCouponService) *CouponHandler {
	return &CouponHandler{
		catalog:       catalog,
		memberCoupons: memberCoupons,
	}
}

// List handles GET /coupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.catalog.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, CouponResponse{
			ID:           c.ID,
			Name:         c.Name,
			DiscountRate: c.DiscountRate,
			Period:       c.Period,
			ExpiredAt:    c.ExpiredAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Issue handles POST /coupons/{id}
func (h *CouponHandler) Issue(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	couponID, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid coupon id")
		return
	}

	if err := h.memberCoupons.Add(r.Context(), member, couponID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nil)
}

// MyCoupons handles GET /members/coupons
func (h *CouponHandler) MyCoupons(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	coupons, err := h.memberCoupons.GetMemberCoupons(r.Context(), member.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]MemberCouponResponse, 0, len(coupons))
	for _, mc := range coupons {
		out = append(out, MemberCouponResponse{
			ID:           mc.ID,
			CouponID:     mc.Coupon.ID,
			Name:         mc.Coupon.Name,
			DiscountRate: mc.Coupon.DiscountRate,
			IssuedAt:     mc.IssuedAt,
			ExpiredAt:    mc.ExpiredAt,
			IsUsed:       mc.IsUsed,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Use handles POST /members/coupons/{id}/use
func (h *CouponHandler) Use(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFrom(r.Context())
	if !ok {
		writeError(w, models.ErrAuthentication)
		return
	}

	couponID, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid coupon id")
		return
	}

	if err := h.memberCoupons.UseMemberCoupon(r.Context(), member, couponID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
