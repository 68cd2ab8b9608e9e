package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mallkit/cart-service/internal/models"
)

type stubMemberCouponService struct {
	err     error
	coupons []models.MemberCoupon
}

func (s *stubMemberCouponService) Add(context.Context, models.Member, int64) error {
	return s.err
}

func (s *stubMemberCouponService) GetMemberCoupons(context.Context, int64) ([]models.MemberCoupon, error) {
	return s.coupons, s.err
}

func (s *stubMemberCouponService) UseMemberCoupon(context.Context, models.Member, int64) error {
	return s.err
}

type stubCatalog struct {
	coupons []models.Coupon
}

func (s *stubCatalog) GetAll(context.Context) ([]models.Coupon, error) {
	return s.coupons, nil
}

func TestCouponIssueConflicts(t *testing.T) {
	h := NewCouponHandler(&stubCatalog{}, &stubMemberCouponService{err: models.ErrAlreadyIssued})

	rec := httptest.NewRecorder()
	h.Issue(rec, authedRequest(http.MethodPost, "/coupons/3", "", "3"))

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCouponUseStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "redeemed", err: nil, wantStatus: http.StatusOK},
		{name: "never issued", err: models.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "spent or expired", err: models.ErrAlreadyUsed, wantStatus: http.StatusConflict},
		{name: "not the owner", err: models.ErrNotOwner, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCouponHandler(&stubCatalog{}, &stubMemberCouponService{err: tt.err})

			rec := httptest.NewRecorder()
			h.Use(rec, authedRequest(http.MethodPost, "/members/coupons/3/use", "", "3"))

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMyCouponsCarriesCouponFields(t *testing.T) {
	coupons := []models.MemberCoupon{{
		ID:     1,
		Member: models.Member{ID: 1},
		Coupon: models.Coupon{ID: 3, Name: "welcome 10%", DiscountRate: 10},
	}}
	h := NewCouponHandler(&stubCatalog{}, &stubMemberCouponService{coupons: coupons})

	rec := httptest.NewRecorder()
	h.MyCoupons(rec, authedRequest(http.MethodGet, "/members/coupons", "", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"welcome 10%"`)
	require.Contains(t, rec.Body.String(), `"discount_rate":10`)
}
