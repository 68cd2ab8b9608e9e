package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mallkit/cart-service/internal/models"
)

type MemberCouponRepo struct {
	db *sql.DB
}

func NewMemberCouponRepo(db *sql.DB) *MemberCouponRepo {
	return &MemberCouponRepo{db: db}
}

const memberCouponSelect = `
	SELECT member_coupon.id, member_coupon.issued_at, member_coupon.expired_at, member_coupon.is_used,
	       member.id, member.name, member.password,
	       coupon.id, coupon.name, coupon.discount_rate, coupon.period, coupon.expired_at
	FROM member_coupon
	JOIN member ON member_coupon.member_id = member.id
	JOIN coupon ON member_coupon.coupon_id = coupon.id`

func scanMemberCoupon(row interface{ Scan(...any) error }) (models.MemberCoupon, error) {
	var mc models.MemberCoupon
	err := row.Scan(
		&mc.ID, &mc.IssuedAt, &mc.ExpiredAt, &mc.IsUsed,
		&mc.Member.ID, &mc.Member.Name, &mc.Member.Password,
		&mc.Coupon.ID, &mc.Coupon.Name, &mc.Coupon.DiscountRate, &mc.Coupon.Period, &mc.Coupon.ExpiredAt,
	)
	return mc, err
}

func (r *MemberCouponRepo) GetByMemberAndCoupon(ctx context.Context, memberID, couponID int64) (*models.MemberCoupon, error) {
	query := memberCouponSelect + ` WHERE member_coupon.member_id = $1 AND member_coupon.coupon_id = $2`

	mc, err := scanMemberCoupon(r.db.QueryRowContext(ctx, query, memberID, couponID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &mc, nil
}

func (r *MemberCouponRepo) FindAllByMemberID(ctx context.Context, memberID int64) ([]models.MemberCoupon, error) {
	query := memberCouponSelect + ` WHERE member_coupon.member_id = $1 ORDER BY member_coupon.id`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []models.MemberCoupon
	for rows.Next() {
		mc, err := scanMemberCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, mc)
	}
	return coupons, rows.Err()
}

func (r *MemberCouponRepo) ExistsByMemberAndCoupon(ctx context.Context, memberID, couponID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM member_coupon WHERE member_id = $1 AND coupon_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, memberID, couponID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *MemberCouponRepo) Create(ctx context.Context, mc models.MemberCoupon) (int64, error) {
	query := `INSERT INTO member_coupon (member_id, coupon_id, issued_at, expired_at, is_used)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		mc.Member.ID, mc.Coupon.ID, mc.IssuedAt, mc.ExpiredAt, mc.IsUsed).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update persists the whole mutable record, not just the used flag, so the
// stored row always matches the domain value that was validated.
func (r *MemberCouponRepo) Update(ctx context.Context, mc models.MemberCoupon) error {
	query := `UPDATE member_coupon SET issued_at = $1, expired_at = $2, is_used = $3 WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, mc.IssuedAt, mc.ExpiredAt, mc.IsUsed, mc.ID)
	return err
}
