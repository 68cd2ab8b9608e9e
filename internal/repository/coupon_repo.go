package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mallkit/cart-service/internal/models"
)

type CouponRepo struct {
	db *sql.DB
}

func NewCouponRepo(db *sql.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

func (r *CouponRepo) GetByID(ctx context.Context, id int64) (*models.Coupon, error) {
	query := `SELECT id, name, discount_rate, period, expired_at FROM coupon WHERE id = $1`

	var c models.Coupon
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.DiscountRate, &c.Period, &c.ExpiredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepo) GetAll(ctx context.Context) ([]models.Coupon, error) {
	query := `SELECT id, name, discount_rate, period, expired_at FROM coupon ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []models.Coupon
	for rows.Next() {
		var c models.Coupon
		if err := rows.Scan(&c.ID, &c.Name, &c.DiscountRate, &c.Period, &c.ExpiredAt); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepo) Create(ctx context.Context, coupon models.Coupon) (int64, error) {
	query := `INSERT INTO coupon (name, discount_rate, period, expired_at)
		VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		coupon.Name, coupon.DiscountRate, coupon.Period, coupon.ExpiredAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
