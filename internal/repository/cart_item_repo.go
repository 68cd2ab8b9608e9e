package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/mallkit/cart-service/internal/models"
)

type CartItemRepo struct {
	db *sql.DB
}

func NewCartItemRepo(db *sql.DB) *CartItemRepo {
	return &CartItemRepo{db: db}
}

// Joined select shared by the cart-item reads. The is_deleted predicate makes
// items of soft-deleted products invisible even though their rows survive.
const cartItemSelect = `
	SELECT cart_item.id, cart_item.quantity,
	       member.id, member.name, member.password,
	       product.id, product.name, product.price, product.image_url, product.is_deleted
	FROM cart_item
	JOIN member ON cart_item.member_id = member.id
	JOIN product ON cart_item.product_id = product.id`

func scanCartItem(row interface{ Scan(...any) error }) (models.CartItem, error) {
	var c models.CartItem
	err := row.Scan(
		&c.ID, &c.Quantity,
		&c.Member.ID, &c.Member.Name, &c.Member.Password,
		&c.Product.ID, &c.Product.Name, &c.Product.Price, &c.Product.ImageURL, &c.Product.IsDeleted,
	)
	return c, err
}

func (r *CartItemRepo) GetByID(ctx context.Context, id int64) (*models.CartItem, error) {
	query := cartItemSelect + ` WHERE cart_item.id = $1 AND product.is_deleted = false`

	c, err := scanCartItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CartItemRepo) FindByMemberID(ctx context.Context, memberID int64) ([]models.CartItem, error) {
	query := cartItemSelect + `
		WHERE cart_item.member_id = $1 AND product.is_deleted = false
		ORDER BY cart_item.id`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		c, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// CountByIDsAndMemberID reports how many of ids exist, belong to memberID and
// reference a live product. The bulk delete compares this against len(ids).
func (r *CartItemRepo) CountByIDsAndMemberID(ctx context.Context, memberID int64, ids []int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM cart_item
		JOIN product ON cart_item.product_id = product.id
		WHERE cart_item.id = ANY($1) AND cart_item.member_id = $2 AND product.is_deleted = false`

	var count int
	if err := r.db.QueryRowContext(ctx, query, pq.Array(ids), memberID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CartItemRepo) Create(ctx context.Context, item models.CartItem) (int64, error) {
	query := `INSERT INTO cart_item (member_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, item.Member.ID, item.Product.ID, item.Quantity).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CartItemRepo) UpdateQuantity(ctx context.Context, item models.CartItem) error {
	query := `UPDATE cart_item SET quantity = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, item.Quantity, item.ID)
	return err
}

func (r *CartItemRepo) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM cart_item WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// DeleteByIDsAndMemberID only matches rows owned by memberID, so a foreign id
// slipping past the pre-check still cannot delete another member's item.
func (r *CartItemRepo) DeleteByIDsAndMemberID(ctx context.Context, memberID int64, ids []int64) error {
	query := `DELETE FROM cart_item WHERE id = ANY($1) AND member_id = $2`

	_, err := r.db.ExecContext(ctx, query, pq.Array(ids), memberID)
	return err
}

// DeleteByProductIDs is the cascade run when products are soft-deleted.
func (r *CartItemRepo) DeleteByProductIDs(ctx context.Context, productIDs []int64) error {
	query := `DELETE FROM cart_item WHERE product_id = ANY($1)`

	_, err := r.db.ExecContext(ctx, query, pq.Array(productIDs))
	return err
}
