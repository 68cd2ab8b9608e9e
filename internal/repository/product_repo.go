package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mallkit/cart-service/internal/models"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// GetByID filters soft-deleted rows unless includeDeleted is set. Cart-facing
// callers always pass false; admin tooling may need the raw row.
func (r *ProductRepo) GetByID(ctx context.Context, id int64, includeDeleted bool) (*models.Product, error) {
	query := `SELECT id, name, price, image_url, is_deleted FROM product WHERE id = $1`
	if !includeDeleted {
		query += ` AND is_deleted = false`
	}

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, price, image_url, is_deleted FROM product
		WHERE is_deleted = false ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.ImageURL, &p.IsDeleted); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepo) Create(ctx context.Context, product models.Product) (int64, error) {
	query := `INSERT INTO product (name, price, image_url) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, product.Name, product.Price, product.ImageURL).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// SoftDelete keeps the row; cart-facing reads exclude it from then on.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE product SET is_deleted = true WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
