package service

import (
	"context"
	"fmt"

	"github.com/mallkit/cart-service/internal/models"
)

type ProductStore interface {
	GetByID(ctx context.Context, id int64, includeDeleted bool) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product models.Product) (int64, error)
	SoftDelete(ctx context.Context, id int64) error
}

type cartItemCascader interface {
	DeleteByProductIDs(ctx context.Context, productIDs []int64) error
}

type ProductService struct {
	products  ProductStore
	cartItems cartItemCascader
}

func NewProductService(products ProductStore, cartItems cartItemCascader) *ProductService {
	return &ProductService{
		products:  products,
		cartItems: cartItems,
	}
}

func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, name string, price int, imageURL string) (int64, error) {
	id, err := s.products.Create(ctx, models.Product{Name: name, Price: price, ImageURL: imageURL})
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

// Remove soft-deletes the product and drops the cart items that reference it.
// The join filter already hides them; the cascade keeps storage from
// accumulating dead rows.
func (s *ProductService) Remove(ctx context.Context, id int64) error {
	product, err := s.products.GetByID(ctx, id, false)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}

	if err := s.products.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if err := s.cartItems.DeleteByProductIDs(ctx, []int64{id}); err != nil {
		return fmt.Errorf("cascade cart items: %w", err)
	}
	return nil
}
