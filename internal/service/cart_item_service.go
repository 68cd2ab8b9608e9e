package service

import (
	"context"
	"fmt"

	"github.com/mallkit/cart-service/internal/models"
)

// Storage collaborators are interfaces so tests can substitute fakes.

type ProductReader interface {
	GetByID(ctx context.Context, id int64, includeDeleted bool) (*models.Product, error)
}

type CartItemStore interface {
	GetByID(ctx context.Context, id int64) (*models.CartItem, error)
	FindByMemberID(ctx context.Context, memberID int64) ([]models.CartItem, error)
	CountByIDsAndMemberID(ctx context.Context, memberID int64, ids []int64) (int, error)
	Create(ctx context.Context, item models.CartItem) (int64, error)
	UpdateQuantity(ctx context.Context, item models.CartItem) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByIDsAndMemberID(ctx context.Context, memberID int64, ids []int64) error
}

type CartItemService struct {
	products  ProductReader
	cartItems CartItemStore
}

func NewCartItemService(products ProductReader, cartItems CartItemStore) *CartItemService {
	return &CartItemService{
		products:  products,
		cartItems: cartItems,
	}
}

// FindByMember lists the member's cart in insertion order. Items whose
// product has been soft-deleted are filtered out by the storage join.
func (s *CartItemService) FindByMember(ctx context.Context, member models.Member) ([]models.CartItem, error) {
	items, err := s.cartItems.FindByMemberID(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	return items, nil
}

// Add puts the product in the member's cart at quantity 1 and returns the new
// item id. Adding the same product twice creates two separate lines.
func (s *CartItemService) Add(ctx context.Context, member models.Member, productID int64) (int64, error) {
	product, err := s.products.GetByID(ctx, productID, false)
	if err != nil {
		return 0, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return 0, fmt.Errorf("product %d: %w", productID, models.ErrNotFound)
	}

	id, err := s.cartItems.Create(ctx, models.NewCartItem(member, *product))
	if err != nil {
		return 0, fmt.Errorf("create cart item: %w", err)
	}
	return id, nil
}

// UpdateQuantity sets the item's quantity. Quantity 0 is a removal command,
// never a stored zero.
func (s *CartItemService) UpdateQuantity(ctx context.Context, member models.Member, cartItemID int64, quantity int) error {
	item, err := s.loadOwned(ctx, member, cartItemID)
	if err != nil {
		return err
	}

	if quantity == 0 {
		if err := s.cartItems.DeleteByID(ctx, cartItemID); err != nil {
			return fmt.Errorf("delete cart item: %w", err)
		}
		return nil
	}

	if err := item.ChangeQuantity(quantity); err != nil {
		return err
	}
	if err := s.cartItems.UpdateQuantity(ctx, *item); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

func (s *CartItemService) Remove(ctx context.Context, member models.Member, cartItemID int64) error {
	if _, err := s.loadOwned(ctx, member, cartItemID); err != nil {
		return err
	}
	if err := s.cartItems.DeleteByID(ctx, cartItemID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// RemoveItems deletes every id or nothing. The pre-count rejects any mix of
// foreign, missing or dead-product ids before a single row is touched, and
// the delete itself is still scoped to the member.
func (s *CartItemService) RemoveItems(ctx context.Context, member models.Member, ids []int64) error {
	count, err := s.cartItems.CountByIDsAndMemberID(ctx, member.ID, ids)
	if err != nil {
		return fmt.Errorf("count cart items: %w", err)
	}
	if count != len(ids) {
		return models.ErrInvalidCartItems
	}

	if err := s.cartItems.DeleteByIDsAndMemberID(ctx, member.ID, ids); err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}
	return nil
}

// loadOwned is the shared load + ownership guard run before every single-item
// mutation. Ownership is re-checked on each call, never carried over.
func (s *CartItemService) loadOwned(ctx context.Context, member models.Member, cartItemID int64) (*models.CartItem, error) {
	item, err := s.cartItems.GetByID(ctx, cartItemID)
	if err != nil {
		return nil, fmt.Errorf("load cart item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("cart item %d: %w", cartItemID, models.ErrNotFound)
	}
	if err := item.CheckOwner(member); err != nil {
		return nil, err
	}
	return item, nil
}
