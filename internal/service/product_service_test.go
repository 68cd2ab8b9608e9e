package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mallkit/cart-service/internal/models"
)

func TestProductRemoveCascadesCartItems(t *testing.T) {
	products := newFakeProductRepo()
	cartItems := newFakeCartItemRepo(products)
	cartSvc := NewCartItemService(products, cartItems)
	svc := NewProductService(products, cartItems)

	id, err := svc.Create(context.Background(), "chicken", 10000, "http://img/chicken.png")
	require.NoError(t, err)

	member := models.Member{ID: 1, Name: "vero"}
	_, err = cartSvc.Add(context.Background(), member, id)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), id))

	// product is hidden and its cart rows are gone
	_, err = svc.GetByID(context.Background(), id)
	require.ErrorIs(t, err, models.ErrNotFound)
	require.Empty(t, cartItems.items)
}

func TestProductRemoveUnknownFails(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, newFakeCartItemRepo(products))

	require.ErrorIs(t, svc.Remove(context.Background(), 9), models.ErrNotFound)
}

func TestProductGetAllSkipsDeleted(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, newFakeCartItemRepo(products))

	keep, err := svc.Create(context.Background(), "chicken", 10000, "")
	require.NoError(t, err)
	drop, err := svc.Create(context.Background(), "pizza", 20000, "")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), drop))

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, keep, all[0].ID)
}
