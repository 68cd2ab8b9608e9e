package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCartItemStartsAtQuantityOne(t *testing.T) {
	member := Member{ID: 1, Name: "vero"}
	product := Product{ID: 10, Name: "chicken", Price: 10000}

	item := NewCartItem(member, product)

	require.Equal(t, 1, item.Quantity)
	require.Equal(t, member.ID, item.Member.ID)
	require.Equal(t, product.ID, item.Product.ID)
	require.Zero(t, item.ID)
}

func TestCartItemCheckOwner(t *testing.T) {
	owner := Member{ID: 1, Name: "vero"}
	other := Member{ID: 2, Name: "baron"}
	item := CartItem{ID: 5, Member: owner, Quantity: 3}

	require.NoError(t, item.CheckOwner(owner))
	require.ErrorIs(t, item.CheckOwner(other), ErrNotOwner)
}

func TestCartItemChangeQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		wantErr  error
	}{
		{name: "positive quantity", quantity: 7},
		{name: "zero is rejected", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative is rejected", quantity: -3, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CartItem{ID: 5, Member: Member{ID: 1}, Quantity: 1}
			err := item.ChangeQuantity(tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, 1, item.Quantity)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.quantity, item.Quantity)
		})
	}
}
