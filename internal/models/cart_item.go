package models

// CartItem binds a product to the member who put it in their cart. The owner
// is fixed at creation and every mutating operation re-checks it.
type CartItem struct {
	ID       int64
	Member   Member
	Product  Product
	Quantity int
}

// NewCartItem starts a fresh line item at quantity 1.
func NewCartItem(member Member, product Product) CartItem {
	return CartItem{
		Member:   member,
		Product:  product,
		Quantity: 1,
	}
}

// CheckOwner is the ownership guard invoked at the top of every mutating
// operation on the item.
func (c CartItem) CheckOwner(member Member) error {
	if c.Member.ID != member.ID {
		return ErrNotOwner
	}
	return nil
}

// ChangeQuantity rejects quantities below 1. Callers that want to interpret
// quantity 0 as a removal must do so before calling this.
func (c *CartItem) ChangeQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.Quantity = quantity
	return nil
}
