package models

// Product is catalog reference data. IsDeleted marks a soft delete: the row
// stays in storage but every cart-facing read excludes it.
type Product struct {
	ID        int64
	Name      string
	Price     int
	ImageURL  string
	IsDeleted bool
}
