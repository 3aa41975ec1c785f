package domain

import (
	"github.com/google/uuid"
)

type Product struct {
	ID          int
	Name        string
	Description string
	Price       Money
}

// CartLine is the stored record: one per distinct product, Quantity >= 1.
type CartLine struct {
	ProductID int
	Quantity  int
}

// Line is the read-only view of a cart line used for rendering.
type Line struct {
	Product  Product
	Quantity int
	Subtotal Money
}

type Cart struct {
	ID    uuid.UUID
	Lines []CartLine
}
