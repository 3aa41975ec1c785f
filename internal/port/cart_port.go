package port

import (
	"github.com/nikolayk812/storefront-widgets/internal/domain"
)

type Cart interface {
	AddItem(product domain.Product)
	SetQuantity(productID int, quantity int)
	RemoveItem(productID int)

	TotalItemCount() int
	GrandTotal() domain.Money
	Lines() []domain.Line
	Snapshot() domain.Cart
}

type Catalog interface {
	Products() []domain.Product
	Product(id int) (domain.Product, bool)
}

// RandomSource returns a uniform integer in [0, n).
type RandomSource interface {
	IntN(n int) int
}
