package catalog

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront-widgets/internal/domain"
	"github.com/nikolayk812/storefront-widgets/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrInvalidProduct = errors.New("invalid product")

type catalog struct {
	products []domain.Product
	byID     map[int]int
}

// New builds a read-only catalog. All products must share one currency.
func New(products ...domain.Product) (port.Catalog, error) {
	c := &catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}

	var errs []error
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			errs = append(errs, fmt.Errorf("products[%d]: %w", i, err))
			continue
		}
		if _, ok := c.byID[p.ID]; ok {
			errs = append(errs, fmt.Errorf("products[%d]: id[%d] is duplicated: %w", i, p.ID, ErrInvalidProduct))
			continue
		}
		if len(c.products) > 0 && c.products[0].Price.Currency != p.Price.Currency {
			errs = append(errs, fmt.Errorf("products[%d]: currency[%s] differs from %s: %w",
				i, p.Price.Currency, c.products[0].Price.Currency, ErrInvalidProduct))
			continue
		}

		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return c, nil
}

// Default returns the storefront's built-in product list priced in unit.
func Default(unit currency.Unit) port.Catalog {
	price := func(s string) domain.Money {
		return domain.Money{Amount: decimal.RequireFromString(s), Currency: unit}
	}

	c, err := New(
		domain.Product{ID: 1, Name: "Laptop Quantum X", Description: "Procesador cuántico de última generación", Price: price("999.99")},
		domain.Product{ID: 2, Name: "Mouse Háptico", Description: "Control gestual avanzado", Price: price("129.99")},
		domain.Product{ID: 3, Name: "Teclado Neural", Description: "Respuesta táctil biomimética", Price: price("179.99")},
		domain.Product{ID: 4, Name: "Monitor Holográfico", Description: "Proyección 4D en tiempo real", Price: price("599.99")},
		domain.Product{ID: 5, Name: "Auriculares IA", Description: "Audio adaptativo con IA", Price: price("249.99")},
	)
	if err != nil {
		panic(fmt.Sprintf("catalog.Default: %v", err))
	}

	return c
}

func (c *catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *catalog) Product(id int) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func validateProduct(p domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("id[%d] name is empty: %w", p.ID, ErrInvalidProduct)
	}
	if p.Price.Amount.IsNegative() {
		return fmt.Errorf("id[%d] price[%s] is negative: %w", p.ID, p.Price.Amount, ErrInvalidProduct)
	}
	return nil
}
