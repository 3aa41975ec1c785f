package cart

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront-widgets/internal/domain"
	"github.com/nikolayk812/storefront-widgets/internal/port"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

type entry struct {
	product  domain.Product
	quantity int
}

// Manager owns an in-memory cart. Lines keep the order in which products were
// first added and there is at most one line per product id. It is not safe for
// concurrent use.
type Manager struct {
	id      uuid.UUID
	unit    currency.Unit
	entries []entry
	index   map[int]int // product id -> position in entries
	log     zerolog.Logger
}

type Option func(*Manager)

func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

func WithID(id uuid.UUID) Option {
	return func(m *Manager) {
		m.id = id
	}
}

var _ port.Cart = (*Manager)(nil)

// New returns an empty cart whose totals are expressed in unit.
func New(unit currency.Unit, opts ...Option) *Manager {
	m := &Manager{
		id:    uuid.New(),
		unit:  unit,
		index: make(map[int]int),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With().Str("cart_id", m.id.String()).Logger()
	return m
}

func (m *Manager) ID() uuid.UUID {
	return m.id
}

func (m *Manager) Currency() currency.Unit {
	return m.unit
}

// AddItem increments the line for product.ID or appends a new line with quantity 1.
func (m *Manager) AddItem(product domain.Product) {
	if i, ok := m.index[product.ID]; ok {
		m.entries[i].quantity++
		m.log.Debug().
			Int("product_id", product.ID).
			Int("quantity", m.entries[i].quantity).
			Msg("cart_item_incremented")
		return
	}

	m.index[product.ID] = len(m.entries)
	m.entries = append(m.entries, entry{product: product, quantity: 1})
	m.log.Debug().
		Int("product_id", product.ID).
		Int("quantity", 1).
		Msg("cart_item_added")
}

// SetQuantity replaces the quantity of an existing line. A quantity <= 0
// removes the line. Unknown product ids are ignored.
func (m *Manager) SetQuantity(productID int, quantity int) {
	if quantity <= 0 {
		m.RemoveItem(productID)
		return
	}

	i, ok := m.index[productID]
	if !ok {
		m.log.Debug().Int("product_id", productID).Msg("cart_set_quantity_unknown_product")
		return
	}

	m.entries[i].quantity = quantity
	m.log.Debug().
		Int("product_id", productID).
		Int("quantity", quantity).
		Msg("cart_quantity_set")
}

// Increment is SetQuantity(id, current+1).
func (m *Manager) Increment(productID int) {
	if q, ok := m.Quantity(productID); ok {
		m.SetQuantity(productID, q+1)
	}
}

// Decrement is SetQuantity(id, current-1), so a line at quantity 1 is removed.
func (m *Manager) Decrement(productID int) {
	if q, ok := m.Quantity(productID); ok {
		m.SetQuantity(productID, q-1)
	}
}

// RemoveItem deletes the line for productID if present.
func (m *Manager) RemoveItem(productID int) {
	i, ok := m.index[productID]
	if !ok {
		m.log.Debug().Int("product_id", productID).Msg("cart_remove_unknown_product")
		return
	}

	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, productID)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].product.ID] = j
	}

	m.log.Debug().Int("product_id", productID).Msg("cart_item_removed")
}

// Clear drops every line.
func (m *Manager) Clear() {
	m.entries = nil
	m.index = make(map[int]int)
	m.log.Debug().Msg("cart_cleared")
}

func (m *Manager) Quantity(productID int) (int, bool) {
	i, ok := m.index[productID]
	if !ok {
		return 0, false
	}
	return m.entries[i].quantity, true
}

func (m *Manager) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *Manager) TotalItemCount() int {
	var total int
	for _, e := range m.entries {
		total += e.quantity
	}
	return total
}

// GrandTotal is the unrounded sum of line subtotals.
func (m *Manager) GrandTotal() domain.Money {
	total := domain.ZeroMoney(m.unit)
	for _, e := range m.entries {
		total = total.Add(e.product.Price.Mul(e.quantity))
	}
	return total
}

func (m *Manager) Lines() []domain.Line {
	lines := make([]domain.Line, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, domain.Line{
			Product:  e.product,
			Quantity: e.quantity,
			Subtotal: e.product.Price.Mul(e.quantity),
		})
	}
	return lines
}

func (m *Manager) Snapshot() domain.Cart {
	cart := domain.Cart{
		ID:    m.id,
		Lines: make([]domain.CartLine, 0, len(m.entries)),
	}
	for _, e := range m.entries {
		cart.Lines = append(cart.Lines, domain.CartLine{ProductID: e.product.ID, Quantity: e.quantity})
	}
	return cart
}

// ItemCountLabel renders the item counter shown next to the cart heading.
func (m *Manager) ItemCountLabel() string {
	n := m.TotalItemCount()
	if n == 1 {
		return "1 artículo"
	}
	return strconv.Itoa(n) + " artículos"
}
