package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DisplayPlaces is the number of decimal places money is rounded to for display.
const DisplayPlaces = 2

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Mul multiplies the amount by an integer quantity. No rounding is applied.
func (m Money) Mul(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

// Add sums two amounts, keeping the receiver's currency.
func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) StringFixed() string {
	return m.Amount.StringFixed(DisplayPlaces)
}

func (m Money) String() string {
	return m.Currency.String() + " " + m.StringFixed()
}
