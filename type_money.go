package texops

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency is the operation's bookkeeping currency. Amounts are stored as
// plain decimal numbers; the currency only matters for display.
const Currency = "INR"

// Money represents a monetary value with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from common numeric types.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	}
	return decimal.Decimal{}
}

// ParseMoney parses a decimal string like "1100" or "99.50" into a Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Add(n Money) Money   { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money   { return Money{value: m.value.Sub(n.value)} }
func (m Money) Equal(n Money) bool  { return m.value.Equal(n.value) }
func (m Money) IsZero() bool        { return m.value.IsZero() }
func (m Money) IsNegative() bool    { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// MulQty multiplies the amount by an integer quantity.
func (m Money) MulQty(q int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(q)))}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Deprecated: AsFloat should no longer be used, the purpose is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// currency returns the display currency.
func (m Money) currency() *money.Currency {
	// the Money constructor guarantees a non nil currency.
	return money.New(0, Currency).Currency()
}

// String returns the formatted representation of the money value, e.g. "₹1,100.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON encodes the amount as a plain number rounded to the
// currency's fraction, matching the stored ledger format.
func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return rounded.MarshalJSON()
}

// UnmarshalJSON decodes a plain number into a Money.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.value = d
	return nil
}
