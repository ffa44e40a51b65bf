package grana

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the display currency for all amounts. Amounts are unsigned
// magnitudes; the direction of a transaction is carried by its kind,
// never by the sign.
const Currency = "BRL"

// Amount represents a monetary magnitude.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a numeric constant. It is mostly a test and
// construction helper.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}

// ParseAmount parses a user-entered amount. Both '.' and ',' are
// accepted as decimal separator, so "59,90" and "59.90" parse to the
// same value.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: v}, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsPositive() bool    { return a.value.IsPositive() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// String returns the plain decimal representation, e.g. "59.9".
func (a Amount) String() string { return a.value.String() }

// Display returns the amount formatted in the display currency, with
// its locale conventions, e.g. "R$59,90".
func (a Amount) Display() string {
	cur := *money.New(0, Currency).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// MarshalJSON persists the amount as a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts a JSON number, or a quoted decimal string for
// blobs written by hand.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.value = v
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
