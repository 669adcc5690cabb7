package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError marks bad user input. The CLI layer reports it as a
// usage error, distinct from unexpected internal failures.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidSymbol reports whether s is a well-formed USDT-M futures symbol:
// non-empty, alphanumeric only, ending in "USDT". Assumes s is already
// uppercased.
func ValidSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return strings.HasSuffix(s, "USDT")
}

// ParseSide accepts exactly BUY or SELL (input already uppercased).
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBuy, SideSell:
		return Side(s), nil
	default:
		return "", &ValidationError{Field: "side", Reason: "must be BUY or SELL"}
	}
}

// ParseQuantity parses a strictly positive decimal quantity.
func ParseQuantity(s string) (decimal.Decimal, error) {
	return parsePositive("quantity", s)
}

// ParsePrice parses a strictly positive decimal limit price.
func ParsePrice(s string) (decimal.Decimal, error) {
	return parsePositive("price", s)
}

func parsePositive(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	if d.Sign() <= 0 {
		return decimal.Decimal{}, &ValidationError{Field: field, Reason: "must be > 0"}
	}
	return d, nil
}
