package coin

import (
	"fmt"
	"strings"
)

// Type identifies a supported cryptocurrency. The value is the slug the
// market-data API uses for the coin.
type Type string

const (
	Bitcoin  Type = "bitcoin"
	Ethereum Type = "ethereum"
	Litecoin Type = "litecoin"
)

// All returns the supported coins in report order.
func All() []Type {
	return []Type{Bitcoin, Ethereum, Litecoin}
}

// Valid reports whether t is a supported coin.
func (t Type) Valid() bool {
	switch t {
	case Bitcoin, Ethereum, Litecoin:
		return true
	}
	return false
}

// DisplayName returns the name shown in the report's first column.
func (t Type) DisplayName() string {
	switch t {
	case Bitcoin:
		return "Bitcoin"
	case Ethereum:
		return "Ethereum"
	case Litecoin:
		return "Litecoin"
	}
	return string(t)
}

func (t Type) String() string {
	return string(t)
}

// Parse accepts a coin slug in any case.
func Parse(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unsupported coin type %q", s)
	}
	return t, nil
}
