package address

import (
	"github.com/mrz1836/coinaddr/pkg/coinaddress"
)

// Request asks for one address to be validated.
// A nil Currency runs the generic base58check validation only.
type Request struct {
	Address  string
	Currency *coinaddress.Currency
}

// BatchRequest asks for many addresses to be validated against one currency.
type BatchRequest struct {
	Addresses []string
	Currency  *coinaddress.Currency
}

// Result is the outcome for one address.
// This is a framework-agnostic representation suitable for CLI or API display.
type Result struct {
	Index    int    // Position in the batch input
	Address  string
	Currency string // Currency name, or "any" for generic validation
	Version  byte
	Kind     string
	Err      error
}

// Valid reports whether the address passed every check.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Summary tallies a set of results.
type Summary struct {
	Total     int
	Valid     int
	Invalid   int
	ByOutcome map[string]int
}
