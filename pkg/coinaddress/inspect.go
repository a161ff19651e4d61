package coinaddress

import "strings"

// Result describes the outcome of validating one address.
type Result struct {
	Address  string
	Currency *Currency // nil for a generic base58check check
	Version  byte
	Kind     string
	Err      error
}

// Valid reports whether the address passed every check.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Inspect validates addr against c, or as a generic base58check hash when
// c is nil, and labels the version byte when the currency knows it.
func Inspect(addr string, c *Currency) Result {
	res := Result{Address: addr, Currency: c}

	if c == nil {
		res.Version, res.Err = ValidateBase58Hash(addr)
		if res.Err == nil {
			res.Kind = kindOf(res.Version)
		}
		return res
	}

	res.Version, res.Err = c.Validate(addr)
	if res.Err == nil {
		res.Kind = c.Kind(res.Version)
	}
	return res
}

// kindOf labels a version byte with every currency that accepts it.
// Testnet (111) is shared, so it yields "BTC testnet, LTC testnet".
func kindOf(v byte) string {
	var kinds []string
	for _, c := range currencies {
		if k := c.Kind(v); k != "" {
			kinds = append(kinds, c.Symbol+" "+k)
		}
	}
	return strings.Join(kinds, ", ")
}
