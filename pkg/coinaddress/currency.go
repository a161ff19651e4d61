package coinaddress

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/btcsuite/btcd/chaincfg"
)

// MaxTypoDistance is the largest edit distance SuggestCurrency will accept.
const MaxTypoDistance = 2

// Version is an accepted version byte and what it denotes.
type Version struct {
	Byte byte
	Kind string
}

// Currency is a base58check address family with its accepted version bytes.
type Currency struct {
	Name     string
	Symbol   string
	versions []Version
	reject   ValidationError
}

//nolint:gochecknoglobals // Litecoin network parameters are not shipped with btcd
var (
	litecoinMainNetParams = chaincfg.Params{Name: "litecoin-mainnet", PubKeyHashAddrID: 0x30}
	litecoinTestNetParams = chaincfg.Params{Name: "litecoin-testnet", PubKeyHashAddrID: 0x6f}
)

//nolint:gochecknoglobals // Immutable currency definitions
var (
	// Bitcoin accepts mainnet P2PKH, mainnet P2SH and testnet P2PKH.
	Bitcoin = &Currency{
		Name:   "bitcoin",
		Symbol: "BTC",
		versions: []Version{
			{Byte: chaincfg.MainNetParams.PubKeyHashAddrID, Kind: "P2PKH mainnet"},
			{Byte: chaincfg.MainNetParams.ScriptHashAddrID, Kind: "P2SH mainnet"},
			{Byte: chaincfg.TestNet3Params.PubKeyHashAddrID, Kind: "testnet"},
		},
		reject: NotBitcoin,
	}

	// Litecoin accepts mainnet and testnet P2PKH.
	Litecoin = &Currency{
		Name:   "litecoin",
		Symbol: "LTC",
		versions: []Version{
			{Byte: litecoinMainNetParams.PubKeyHashAddrID, Kind: "mainnet"},
			{Byte: litecoinTestNetParams.PubKeyHashAddrID, Kind: "testnet"},
		},
		reject: NotLitecoin,
	}

	currencies = []*Currency{Bitcoin, Litecoin}
)

// Validate checks the address checksum and then its version byte.
// Errors from ValidateBase58Hash are returned unchanged.
func (c *Currency) Validate(addr string) (byte, error) {
	v, err := ValidateBase58Hash(addr)
	if err != nil {
		return 0, err
	}
	if !c.Accepts(v) {
		return 0, c.RejectError()
	}
	return v, nil
}

// Accepts reports whether v is one of the currency's version bytes.
func (c *Currency) Accepts(v byte) bool {
	for _, ver := range c.versions {
		if ver.Byte == v {
			return true
		}
	}
	return false
}

// Kind returns the label for version byte v, or "" if v is not accepted.
func (c *Currency) Kind(v byte) string {
	for _, ver := range c.versions {
		if ver.Byte == v {
			return ver.Kind
		}
	}
	return ""
}

// Versions returns a copy of the accepted version bytes.
func (c *Currency) Versions() []Version {
	out := make([]Version, len(c.versions))
	copy(out, c.versions)
	return out
}

// RejectError is the error reported for a checksummed address whose
// version byte this currency does not accept.
func (c *Currency) RejectError() ValidationError {
	return c.reject
}

func (c *Currency) String() string {
	return c.Name
}

// Currencies returns all known currencies.
func Currencies() []*Currency {
	out := make([]*Currency, len(currencies))
	copy(out, currencies)
	return out
}

// LookupCurrency finds a currency by name or symbol, case-insensitively.
func LookupCurrency(name string) (*Currency, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range currencies {
		if name == c.Name || name == strings.ToLower(c.Symbol) {
			return c, true
		}
	}
	return nil, false
}

// SuggestCurrency returns the known name or symbol closest to input, or ""
// when nothing is within MaxTypoDistance. Equal distances go to the
// candidate sharing the longest prefix with input.
func SuggestCurrency(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	minDist := math.MaxInt
	bestPrefix := -1
	var suggestion string

	for _, c := range currencies {
		for _, candidate := range []string{c.Name, strings.ToLower(c.Symbol)} {
			dist := levenshtein.ComputeDistance(input, candidate)
			prefix := commonPrefixLen(input, candidate)
			if dist < minDist || (dist == minDist && prefix > bestPrefix) {
				minDist = dist
				bestPrefix = prefix
				suggestion = candidate
			}
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
