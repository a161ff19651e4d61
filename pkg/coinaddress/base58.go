// Package coinaddress validates the checksum embedded in base58check
// cryptocurrency addresses (Bitcoin, Litecoin and compatible formats) and
// classifies the leading version byte.
//
// The pipeline is decode → pad → verify → classify: the address is read as
// a base-58 number, converted to big-endian bytes, left-padded to the
// standard 25-byte layout (1 version byte, 20 byte hash, 4 byte checksum),
// and the trailing four bytes are checked against the double SHA-256 of
// everything before them.
package coinaddress

import "math/big"

// Alphabet is the Bitcoin base58 alphabet (excludes 0, O, I, l).
// The position of a character is its digit value.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

//nolint:gochecknoglobals // Read-only lookup tables built once at package init
var (
	// bigRadix is never mutated; it is only ever passed as an operand.
	bigRadix = big.NewInt(int64(len(Alphabet)))

	// alphabetIndex maps an input byte to its digit value, or -1.
	alphabetIndex = buildAlphabetIndex()
)

func buildAlphabetIndex() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = int8(i) //nolint:gosec // G115: i < 58
	}
	return idx
}

// decodeBase58 interprets s as a base-58 number.
// It returns false on the first character outside the alphabet. Bytes of
// multi-byte UTF-8 sequences are never in the alphabet, so any non-ASCII
// rune fails the decode. Leading '1' digits add no magnitude.
func decodeBase58(s string) (*big.Int, bool) {
	res := new(big.Int)
	digit := new(big.Int)

	for i := 0; i < len(s); i++ {
		v := alphabetIndex[s[i]]
		if v < 0 {
			return nil, false
		}
		res.Mul(res, bigRadix)
		res.Add(res, digit.SetInt64(int64(v)))
	}

	return res, true
}
