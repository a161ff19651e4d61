package coinaddress

import "math/big"

// AddressLen is the decoded length of a standard base58check address:
// 1 version byte, a 20 byte hash and a 4 byte checksum.
const AddressLen = 1 + 20 + ChecksumLen

// bigToBytes returns the minimal big-endian representation of n.
// Zero maps to the single byte 0x00, never an empty slice.
func bigToBytes(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// padLeft prepends zero bytes until b is length bytes long.
// Slices already at or beyond length are returned unchanged, never truncated.
func padLeft(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	out := make([]byte, length)
	copy(out[length-len(b):], b)
	return out
}
