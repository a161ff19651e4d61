package coinaddress

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ChecksumLen is the number of trailing checksum bytes in an address.
const ChecksumLen = 4

// doubleHash computes SHA256(SHA256(b)).
func doubleHash(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// verifyChecksum reports whether the last ChecksumLen bytes of buf equal
// the first ChecksumLen bytes of the double hash of everything before them.
func verifyChecksum(buf []byte) bool {
	if len(buf) <= ChecksumLen {
		return false
	}
	split := len(buf) - ChecksumLen
	sum := doubleHash(buf[:split])
	return bytes.Equal(sum[:ChecksumLen], buf[split:])
}
