package coinaddress

// ValidateBase58Hash validates a generic base58check hash and returns its
// version byte. The checks short-circuit in order: empty input (TooShort),
// alphabet (InvalidEncoding), checksum (HashMismatch).
//
// A decoded value shorter than AddressLen bytes is left-padded with zeros,
// so a single valid digit such as "1" reaches the checksum stage and is
// reported as HashMismatch rather than TooShort.
func ValidateBase58Hash(addr string) (byte, error) {
	if len(addr) == 0 {
		return 0, TooShort
	}

	n, ok := decodeBase58(addr)
	if !ok {
		return 0, InvalidEncoding
	}

	buf := padLeft(bigToBytes(n), AddressLen)
	if !verifyChecksum(buf) {
		return 0, HashMismatch
	}

	return buf[0], nil
}

// ValidateBTCAddress validates a Bitcoin address checksum and returns its
// version byte (0 mainnet P2PKH, 5 P2SH, 111 testnet).
func ValidateBTCAddress(addr string) (byte, error) {
	return Bitcoin.Validate(addr)
}

// ValidateLTCAddress validates a Litecoin address checksum and returns its
// version byte (48 mainnet, 111 testnet).
func ValidateLTCAddress(addr string) (byte, error) {
	return Litecoin.Validate(addr)
}
