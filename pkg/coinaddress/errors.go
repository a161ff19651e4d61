package coinaddress

// ValidationError is the closed set of reasons an address is rejected.
// Values compare with == and errors.Is.
type ValidationError int

// Validation outcomes.
const (
	// TooShort means the address string is empty.
	TooShort ValidationError = iota + 1
	// InvalidEncoding means the address contains a character outside the base58 alphabet.
	InvalidEncoding
	// HashMismatch means the embedded checksum does not match the computed one.
	HashMismatch
	// NotBitcoin means the checksum is valid but the version byte is not a Bitcoin one.
	NotBitcoin
	// NotLitecoin means the checksum is valid but the version byte is not a Litecoin one.
	NotLitecoin
)

func (e ValidationError) Error() string {
	switch e {
	case TooShort:
		return "address is too short"
	case InvalidEncoding:
		return "address is not valid base58"
	case HashMismatch:
		return "address checksum mismatch"
	case NotBitcoin:
		return "address is not a bitcoin address"
	case NotLitecoin:
		return "address is not a litecoin address"
	default:
		return "unknown validation error"
	}
}

// Code returns a stable machine-readable name for the error.
func (e ValidationError) Code() string {
	switch e {
	case TooShort:
		return "TOO_SHORT"
	case InvalidEncoding:
		return "INVALID_ENCODING"
	case HashMismatch:
		return "HASH_MISMATCH"
	case NotBitcoin:
		return "NOT_BITCOIN"
	case NotLitecoin:
		return "NOT_LITECOIN"
	default:
		return "UNKNOWN"
	}
}
