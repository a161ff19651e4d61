package coinaddress

import (
	"errors"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBase58Hash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    byte
		wantErr error
	}{
		{name: "bitcoin mainnet", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem", want: 0},
		{name: "bitcoin testnet", address: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn", want: 111},
		{name: "bitcoin P2SH", address: "3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX", want: 5},
		{name: "litecoin mainnet", address: "LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz", want: 48},
		{name: "zero hash160", address: "1111111111111111111114oLvT2", want: 0},
		{name: "corrupted checksum", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYheX", wantErr: HashMismatch},
		{name: "trailing spaces", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYh  ", wantErr: InvalidEncoding},
		{name: "single zero digit", address: "1", wantErr: HashMismatch},
		{name: "empty", address: "", wantErr: TooShort},
		{name: "ethereum address", address: "0x742d35Cc6634C0532925a3b844Bc9e7595f8b2E0", wantErr: InvalidEncoding},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateBase58Hash(tc.address)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, byte(0), got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateBase58Hash_InvalidCharacters(t *testing.T) {
	t.Parallel()

	const valid = "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"
	for _, bad := range []string{"0", "O", "I", "l", " ", "\t", "\n", "+", "/", "é", "\x00"} {
		for _, pos := range []int{0, len(valid) / 2, len(valid) - 1} {
			addr := valid[:pos] + bad + valid[pos+1:]
			_, err := ValidateBase58Hash(addr)
			assert.ErrorIs(t, err, InvalidEncoding, "address %q", addr)
		}
	}
}

func TestValidateBase58Hash_CorruptedLastCharacter(t *testing.T) {
	t.Parallel()

	const valid = "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem"
	prefix := valid[:len(valid)-1]

	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if c == valid[len(valid)-1] {
			continue
		}
		_, err := ValidateBase58Hash(prefix + string(c))
		assert.ErrorIs(t, err, HashMismatch, "last character %q", c)
	}
}

func TestValidateBase58Hash_MatchesReferenceDecoder(t *testing.T) {
	t.Parallel()

	addresses := []string{
		"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem",
		"mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
		"3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX",
		"LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz",
		"muen9zszN6rVwXaFw48xh6YkdUSjJcfzek",
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		"1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
		"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
	}

	for _, addr := range addresses {
		addr := addr
		t.Run(addr, func(t *testing.T) {
			t.Parallel()

			payload, wantVersion, err := base58.CheckDecode(addr)
			require.NoError(t, err)
			require.Len(t, payload, 20)

			got, err := ValidateBase58Hash(addr)
			require.NoError(t, err)
			assert.Equal(t, wantVersion, got)
		})
	}
}

func TestValidateBase58Hash_LongerThanAddress(t *testing.T) {
	t.Parallel()

	// payload plus 4-byte checksum decodes past 25 bytes and must not be cut
	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "26 bytes", payload: append([]byte{0x9c}, make([]byte, 21)...)},
		{name: "30 bytes", payload: append([]byte{0x05, 0xff}, make([]byte, 24)...)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw := append(append([]byte{}, tc.payload...), chainhash.DoubleHashB(tc.payload)[:4]...)
			addr := base58.Encode(raw)

			got, err := ValidateBase58Hash(addr)
			require.NoError(t, err)
			assert.Equal(t, tc.payload[0], got)

			raw[len(raw)-1] ^= 0x01
			_, err = ValidateBase58Hash(base58.Encode(raw))
			require.ErrorIs(t, err, HashMismatch)
		})
	}
}

func TestValidateBTCAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    byte
		wantErr error
	}{
		{name: "mainnet", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem", want: 0},
		{name: "script hash", address: "3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX", want: 5},
		{name: "testnet", address: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn", want: 111},
		{name: "litecoin address", address: "LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz", wantErr: NotBitcoin},
		{name: "checksum error passes through", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYheX", wantErr: HashMismatch},
		{name: "encoding error passes through", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYh  ", wantErr: InvalidEncoding},
		{name: "empty passes through", address: "", wantErr: TooShort},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateBTCAddress(tc.address)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateLTCAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    byte
		wantErr error
	}{
		{name: "mainnet", address: "LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz", want: 48},
		{name: "testnet", address: "muen9zszN6rVwXaFw48xh6YkdUSjJcfzek", want: 111},
		{name: "bitcoin address", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem", wantErr: NotLitecoin},
		{name: "bitcoin script hash", address: "3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX", wantErr: NotLitecoin},
		{name: "checksum error passes through", address: "17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYheX", wantErr: HashMismatch},
		{name: "single digit", address: "1", wantErr: HashMismatch},
		{name: "empty passes through", address: "", wantErr: TooShort},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateLTCAddress(tc.address)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem",
		"17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYheX",
		"LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz",
		"",
		"1",
		"not base58!",
	}

	for _, in := range inputs {
		v1, err1 := ValidateBase58Hash(in)
		v2, err2 := ValidateBase58Hash(in)
		assert.Equal(t, v1, v2)
		assert.Equal(t, err1, err2)

		b1, bErr1 := ValidateBTCAddress(in)
		b2, bErr2 := ValidateBTCAddress(in)
		assert.Equal(t, b1, b2)
		assert.Equal(t, bErr1, bErr2)
	}
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := ValidateLTCAddress("muen9zszN6rVwXaFw48xh6YkdUSjJcfzek")
			if err != nil {
				errs <- err
				return
			}
			if v != 111 {
				errs <- errors.New("unexpected version byte")
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, e := range []ValidationError{TooShort, InvalidEncoding, HashMismatch, NotBitcoin, NotLitecoin} {
		assert.NotEqual(t, "UNKNOWN", e.Code())
		assert.NotEqual(t, "unknown validation error", e.Error())
		assert.False(t, seen[e.Code()], "duplicate code %s", e.Code())
		seen[e.Code()] = true
	}
	assert.Len(t, seen, 5)

	var wrapped error = HashMismatch
	var ve ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, HashMismatch, ve)
	assert.False(t, errors.Is(TooShort, InvalidEncoding))
	assert.Equal(t, "UNKNOWN", ValidationError(0).Code())
}
