package coinaddress

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase58(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{name: "empty is zero", input: "", want: 0, ok: true},
		{name: "zero digit", input: "1", want: 0, ok: true},
		{name: "leading zero digits add nothing", input: "1112", want: 1, ok: true},
		{name: "last digit", input: "z", want: 57, ok: true},
		{name: "two digits", input: "21", want: 58, ok: true},
		{name: "three digits", input: "zz", want: 57*58 + 57, ok: true},
		{name: "excluded zero", input: "0", ok: false},
		{name: "excluded capital O", input: "O", ok: false},
		{name: "excluded capital I", input: "I", ok: false},
		{name: "excluded lowercase l", input: "l", ok: false},
		{name: "invalid after valid prefix", input: "abc!", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := decodeBase58(tc.input)
			require.Equal(t, tc.ok, ok)
			if !ok {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, 0, got.Cmp(big.NewInt(tc.want)), "got %s", got)
		})
	}
}

func TestDecodeBase58_Unbounded(t *testing.T) {
	t.Parallel()

	// 34 'z' digits is 58^34 - 1, well past 64 bits.
	input := ""
	for i := 0; i < 34; i++ {
		input += "z"
	}
	got, ok := decodeBase58(input)
	require.True(t, ok)

	want := new(big.Int).Exp(big.NewInt(58), big.NewInt(34), nil)
	want.Sub(want, big.NewInt(1))
	assert.Equal(t, 0, got.Cmp(want))
	assert.Greater(t, got.BitLen(), 64)
}

func TestBigToBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{0}, bigToBytes(big.NewInt(0)))
	assert.Equal(t, []byte{1}, bigToBytes(big.NewInt(1)))
	assert.Equal(t, []byte{1, 0}, bigToBytes(big.NewInt(256)))
	assert.Equal(t, []byte{0xff, 0xff}, bigToBytes(big.NewInt(65535)))
}

func TestPadLeft(t *testing.T) {
	t.Parallel()

	padded := padLeft([]byte{1, 2}, AddressLen)
	require.Len(t, padded, AddressLen)
	assert.Equal(t, make([]byte, AddressLen-2), padded[:AddressLen-2])
	assert.Equal(t, []byte{1, 2}, padded[AddressLen-2:])

	exact := make([]byte, AddressLen)
	exact[0] = 9
	assert.Equal(t, exact, padLeft(exact, AddressLen))

	long := make([]byte, AddressLen+3)
	long[0] = 7
	got := padLeft(long, AddressLen)
	assert.Len(t, got, AddressLen+3, "longer input must not be truncated")
	assert.Equal(t, byte(7), got[0])
}

func TestVerifyChecksum(t *testing.T) {
	t.Parallel()

	payload := make([]byte, AddressLen-ChecksumLen)
	payload[0] = 48
	for i := 1; i < len(payload); i++ {
		payload[i] = byte(i)
	}
	sum := doubleHash(payload)
	require.Len(t, sum, 32)

	buf := append(append([]byte{}, payload...), sum[:ChecksumLen]...)
	assert.True(t, verifyChecksum(buf))

	buf[len(buf)-1] ^= 0x01
	assert.False(t, verifyChecksum(buf))

	buf[len(buf)-1] ^= 0x01
	buf[3] ^= 0x80
	assert.False(t, verifyChecksum(buf), "payload change must invalidate checksum")

	assert.False(t, verifyChecksum(make([]byte, ChecksumLen)))
	assert.False(t, verifyChecksum(nil))
}

func TestVerifyChecksum_LongerBuffer(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 30)
	payload[0] = 0xaa
	sum := doubleHash(payload)
	buf := append(append([]byte{}, payload...), sum[:ChecksumLen]...)

	assert.True(t, verifyChecksum(buf))
}

func TestDoubleHash_KnownVector(t *testing.T) {
	t.Parallel()

	// Checksum of version 0 followed by a zero hash160.
	sum := doubleHash(make([]byte, 21))
	assert.Equal(t, []byte{0x94, 0xa0, 0x09, 0x11}, sum[:ChecksumLen])
}
