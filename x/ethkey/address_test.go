package ethkey

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddress_MatchesGoEthereum(t *testing.T) {
	t.Parallel()

	for i := 0; i < 16; i++ {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		pub := crypto.FromECDSAPub(&key.PublicKey)

		got, err := DeriveAddress(pub[1:])
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), got)

		got, err = PubkeyToAddress(pub)
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), got)
	}
}

func TestDeriveAddress_IsLegacyKeccak(t *testing.T) {
	t.Parallel()

	pub := make([]byte, PublicKeyLength)
	for i := range pub {
		pub[i] = byte(i)
	}

	got, err := DeriveAddress(pub)
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256(pub)[12:], got.Bytes())
}

func TestDeriveAddress_BadLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 32, 63, 65} {
		_, err := DeriveAddress(make([]byte, n))
		require.ErrorIs(t, err, ErrMalformedPublicKey)
	}
}

func TestPubkeyToAddress_BadEncoding(t *testing.T) {
	t.Parallel()

	compressed := make([]byte, 33)
	compressed[0] = 0x02
	_, err := PubkeyToAddress(compressed)
	require.ErrorIs(t, err, ErrMalformedPublicKey)

	wrongPrefix := make([]byte, UncompressedPublicKeyLength)
	wrongPrefix[0] = 0x06
	_, err = PubkeyToAddress(wrongPrefix)
	require.ErrorIs(t, err, ErrMalformedPublicKey)
}
