package ethkey

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_KnownKey(t *testing.T) {
	t.Parallel()

	var key [PrivateKeyLength]byte
	copy(key[:], hexutil.MustDecode("0x"+knownPrivateKey))

	acc, err := Generate(&key)
	require.NoError(t, err)
	assert.Equal(t, knownAddress, acc.Address)
	assert.Equal(t, "0x"+knownPrivateKey, acc.PrivateKey)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	var key [PrivateKeyLength]byte
	copy(key[:], hexutil.MustDecode("0x"+knownPrivateKey))

	a, err := Generate(&key)
	require.NoError(t, err)
	b, err := Generate(&key)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Format(t *testing.T) {
	t.Parallel()

	acc, err := Generate(nil)
	require.NoError(t, err)

	require.Len(t, acc.PrivateKey, 66)
	require.True(t, strings.HasPrefix(acc.PrivateKey, "0x"))
	assert.Equal(t, strings.ToLower(acc.PrivateKey), acc.PrivateKey)
	_, err = hexutil.Decode(acc.PrivateKey)
	require.NoError(t, err)

	require.Len(t, acc.Address, 42)
	require.True(t, strings.HasPrefix(acc.Address, "0x"))
	assert.True(t, common.IsHexAddress(acc.Address))
	assert.True(t, IsChecksumValid(acc.Address))
}

func TestGenerate_Unique(t *testing.T) {
	t.Parallel()

	a, err := Generate(nil)
	require.NoError(t, err)
	b, err := Generate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
	assert.NotEqual(t, a.Address, b.Address)
}

func TestGenerate_InvalidOverride(t *testing.T) {
	t.Parallel()

	var zero [PrivateKeyLength]byte
	acc, err := Generate(&zero)
	require.ErrorIs(t, err, ErrInvalidKeyKind)
	assert.Nil(t, acc)
}

func TestGenerateWith_OverrideSkipsEntropy(t *testing.T) {
	t.Parallel()

	var key [PrivateKeyLength]byte
	copy(key[:], hexutil.MustDecode("0x"+knownPrivateKey))

	p := NewProvider(WithEntropy(iotest.ErrReader(errors.New("must not be read"))))
	acc, err := GenerateWith(p, &key)
	require.NoError(t, err)
	assert.Equal(t, knownAddress, acc.Address)

	_, err = GenerateWith(p, nil)
	require.ErrorIs(t, err, ErrEntropySourceFailure)
}
