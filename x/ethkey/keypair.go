package ethkey

import (
	"crypto/rand"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
)

const (
	// PrivateKeyLength is the size of a secp256k1 scalar.
	PrivateKeyLength = 32

	// a uniform 32-byte draw is out of range with probability < 2^-127
	maxDrawAttempts = 8
)

// KeyPair is a secp256k1 private key and its uncompressed public key.
type KeyPair struct {
	priv *secp256k1.PrivateKey
	pub  []byte
}

// KeyPairFromBytes builds a key pair from a caller-supplied scalar.
// The scalar must be 32 bytes, nonzero and below the group order.
func KeyPairFromBytes(b []byte) (*KeyPair, error) {
	if len(b) != PrivateKeyLength {
		return nil, newError(KindInvalidKey, "expected %d bytes, got %d", PrivateKeyLength, len(b))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return nil, newError(KindInvalidKey, "scalar is not below the secp256k1 group order")
	}
	if scalar.IsZero() {
		return nil, newError(KindInvalidKey, "scalar is zero")
	}

	priv := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()

	return &KeyPair{
		priv: priv,
		pub:  priv.PubKey().SerializeUncompressed(),
	}, nil
}

// KeyPairFromHex decodes a 64-character hex scalar, with or without 0x prefix.
func KeyPairFromHex(s string) (*KeyPair, error) {
	b, err := hexutil.Decode("0x" + trimHexPrefix(s))
	if err != nil {
		return nil, newError(KindInvalidKey, "private key is not valid hex").WithCause(err)
	}
	return KeyPairFromBytes(b)
}

// PrivateKey returns the 32-byte big-endian scalar.
func (k *KeyPair) PrivateKey() [PrivateKeyLength]byte {
	var out [PrivateKeyLength]byte
	k.priv.Key.PutBytes(&out)
	return out
}

// PrivateKeyHex returns the scalar as 0x followed by 64 lowercase hex characters.
func (k *KeyPair) PrivateKeyHex() string {
	b := k.PrivateKey()
	return hexutil.Encode(b[:])
}

// PublicKey returns the 65-byte uncompressed encoding, 0x04 || X || Y.
func (k *KeyPair) PublicKey() []byte {
	out := make([]byte, len(k.pub))
	copy(out, k.pub)
	return out
}

// Address returns the raw 20-byte account address.
func (k *KeyPair) Address() (common.Address, error) {
	return PubkeyToAddress(k.pub)
}

// Option configures a Provider
type Option func(*Provider)

// WithEntropy replaces the secure random source. Intended for tests.
func WithEntropy(r io.Reader) Option {
	return func(p *Provider) {
		p.entropy = r
	}
}

// WithLogger sets the provider logger
func WithLogger(log zerolog.Logger) Option {
	return func(p *Provider) {
		p.log = log.With().Str("component", "keypair-provider").Logger()
	}
}

// Provider generates fresh key pairs from a secure random source.
// It holds no mutable state and is safe for concurrent use if its reader is.
type Provider struct {
	entropy io.Reader
	log     zerolog.Logger
}

// NewProvider creates a provider reading from crypto/rand by default.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		entropy: rand.Reader,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate draws 32 bytes of entropy and returns the key pair for them.
// Out-of-range draws are discarded and redrawn.
func (p *Provider) Generate() (*KeyPair, error) {
	var buf [PrivateKeyLength]byte
	defer clear(buf[:])

	for attempt := 1; attempt <= maxDrawAttempts; attempt++ {
		if _, err := io.ReadFull(p.entropy, buf[:]); err != nil {
			return nil, newError(KindEntropySource, "failed to read %d random bytes", PrivateKeyLength).
				WithCause(err)
		}

		kp, err := KeyPairFromBytes(buf[:])
		if err == nil {
			return kp, nil
		}

		p.log.Warn().Int("attempt", attempt).Msg("Random scalar out of range, drawing again")
	}

	return nil, newError(KindEntropySource, "no valid scalar after %d draws", maxDrawAttempts)
}
