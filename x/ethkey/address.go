package ethkey

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

const (
	// PublicKeyLength is the size of the X || Y coordinate encoding of a public key.
	PublicKeyLength = 64
	// UncompressedPublicKeyLength is PublicKeyLength plus the point format prefix.
	UncompressedPublicKeyLength = PublicKeyLength + 1

	uncompressedPrefix = 0x04
)

// keccak256 uses the original Keccak padding, not the standardized SHA3-256 one.
func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// DeriveAddress hashes the 64-byte coordinate encoding of a public key and
// returns the last 20 bytes of the digest.
func DeriveAddress(pub []byte) (common.Address, error) {
	if len(pub) != PublicKeyLength {
		return common.Address{}, newError(KindMalformedPublicKey,
			"expected %d coordinate bytes, got %d", PublicKeyLength, len(pub))
	}

	digest := keccak256(pub)
	return common.BytesToAddress(digest[len(digest)-common.AddressLength:]), nil
}

// PubkeyToAddress strips the 0x04 prefix of an uncompressed public key and derives its address.
func PubkeyToAddress(pub []byte) (common.Address, error) {
	if len(pub) != UncompressedPublicKeyLength || pub[0] != uncompressedPrefix {
		return common.Address{}, newError(KindMalformedPublicKey,
			"expected %d-byte uncompressed encoding with 0x04 prefix", UncompressedPublicKeyLength)
	}
	return DeriveAddress(pub[1:])
}
