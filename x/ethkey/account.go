// Package ethkey derives Ethereum account identities from secp256k1 key pairs.
//
// An account is produced in three steps: a key pair is generated (or built from a
// caller-supplied scalar), the public key is hashed with legacy Keccak-256 to a 20-byte
// address, and the address is rendered in EIP-55 mixed-case checksum form.
package ethkey

import (
	"fmt"
)

// Account is the printable identity derived from a single key pair.
type Account struct {
	PrivateKey string `json:"private_key" yaml:"private_key"`
	Address    string `json:"address"     yaml:"address"`
}

// Generate returns a fresh account, or the account for privateKey when it is non-nil.
func Generate(privateKey *[PrivateKeyLength]byte) (*Account, error) {
	return GenerateWith(NewProvider(), privateKey)
}

// GenerateWith is Generate with an explicit key pair provider.
func GenerateWith(p *Provider, privateKey *[PrivateKeyLength]byte) (*Account, error) {
	var (
		kp  *KeyPair
		err error
	)
	if privateKey != nil {
		kp, err = KeyPairFromBytes(privateKey[:])
	} else {
		kp, err = p.Generate()
	}
	if err != nil {
		return nil, err
	}

	return AccountFromKeyPair(kp)
}

// AccountFromKeyPair derives the address of kp and renders both halves as hex.
func AccountFromKeyPair(kp *KeyPair) (*Account, error) {
	addr, err := kp.Address()
	if err != nil {
		return nil, fmt.Errorf("failed to derive address: %w", err)
	}

	return &Account{
		PrivateKey: kp.PrivateKeyHex(),
		Address:    ChecksumBytes(addr),
	}, nil
}
