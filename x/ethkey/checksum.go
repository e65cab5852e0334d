package ethkey

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const addressHexLength = 2 * common.AddressLength

// ToChecksum renders a 40-character hex address (optionally 0x-prefixed, any case)
// in EIP-55 mixed-case form.
func ToChecksum(address string) (string, error) {
	raw := trimHexPrefix(address)
	if len(raw) != addressHexLength {
		return "", newError(KindMalformedAddress,
			"expected %d hex characters, got %d", addressHexLength, len(raw))
	}

	lower := make([]byte, addressHexLength)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
			lower[i] = c
		case c >= 'A' && c <= 'F':
			lower[i] = c + ('a' - 'A')
		default:
			return "", newError(KindMalformedAddress, "invalid hex character %q at position %d", c, i)
		}
	}

	return encodeChecksum(lower), nil
}

// ChecksumBytes renders a raw 20-byte address in EIP-55 form.
func ChecksumBytes(addr common.Address) string {
	return encodeChecksum([]byte(hexutil.Encode(addr[:])[2:]))
}

// IsChecksumValid reports whether address is already in its EIP-55 form.
func IsChecksumValid(address string) bool {
	checksummed, err := ToChecksum(address)
	if err != nil {
		return false
	}
	return trimHexPrefix(address) == checksummed[2:]
}

// encodeChecksum expects exactly 40 lowercase hex characters.
func encodeChecksum(lower []byte) string {
	digest := keccak256(lower)

	out := make([]byte, 2+len(lower))
	copy(out, "0x")
	for i, c := range lower {
		// hex digit i of the digest is the high nibble of byte i/2 for even i
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble >= 8 && c >= 'a' && c <= 'f' {
			c -= 'a' - 'A'
		}
		out[2+i] = c
	}
	return string(out)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
