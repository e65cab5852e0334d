package ethkey

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := fmt.Errorf("wrapped: %w", newError(KindEntropySource, "read failed").WithCause(cause))

	assert.ErrorIs(t, err, ErrEntropySourceFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidKeyKind)
	assert.EqualError(t, err, "wrapped: entropy_source_failure: read failed: boom")
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid_key_kind", KindInvalidKey.String())
	assert.Equal(t, "malformed_address_input", KindMalformedAddress.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
