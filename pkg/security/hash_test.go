package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecureHash(t *testing.T) {
	t.Parallel()

	key := []byte("hash-key")

	h1 := SecureHash("some-token", key)
	h2 := SecureHash("some-token", key)
	require.Equal(t, h1, h2)
	require.Len(t, h1, 64)

	require.NotEqual(t, h1, SecureHash("other-token", key))
	require.NotEqual(t, h1, SecureHash("some-token", []byte("other-key")))
}
