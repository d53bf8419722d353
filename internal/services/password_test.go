package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundtrip(t *testing.T) {
	digest, err := hashPassword("secret123")
	require.NoError(t, err)

	require.True(t, comparePasswords("secret123", digest))
	require.False(t, comparePasswords("secret124", digest))
	require.False(t, comparePasswords("", digest))
}

func TestHashPasswordFreshSalt(t *testing.T) {
	d1, err := hashPassword("same-password")
	require.NoError(t, err)
	d2, err := hashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, d1, d2, "two hashes of the same plaintext must differ")
	require.True(t, comparePasswords("same-password", d1))
	require.True(t, comparePasswords("same-password", d2))
}

func TestHashPasswordFormat(t *testing.T) {
	digest, err := hashPassword("pw")
	require.NoError(t, err)

	key, salt, ok := strings.Cut(digest, ".")
	require.True(t, ok)
	require.Len(t, key, scryptKeyLen*2)
	require.Len(t, salt, saltLen*2)
}

func TestComparePasswordsMalformedDigest(t *testing.T) {
	cases := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no separator", "deadbeef"},
		{"bad key hex", "zz.deadbeef"},
		{"bad salt hex", "deadbeef.zz"},
		{"short key", "abcd.deadbeefdeadbeefdeadbeefdeadbeef"},
		{"only separator", "."},
		{"trailing separator", "deadbeef."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Never panics, never matches.
			require.False(t, comparePasswords("anything", tc.stored))
		})
	}
}
