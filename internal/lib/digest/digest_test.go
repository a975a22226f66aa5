package digest_test

import (
	"testing"

	"github.com/UnknownOlympus/hestia/internal/lib/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_KnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plain string
		want  string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"password", "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"},
	}

	for _, tt := range tests {
		t.Run(tt.plain, func(t *testing.T) {
			t.Parallel()
			got := digest.Password(tt.plain)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, digest.Size)
		})
	}
}

func TestPassword_Deterministic(t *testing.T) {
	t.Parallel()

	first := digest.Password("pw1")
	second := digest.Password("pw1")

	require.Equal(t, first, second)
	assert.NotEqual(t, first, digest.Password("pw2"))
	assert.NotEqual(t, "pw1", first)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	hash := digest.Password("secret")

	assert.True(t, digest.Equal(hash, digest.Password("secret")))
	assert.False(t, digest.Equal(hash, digest.Password("Secret")))
	assert.False(t, digest.Equal(hash, ""))
}
