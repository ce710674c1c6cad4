package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlaintextIsVerbatimAndCaseSensitive(t *testing.T) {
	codec := Plaintext{}

	stored, err := codec.Encode("Abcdefghijk1!")
	require.NoError(t, err)
	assert.Equal(t, "Abcdefghijk1!", stored)
	assert.True(t, codec.Matches(stored, "Abcdefghijk1!"))
	assert.False(t, codec.Matches(stored, "abcdefghijk1!"))
}

func TestBcryptRoundTrip(t *testing.T) {
	codec := Bcrypt{Cost: bcrypt.MinCost}

	stored, err := codec.Encode("Abcdefghijk1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdefghijk1!", stored)
	assert.True(t, codec.Matches(stored, "Abcdefghijk1!"))
	assert.False(t, codec.Matches(stored, "Abcdefghijk1?"))
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		name    string
		want    PasswordCodec
		wantErr bool
	}{
		{name: "", want: Plaintext{}},
		{name: "plain", want: Plaintext{}},
		{name: " BCRYPT ", want: Bcrypt{}},
		{name: "argon2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CodecFor(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenManagerGenerateAndParse(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenManager("secret", "all-in-forms", time.Hour, 30*24*time.Hour)
	tokens.now = func() time.Time { return now }

	short, err := tokens.Generate("alice", false)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), short.ExpiresAt)
	assert.False(t, short.Persisted)

	long, err := tokens.Generate("alice", true)
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*24*time.Hour), long.ExpiresAt)
	assert.True(t, long.Persisted)

	subject, err := tokens.Parse(short.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenManagerRejectsForeignSecret(t *testing.T) {
	issuer := NewTokenManager("secret", "all-in-forms", time.Hour, time.Hour)
	other := NewTokenManager("other", "all-in-forms", time.Hour, time.Hour)

	token, err := issuer.Generate("alice", false)
	require.NoError(t, err)

	_, err = other.Parse(token.Value)
	assert.Error(t, err)
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenManager("secret", "all-in-forms", time.Hour, time.Hour)
	tokens.now = func() time.Time { return now }

	token, err := tokens.Generate("alice", false)
	require.NoError(t, err)

	tokens.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = tokens.Parse(token.Value)
	assert.Error(t, err)
}
