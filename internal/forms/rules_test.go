package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmailShape(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"a@b.c", true},
		{"first.last@sub.domain.org", true},
		{"a@b..c", true},
		{"a@EXAMPLE.COM", true},
		{"a@b", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.", false},
		{"a@", false},
		{"ab.com", false},
		{"a b@c.d", false},
		{"a@b@c.d", false},
		{"a@b.c ", false},
		{"a@b.c\u00a0", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validEmailShape(tt.email))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank(" \t\n"))
	assert.True(t, isBlank("\u00a0 \uFEFF"))
	assert.False(t, isBlank(" a "))
}

func TestLengthCountsUTF16Units(t *testing.T) {
	assert.Equal(t, 4, length("abcd"))
	assert.Equal(t, 2, length("é"+"e"))
	assert.Equal(t, 2, length("😀"))
}

func TestUniqueFold(t *testing.T) {
	assert.Equal(t, 1, uniqueFold("aaaa"))
	assert.Equal(t, 1, uniqueFold("AaAa"))
	assert.Equal(t, 2, uniqueFold("aabb"))
	assert.Equal(t, 4, uniqueFold("ab12"))
}

func TestIsSpecialUsesExactSet(t *testing.T) {
	for _, r := range `!@#$%^&*(),.?":{}|<>` {
		assert.True(t, isSpecial(r), string(r))
	}
	for _, r := range "-_+=~`[]\\/';" {
		assert.False(t, isSpecial(r), string(r))
	}
}

func TestIsAlnumIsASCIIOnly(t *testing.T) {
	assert.True(t, every("abcXYZ019", isAlnum))
	assert.False(t, every("abc def", isAlnum))
	assert.False(t, every("café", isAlnum))
	assert.False(t, every("user_1", isAlnum))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("MyPaSsWoRd12!", "password"))
	assert.True(t, containsFold("MyBob1Pass123!", "bob1"))
	assert.False(t, containsFold("Secur3Pass!word", "password"))
}
