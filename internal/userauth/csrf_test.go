package userauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_csrfBuffer(t *testing.T) {
	b := &csrfBuffer{tokens: make([]csrfToken, 0, 8)}

	value := b.generate()
	assert.NotEmpty(t, value)

	// An issued token validates exactly once
	assert.True(t, b.check(value))
	assert.False(t, b.check(value))

	// A value we never issued doesn't validate
	assert.False(t, b.check("deadbeef"))

	// An expired token doesn't validate
	b.tokens = append(b.tokens, csrfToken{
		value:     "expired-token",
		expiresAt: time.Now().Add(-time.Minute),
	})
	assert.False(t, b.check("expired-token"))
}
