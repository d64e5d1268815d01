package userauth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// csrfTokenTtl bounds how long a login attempt may sit between the redirect
// to Twitch and the arrival of the callback
const csrfTokenTtl = 15 * time.Minute

// csrfBuffer issues the opaque 'state' values sent along with each OAuth
// redirect and validates them when the callback comes in, so that a
// forged callback request can't plant an attacker-controlled token
type csrfBuffer struct {
	tokens []csrfToken
	mu     sync.Mutex
}

type csrfToken struct {
	value     string
	expiresAt time.Time
}

func (b *csrfBuffer) generate() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	tokenValue := hex.EncodeToString(bytes)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = append(b.tokens, csrfToken{
		value:     tokenValue,
		expiresAt: time.Now().Add(csrfTokenTtl),
	})
	return tokenValue
}

// check reports whether tokenValue was previously issued by generate and has
// neither expired nor been used: a matching token is consumed, and expired
// tokens are purged as a side effect
func (b *csrfBuffer) check(tokenValue string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	isValid := false
	retained := make([]csrfToken, 0, 8)
	for _, token := range b.tokens {
		if token.expiresAt.Before(time.Now()) {
			continue
		}
		if token.value == tokenValue {
			isValid = true
			continue
		}
		retained = append(retained, token)
	}
	b.tokens = retained

	return isValid
}
