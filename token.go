package visibrain

import (
	"context"
	"errors"
)

// ErrNoToken is returned by TokenStore.Get when no OAuth exchange has
// completed yet: callers that require authorization must fail with an
// unauthenticated error rather than forwarding a request with an empty
// bearer token
var ErrNoToken = errors.New("no access token on record")

// Token holds the credentials obtained from a Twitch authorization-code
// exchange. RefreshToken may be empty: the token endpoint is not guaranteed
// to issue one, and no refresh flow currently consumes it.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// TokenStore persists the single user access token shared by the whole
// service. There is exactly one logical token record: Save is an upsert over
// that identity, and concurrent writes resolve last-write-wins.
type TokenStore interface {
	// Get returns the current token, or ErrNoToken if none has been saved
	Get(ctx context.Context) (*Token, error)

	// Save creates or replaces the token record, setting both fields together
	Save(ctx context.Context, token Token) error
}
