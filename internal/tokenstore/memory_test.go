package tokenstore

import (
	"context"
	"testing"

	visibrain "github.com/narke/visibrain-backend"
	"github.com/stretchr/testify/assert"
)

func Test_MemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	// Before any save, Get must signal that no token exists
	token, err := s.Get(ctx)
	assert.ErrorIs(t, err, visibrain.ErrNoToken)
	assert.Nil(t, token)

	err = s.Save(ctx, visibrain.Token{AccessToken: "token-1", RefreshToken: "refresh-1"})
	assert.NoError(t, err)

	token, err = s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &visibrain.Token{AccessToken: "token-1", RefreshToken: "refresh-1"}, token)

	// A second save overwrites the single record in place
	err = s.Save(ctx, visibrain.Token{AccessToken: "token-2"})
	assert.NoError(t, err)

	token, err = s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &visibrain.Token{AccessToken: "token-2"}, token)
}
