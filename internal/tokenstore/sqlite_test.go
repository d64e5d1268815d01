package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	visibrain "github.com/narke/visibrain-backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Store(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	token, err := s.Get(ctx)
	assert.ErrorIs(t, err, visibrain.ErrNoToken)
	assert.Nil(t, token)

	err = s.Save(ctx, visibrain.Token{AccessToken: "token-1", RefreshToken: "refresh-1"})
	assert.NoError(t, err)

	token, err = s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &visibrain.Token{AccessToken: "token-1", RefreshToken: "refresh-1"}, token)

	// Upsert: a second save replaces the row rather than creating another,
	// and an absent refresh token clears the previous one
	err = s.Save(ctx, visibrain.Token{AccessToken: "token-2"})
	assert.NoError(t, err)

	token, err = s.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &visibrain.Token{AccessToken: "token-2"}, token)

	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM token").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_Store_persistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.db")

	s, err := Open(path)
	require.NoError(t, err)
	err = s.Save(ctx, visibrain.Token{AccessToken: "persisted-token"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "persisted-token", token.AccessToken)
}

func Test_Open_requiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
