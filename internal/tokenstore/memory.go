package tokenstore

import (
	"context"
	"sync"

	visibrain "github.com/narke/visibrain-backend"
)

// MemoryStore holds the token in a mutex-guarded slot that lives only as
// long as the process
type MemoryStore struct {
	mu    sync.Mutex
	token *visibrain.Token
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (*visibrain.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, visibrain.ErrNoToken
	}
	token := *s.token
	return &token, nil
}

func (s *MemoryStore) Save(ctx context.Context, token visibrain.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = &token
	return nil
}
