package memory

import (
	"context"
	"sync"
)

// SessionKV is a map-backed ports.SessionKV. Entries live until deleted.
type SessionKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewSessionKV() *SessionKV {
	return &SessionKV{data: make(map[string]string)}
}

func (kv *SessionKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *SessionKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = value
	return nil
}

func (kv *SessionKV) Delete(_ context.Context, keys ...string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	for _, k := range keys {
		delete(kv.data, k)
	}
	return nil
}

// Len reports the number of stored keys.
func (kv *SessionKV) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return len(kv.data)
}
