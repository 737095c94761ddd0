package testhelpers

import (
	"context"
	"errors"
	"sync"

	"github.com/baldog/baldog-terminal/pkg/storage"
)

// ErrInjected is returned by FlakyStore when a failure is switched on
var ErrInjected = errors.New("injected storage failure")

// FlakyStore wraps a MemoryStore and fails reads or writes on demand
type FlakyStore struct {
	*storage.MemoryStore

	mu       sync.Mutex
	failGet  map[string]bool
	failSet  map[string]bool
	failAll  bool
	setCalls map[string]int
}

// NewFlakyStore creates a store that behaves until told otherwise
func NewFlakyStore() *FlakyStore {
	return &FlakyStore{
		MemoryStore: storage.NewMemoryStore(),
		failGet:     make(map[string]bool),
		failSet:     make(map[string]bool),
		setCalls:    make(map[string]int),
	}
}

// FailGet makes Get fail for key
func (f *FlakyStore) FailGet(key string, fail bool) *FlakyStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGet[key] = fail
	return f
}

// FailSet makes Set fail for key
func (f *FlakyStore) FailSet(key string, fail bool) *FlakyStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet[key] = fail
	return f
}

// FailAll makes every operation fail
func (f *FlakyStore) FailAll(fail bool) *FlakyStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAll = fail
	return f
}

// SetCalls reports how many writes were attempted for key, failed or not
func (f *FlakyStore) SetCalls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls[key]
}

func (f *FlakyStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	fail := f.failAll || f.failGet[key]
	f.mu.Unlock()
	if fail {
		return "", ErrInjected
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *FlakyStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.setCalls[key]++
	fail := f.failAll || f.failSet[key]
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *FlakyStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failAll
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.MemoryStore.Remove(ctx, key)
}
