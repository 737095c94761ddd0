// Package profile stores the user's display name
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/baldog/baldog-terminal/pkg/storage"
)

const (
	// DefaultName is shown until the user picks one
	DefaultName = "Taguro"
	// MaxNameLength is counted in characters, not bytes
	MaxNameLength = 10
)

// ErrNameTooLong is returned by UpdateName for names over MaxNameLength
var ErrNameTooLong = errors.New("name exceeds maximum length")

// NameTooLongMessage is shown to the user when ErrNameTooLong is returned
var NameTooLongMessage = fmt.Sprintf("Maximum of %d characters allowed.", MaxNameLength)

// Store keeps the display name in memory and under storage.KeyUserName
type Store struct {
	mu   sync.RWMutex
	kv   storage.Store
	name string
}

// NewStore starts with DefaultName; call Load to read the saved one
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv, name: DefaultName}
}

// Load reads the saved name. A missing or unreadable value keeps the default.
func (s *Store) Load(ctx context.Context) (string, error) {
	stored, err := s.kv.Get(ctx, storage.KeyUserName)
	if errors.Is(err, storage.ErrNotFound) {
		return s.Name(), nil
	}
	if err != nil {
		return s.Name(), fmt.Errorf("failed to load name: %w", err)
	}
	if stored = strings.TrimSpace(stored); stored != "" {
		s.mu.Lock()
		s.name = stored
		s.mu.Unlock()
	}
	return s.Name(), nil
}

// Name returns the current display name
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// UpdateName validates and saves a new name, returning the name in effect.
// A blank candidate keeps the current name without writing.
func (s *Store) UpdateName(ctx context.Context, candidate string) (string, error) {
	name := strings.TrimSpace(candidate)
	if name == "" {
		return s.Name(), nil
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return s.Name(), ErrNameTooLong
	}

	if err := s.kv.Set(ctx, storage.KeyUserName, name); err != nil {
		return s.Name(), fmt.Errorf("failed to save name: %w", err)
	}

	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
	return name, nil
}

// SuccessMessage is shown after the name changed
func SuccessMessage(name string) string {
	return fmt.Sprintf("You set your name to: \n%s!", name)
}
