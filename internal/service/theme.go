package service

import (
	"fmt"
	"sync"
	"time"

	"wealthflow/config"
	"wealthflow/internal/model"
	"wealthflow/pkg/cache"
	"wealthflow/pkg/common"
)

// ThemeStore holds one visitor's light/dark mode. Mutations are serialized and
// every subscriber is notified before the mutating call returns. Subscribers
// may read Mode but must not mutate the store from inside the callback.
type ThemeStore struct {
	notifyMu sync.Mutex
	mu       sync.RWMutex
	mode     model.ThemeMode
	subs     map[int]func(model.ThemeMode)
	nextID   int
}

func NewThemeStore(initial model.ThemeMode) *ThemeStore {
	if !initial.Valid() {
		initial = model.ThemeDark
	}
	return &ThemeStore{
		mode: initial,
		subs: make(map[int]func(model.ThemeMode)),
	}
}

func (s *ThemeStore) Mode() model.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Toggle flips light<->dark and returns the new mode.
func (s *ThemeStore) Toggle() model.ThemeMode {
	return s.update(func(m model.ThemeMode) model.ThemeMode { return m.Toggled() })
}

// Set replaces the mode. Subscribers are notified only on change.
func (s *ThemeStore) Set(mode model.ThemeMode) (model.ThemeMode, error) {
	if !mode.Valid() {
		return s.Mode(), model.ErrInvalidThemeMode
	}
	return s.update(func(model.ThemeMode) model.ThemeMode { return mode }), nil
}

// Subscribe registers fn and returns a function removing it.
func (s *ThemeStore) Subscribe(fn func(model.ThemeMode)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *ThemeStore) update(next func(model.ThemeMode) model.ThemeMode) model.ThemeMode {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	prev := s.mode
	s.mode = next(prev)
	mode := s.mode
	subs := make([]func(model.ThemeMode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if mode != prev {
		for _, fn := range subs {
			fn(mode)
		}
	}
	return mode
}

type ThemeService interface {
	For(sessionID string) *ThemeStore
	Toggle(sessionID string) model.ThemeMode
	Set(sessionID string, mode string) (model.ThemeMode, error)
}

type themeService struct {
	cache       cache.Cache
	ttl         time.Duration
	defaultMode model.ThemeMode
}

func NewThemeService(cfg *config.Config, inmemoryCache cache.Cache) ThemeService {
	defaultMode, err := model.ParseThemeMode(cfg.Session.DefaultTheme)
	if err != nil {
		defaultMode = model.ThemeDark
	}
	return &themeService{
		cache:       inmemoryCache,
		ttl:         cfg.Session.TTL,
		defaultMode: defaultMode,
	}
}

// For returns the visitor's store, creating it with the default mode.
func (s *themeService) For(sessionID string) *ThemeStore {
	key := fmt.Sprintf(common.KEY_THEME_SESSION, sessionID)

	if store, ok := cache.GetFromCache[*ThemeStore](s.cache, key); ok {
		s.cache.Touch(key, s.ttl)
		return store
	}

	store := NewThemeStore(s.defaultMode)
	if err := s.cache.Add(key, store, s.ttl); err != nil {
		// another request of the same visitor created it first
		if existing, ok := cache.GetFromCache[*ThemeStore](s.cache, key); ok {
			return existing
		}
		s.cache.Set(key, store, s.ttl)
	}
	return store
}

func (s *themeService) Toggle(sessionID string) model.ThemeMode {
	return s.For(sessionID).Toggle()
}

func (s *themeService) Set(sessionID string, mode string) (model.ThemeMode, error) {
	m, err := model.ParseThemeMode(mode)
	if err != nil {
		return s.For(sessionID).Mode(), err
	}
	return s.For(sessionID).Set(m)
}
