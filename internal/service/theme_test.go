package service

import (
	"testing"
	"time"

	"wealthflow/internal/model"
	"wealthflow/pkg/cache"

	"github.com/stretchr/testify/assert"
)

func TestThemeStore_ToggleTwiceRestores(t *testing.T) {
	for _, initial := range []model.ThemeMode{model.ThemeLight, model.ThemeDark} {
		store := NewThemeStore(initial)
		store.Toggle()
		assert.NotEqual(t, initial, store.Mode())
		store.Toggle()
		assert.Equal(t, initial, store.Mode())
	}
}

func TestThemeStore_DefaultsToDark(t *testing.T) {
	assert.Equal(t, model.ThemeDark, NewThemeStore("").Mode())
}

func TestThemeStore_NotifiesSynchronously(t *testing.T) {
	store := NewThemeStore(model.ThemeDark)

	var seen []model.ThemeMode
	var observed []model.ThemeMode
	unsubscribe := store.Subscribe(func(m model.ThemeMode) {
		seen = append(seen, m)
		// readers inside the callback already see the new value
		observed = append(observed, store.Mode())
	})
	other := 0
	store.Subscribe(func(model.ThemeMode) { other++ })

	got := store.Toggle()
	assert.Equal(t, model.ThemeLight, got)
	assert.Equal(t, []model.ThemeMode{model.ThemeLight}, seen, "notified before Toggle returned")
	assert.Equal(t, seen, observed)

	unsubscribe()
	store.Toggle()
	assert.Len(t, seen, 1)
	assert.Equal(t, 2, other)
}

func TestThemeStore_Set(t *testing.T) {
	store := NewThemeStore(model.ThemeDark)
	calls := 0
	store.Subscribe(func(model.ThemeMode) { calls++ })

	mode, err := store.Set(model.ThemeDark)
	assert.NoError(t, err)
	assert.Equal(t, model.ThemeDark, mode)
	assert.Equal(t, 0, calls, "no notification without a change")

	mode, err = store.Set(model.ThemeLight)
	assert.NoError(t, err)
	assert.Equal(t, model.ThemeLight, mode)
	assert.Equal(t, 1, calls)

	_, err = store.Set("sepia")
	assert.ErrorIs(t, err, model.ErrInvalidThemeMode)
	assert.Equal(t, model.ThemeLight, store.Mode())
}

func TestThemeService_PerSession(t *testing.T) {
	svc := NewThemeService(testConfig(), cache.NewCache(time.Hour, time.Hour))

	assert.Equal(t, model.ThemeDark, svc.For("a").Mode())
	assert.Equal(t, model.ThemeLight, svc.Toggle("a"))
	assert.Equal(t, model.ThemeLight, svc.For("a").Mode(), "persisted for the session")
	assert.Equal(t, model.ThemeDark, svc.For("b").Mode(), "sessions are isolated")
	assert.Same(t, svc.For("a"), svc.For("a"))

	mode, err := svc.Set("b", "light")
	assert.NoError(t, err)
	assert.Equal(t, model.ThemeLight, mode)

	mode, err = svc.Set("b", "neon")
	assert.ErrorIs(t, err, model.ErrInvalidThemeMode)
	assert.Equal(t, model.ThemeLight, mode)
}

func TestThemeService_DefaultFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Session.DefaultTheme = "light"
	svc := NewThemeService(cfg, cache.NewCache(time.Hour, time.Hour))
	assert.Equal(t, model.ThemeLight, svc.For("x").Mode())
}
