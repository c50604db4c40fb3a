package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsStore(t *testing.T) *FileSettingsStore {
	t.Helper()
	return NewFileSettingsStore(filepath.Join(t.TempDir(), "settings-fallback.json"))
}

func TestFileSettingsStoreGetMissing(t *testing.T) {
	s := newTestSettingsStore(t)

	raw, err := s.Get("header")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestFileSettingsStoreSetAndGet(t *testing.T) {
	s := newTestSettingsStore(t)

	require.NoError(t, s.Set("header", map[string]any{"logo_text": "Su Perisi"}))

	raw, err := s.Get("header")
	require.NoError(t, err)
	assert.JSONEq(t, `{"logo_text":"Su Perisi"}`, string(raw))
}

func TestFileSettingsStoreUpsertKeepsSingleEntry(t *testing.T) {
	s := newTestSettingsStore(t)

	require.NoError(t, s.Set("header", map[string]any{"logo_text": "Eski"}))
	require.NoError(t, s.Set("header", map[string]any{"logo_text": "Yeni"}))

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.JSONEq(t, `{"logo_text":"Yeni"}`, string(all["header"]))
}

func TestFileSettingsStoreRejectsBlankKey(t *testing.T) {
	s := newTestSettingsStore(t)

	assert.ErrorIs(t, s.Set("", "x"), ErrMissingKey)
	assert.ErrorIs(t, s.Set("   ", "x"), ErrMissingKey)
}

func TestFileSettingsStoreTrimsKeys(t *testing.T) {
	s := newTestSettingsStore(t)

	require.NoError(t, s.Set("  header  ", "değer"))

	raw, err := s.Get("header")
	require.NoError(t, err)
	assert.Equal(t, `"değer"`, string(raw))
}

func TestFileSettingsStoreResetsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings-fallback.json")
	require.NoError(t, os.WriteFile(path, []byte("bozuk json{{{"), 0o644))

	s := NewFileSettingsStore(path)

	all, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	// Sıfırlama diske yazılmış olmalı
	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.True(t, json.Valid(raw))
}

func TestFileSettingsStoreSwitchesToMemoryOnWriteFailure(t *testing.T) {
	dir := t.TempDir()

	// Üst dizin yerine normal dosya koyarak MkdirAll'u kesin başarısız yap
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := NewFileSettingsStore(filepath.Join(blocker, "settings-fallback.json"))

	require.NoError(t, s.Set("header", map[string]any{"logo_text": "Su Perisi"}))
	assert.True(t, s.InMemoryOnly())

	// Yazılan değer bellekte korunmalı
	raw, err := s.Get("header")
	require.NoError(t, err)
	assert.JSONEq(t, `{"logo_text":"Su Perisi"}`, string(raw))

	// Sonraki yazmalar da bellek üzerinden devam etmeli
	require.NoError(t, s.Set("footer", map[string]any{"description": "Güzellik Salonu"}))

	all, err := s.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
