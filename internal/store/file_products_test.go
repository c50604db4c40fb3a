package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superisi_backend/internal/model"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func newTestProductsStore(t *testing.T) *FileProductsStore {
	t.Helper()
	return NewFileProductsStore(filepath.Join(t.TempDir(), "products-fallback.json"))
}

func TestFileProductsStoreSeedsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products-fallback.json")
	s := NewFileProductsStore(path)

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// İlk okuma dosyayı diske yazmış olmalı
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestFileProductsStoreResetsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products-fallback.json")
	require.NoError(t, os.WriteFile(path, []byte("{bozuk"), 0o644))

	s := NewFileProductsStore(path)

	list, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileProductsStoreCreate(t *testing.T) {
	s := newTestProductsStore(t)

	created, err := s.Create(model.ProductInput{
		Title:          strPtr("Gelinlik Modeli"),
		Description:    strPtr("El işçiliği"),
		PriceFrom:      floatPtr(2500),
		Images:         []string{"products/a.jpg", "/products/a.jpg"},
		Featured:       boolPtr(true),
		ServiceDetails: []string{" Prova dahil ", ""},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.ID, created.Slug)
	assert.Equal(t, "Gelinlik Modeli", created.Name)
	assert.Equal(t, []string{"/uploads/products/a.jpg"}, []string(created.Images))
	assert.Equal(t, []string{"Prova dahil"}, created.ServiceDetails)
	assert.True(t, created.Featured)
}

func TestFileProductsStoreCreateNewestFirst(t *testing.T) {
	s := newTestProductsStore(t)

	_, err := s.Create(model.ProductInput{Title: strPtr("Eski")})
	require.NoError(t, err)
	second, err := s.Create(model.ProductInput{Title: strPtr("Yeni")})
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestFileProductsStoreUntitledProductNameFallback(t *testing.T) {
	s := newTestProductsStore(t)

	created, err := s.Create(model.ProductInput{})
	require.NoError(t, err)
	assert.Equal(t, "Model", created.Name)
}

func TestFileProductsStoreUpdate(t *testing.T) {
	s := newTestProductsStore(t)

	created, err := s.Create(model.ProductInput{
		Title:     strPtr("Gelinlik"),
		PriceFrom: floatPtr(1000),
	})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, model.ProductInput{
		PriceFrom:      floatPtr(1500),
		ServiceDetails: []string{"Prova dahil"},
	})
	require.NoError(t, err)

	// Gönderilmeyen alanlar değişmemeli
	assert.Equal(t, "Gelinlik", updated.Title)
	assert.Equal(t, 1500.0, updated.PriceFrom)
	assert.Equal(t, []string{"Prova dahil"}, updated.ServiceDetails)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1500.0, list[0].PriceFrom)
	assert.Equal(t, []string{"Prova dahil"}, list[0].ServiceDetails)
}

func TestFileProductsStoreUpdateMissing(t *testing.T) {
	s := newTestProductsStore(t)

	_, err := s.Update("yok", model.ProductInput{Title: strPtr("X")})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFileProductsStoreDelete(t *testing.T) {
	s := newTestProductsStore(t)

	created, err := s.Create(model.ProductInput{
		Title:          strPtr("Silinecek"),
		ServiceDetails: []string{"Detay"},
	})
	require.NoError(t, err)

	deleted, err := s.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = s.Delete(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFileProductsStoreNormalizesLegacyRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products-fallback.json")

	// Eski formattan kalmış id'siz satır ve ham resim yolları
	legacy := `{
		"products": [
			{"title": "Eski Kayıt", "images": ["products/x.jpg", "products/x.jpg", ""]}
		],
		"serviceDetailsMap": {
			"": ["sahipsiz"],
			"bir-id": ["  ", ""]
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s := NewFileProductsStore(path)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, []string{"/uploads/products/x.jpg"}, []string(list[0].Images))
	assert.Empty(t, list[0].ServiceDetails)
}

func TestFileProductsStoreCount(t *testing.T) {
	s := newTestProductsStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.Create(model.ProductInput{Title: strPtr("Ürün")})
		require.NoError(t, err)
	}

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
