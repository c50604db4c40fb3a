package fetchers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superisi_backend/internal/store"
)

func newTestFetchers(t *testing.T) (*Fetchers, *store.FileSettingsStore) {
	t.Helper()
	dir := t.TempDir()
	settings := store.NewFileSettingsStore(filepath.Join(dir, "settings-fallback.json"))
	products := store.NewFileProductsStore(filepath.Join(dir, "products-fallback.json"))
	return New(settings, products), settings
}

func TestGetSettingsDefaults(t *testing.T) {
	f, _ := newTestFetchers(t)

	result := f.GetSettings()

	assert.Equal(t, DefaultHeader(), result.Header)
	assert.Equal(t, "Su Perisi Güzellik Salonu", result.Footer.BrandName)
	// contact_numbers kaydı yokken footer'daki WhatsApp'tan türetilir
	assert.Equal(t, "05435167011", result.ContactNumbers.Phone)
	assert.Equal(t, "05435167011", result.ContactNumbers.WhatsappNumber)
}

func TestGetSettingsMergesStoredValues(t *testing.T) {
	f, settings := newTestFetchers(t)

	require.NoError(t, settings.Set(store.KeyHeader, map[string]any{
		"header_logo_text": "Yeni Salon Adı",
	}))

	result := f.GetSettings()

	assert.Equal(t, "Yeni Salon Adı", result.Header.LogoText)
	// Kaydedilmeyen alanlar varsayılanda kalmalı
	assert.Equal(t, "Ana Sayfa", result.Header.MenuAnasayfa)
}

func TestGetSettingsParsesStringEncodedValue(t *testing.T) {
	f, settings := newTestFetchers(t)

	// Eski kayıtlar JSON string içinde JSON taşıyabiliyor
	require.NoError(t, settings.Set(store.KeyHeader, `{"header_logo_text":"Sarılmış Değer"}`))

	result := f.GetSettings()
	assert.Equal(t, "Sarılmış Değer", result.Header.LogoText)
}

func TestGetContactNumbersSanitizesWhatsapp(t *testing.T) {
	f, settings := newTestFetchers(t)

	require.NoError(t, settings.Set(store.KeyContactNumbers, map[string]any{
		"phone":           "0555 111 22 33",
		"whatsapp_number": "+90 (555) 111-22-33",
	}))

	result := f.GetContactNumbers()

	assert.Equal(t, "0555 111 22 33", result.Phone)
	assert.Equal(t, "905551112233", result.WhatsappNumber)
	assert.Equal(t, "0555 111 22 33", result.WhatsappDisplay)
	assert.Equal(t, DefaultContactNumbers().WhatsappMessage, result.WhatsappMessage)
}

func TestGetContactNumbersDerivedFromContactPage(t *testing.T) {
	f, settings := newTestFetchers(t)

	require.NoError(t, settings.Set(store.KeyContact, map[string]any{
		"phone": "0532 000 11 22",
	}))

	result := f.GetContactNumbers()

	assert.Equal(t, "0532 000 11 22", result.Phone)
	assert.Equal(t, "05320001122", result.WhatsappNumber)
}

func TestGetHomepageDefaults(t *testing.T) {
	f, _ := newTestFetchers(t)

	result := f.GetHomepage()
	assert.Equal(t, DefaultHomepage(), result)
}

func TestGetHomepageStoredOverrides(t *testing.T) {
	f, settings := newTestFetchers(t)

	require.NoError(t, settings.Set(store.KeyHomepage, map[string]any{
		"hero_title": "Özel Kampanya",
	}))

	result := f.GetHomepage()

	assert.Equal(t, "Özel Kampanya", result.HeroTitle)
	assert.Equal(t, DefaultHomepage().HeroSubtitle, result.HeroSubtitle)
}

func TestGetAboutDefaults(t *testing.T) {
	f, _ := newTestFetchers(t)
	assert.Equal(t, DefaultAbout(), f.GetAbout())
}

func TestGetContactUsesContactNumbers(t *testing.T) {
	f, settings := newTestFetchers(t)

	require.NoError(t, settings.Set(store.KeyContactNumbers, map[string]any{
		"phone":            "0555 111 22 33",
		"whatsapp_display": "0555 111 22 33",
	}))
	require.NoError(t, settings.Set(store.KeyContact, map[string]any{
		"title": "Randevu Sayfası",
		"phone": "eski numara",
	}))

	result := f.GetContact()

	assert.Equal(t, "Randevu Sayfası", result.Title)
	// Telefon alanları her zaman contact_numbers'tan gelir
	assert.Equal(t, "0555 111 22 33", result.Phone)
	assert.Equal(t, "0555 111 22 33", result.Whatsapp)
}

func TestGetProductsEmpty(t *testing.T) {
	f, _ := newTestFetchers(t)
	assert.Empty(t, f.GetProducts())
}
