package store

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"superisi_backend/internal/model"
)

// Bilinen setting anahtarları. Anahtarlar serbest string'dir; bunlar
// uygulamanın kendi yazdıklarıdır.
const (
	KeyHeader                = "header"
	KeyFooter                = "footer"
	KeyHomepage              = "homepage_data"
	KeyAbout                 = "hakkimizda_data"
	KeyContact               = "iletisim_data"
	KeyContactNumbers        = "contact_numbers"
	KeyProductServiceDetails = "product_service_details"
	KeyAppointments          = "appointments_data"
	KeyVisitorTotal          = "visitor_count"
	KeyVisitorDaily          = "visitor_daily_counts"
)

var ErrMissingKey = errors.New("key is required")

// SettingsStore is the generic key/value persistence contract. Get
// returns nil for absent keys. Implementations are picked once at
// startup; callers never branch on which backend is active.
type SettingsStore interface {
	Get(key string) (json.RawMessage, error)
	Set(key string, value any) error
	All() (map[string]json.RawMessage, error)
}

// DBSettingsStore persists settings in the hosted settings table.
type DBSettingsStore struct {
	db *gorm.DB
}

func NewDBSettingsStore(db *gorm.DB) *DBSettingsStore {
	return &DBSettingsStore{db: db}
}

// Get reads the most recently updated row for the key. Ordering by
// updated_at tolerates duplicate rows left behind by older deployments.
func (s *DBSettingsStore) Get(key string) (json.RawMessage, error) {
	var setting model.Setting
	err := s.db.Where("key = ?", key).Order("updated_at desc").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(setting.Value), nil
}

// Set upserts without relying on a unique constraint: update first,
// insert only when no row matched.
func (s *DBSettingsStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	res := s.db.Model(&model.Setting{}).Where("key = ?", key).Updates(map[string]any{
		"value":      datatypes.JSON(raw),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	return s.db.Create(&model.Setting{Key: key, Value: datatypes.JSON(raw)}).Error
}

// All collapses duplicate keys by keeping the newest row for each key.
func (s *DBSettingsStore) All() (map[string]json.RawMessage, error) {
	var rows []model.Setting
	if err := s.db.Order("updated_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	values := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		if _, ok := values[row.Key]; ok {
			continue
		}
		values[row.Key] = json.RawMessage(row.Value)
	}
	return values, nil
}

// FallbackSettingsStore degrades hosted-backend failures onto the local
// file store so that settings operations never surface a fatal error:
// reads answer from the file copy, writes land in the file store.
type FallbackSettingsStore struct {
	primary  *DBSettingsStore
	fallback *FileSettingsStore
}

func NewFallbackSettingsStore(primary *DBSettingsStore, fallback *FileSettingsStore) *FallbackSettingsStore {
	return &FallbackSettingsStore{primary: primary, fallback: fallback}
}

func (s *FallbackSettingsStore) Get(key string) (json.RawMessage, error) {
	value, err := s.primary.Get(key)
	if err != nil {
		log.Printf("Settings get %q failed, reading fallback store: %v", key, err)
		return s.fallback.Get(key)
	}
	return value, nil
}

func (s *FallbackSettingsStore) Set(key string, value any) error {
	if err := s.primary.Set(key, value); err != nil {
		log.Printf("Settings set %q failed, writing to fallback store: %v", key, err)
		return s.fallback.Set(key, value)
	}
	return nil
}

func (s *FallbackSettingsStore) All() (map[string]json.RawMessage, error) {
	values, err := s.primary.All()
	if err != nil {
		log.Printf("Settings list failed, reading fallback store: %v", err)
		return s.fallback.All()
	}
	return values, nil
}
