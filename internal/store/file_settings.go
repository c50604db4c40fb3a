package store

import (
	"encoding/json"
	"log"
	"strings"
	"time"
)

type settingEntry struct {
	Value     json.RawMessage `json:"value"`
	UpdatedAt string          `json:"updated_at"`
}

type settingsFileData struct {
	Settings map[string]settingEntry `json:"settings"`
}

// FileSettingsStore, DATABASE_URL tanımlı değilken kullanılan yerel JSON
// dosyası deposudur. Bozuk dosya sıfırlanır, yazılamayan dosya sistemi
// bellek içi moda düşürür; hiçbir durumda çağırana hata fırlatılmaz.
type FileSettingsStore struct {
	file *jsonFile
}

func NewFileSettingsStore(path string) *FileSettingsStore {
	return &FileSettingsStore{file: newJSONFile(path)}
}

func (s *FileSettingsStore) read() settingsFileData {
	empty := settingsFileData{Settings: map[string]settingEntry{}}

	raw, exists, err := s.file.load()
	if err != nil {
		log.Printf("Fallback settings store read failed, resetting store: %v", err)
		s.write(empty)
		return empty
	}
	if !exists {
		return empty
	}

	var data settingsFileData
	if err := json.Unmarshal(raw, &data); err != nil || data.Settings == nil {
		log.Printf("Fallback settings store parse failed, resetting store: %v", err)
		s.write(empty)
		return empty
	}

	// Boş anahtarları ve bozuk girdileri ele
	normalized := make(map[string]settingEntry, len(data.Settings))
	for rawKey, entry := range data.Settings {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			continue
		}
		if strings.TrimSpace(entry.UpdatedAt) == "" {
			entry.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		}
		normalized[key] = entry
	}
	return settingsFileData{Settings: normalized}
}

func (s *FileSettingsStore) write(data settingsFileData) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Fallback settings store encode failed: %v", err)
		return
	}
	if err := s.file.store(raw); err != nil {
		log.Printf("Fallback settings store write failed: %v", err)
	}
}

func (s *FileSettingsStore) Get(key string) (json.RawMessage, error) {
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return nil, nil
	}

	data := s.read()
	entry, ok := data.Settings[normalizedKey]
	if !ok {
		return nil, nil
	}
	return entry.Value, nil
}

func (s *FileSettingsStore) Set(key string, value any) error {
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return ErrMissingKey
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	data := s.read()
	data.Settings[normalizedKey] = settingEntry{
		Value:     raw,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.write(data)
	return nil
}

func (s *FileSettingsStore) All() (map[string]json.RawMessage, error) {
	data := s.read()
	values := make(map[string]json.RawMessage, len(data.Settings))
	for key, entry := range data.Settings {
		values[key] = entry.Value
	}
	return values, nil
}

// InMemoryOnly reports whether the read-only-filesystem escape hatch has
// activated. Exposed for tests.
func (s *FileSettingsStore) InMemoryOnly() bool {
	return s.file.inMemory()
}
