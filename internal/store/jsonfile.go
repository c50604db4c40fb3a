package store

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// jsonFile tek bir JSON dokümanı tutan yerel dosyadır. Salt-okunur bir
// dosya sisteminde ilk yazma hatasından sonra süreç ömrü boyunca bellek
// içi moda geçer; uygulama kalıcılık olmadan çalışmaya devam eder.
type jsonFile struct {
	path string

	mu      sync.Mutex
	memOnly bool
	mem     []byte
}

func newJSONFile(path string) *jsonFile {
	return &jsonFile{path: path}
}

// load returns the current document bytes and whether any document
// exists yet. Callers must hold no assumptions about file state; a
// missing file is not an error.
func (f *jsonFile) load() ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.memOnly {
		return f.mem, f.mem != nil, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// store persists the document. A filesystem failure switches the file
// into memory-only mode instead of surfacing the error: the write is
// kept in memory and must not be lost.
func (f *jsonFile) store(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.memOnly {
		f.mem = data
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		f.switchToMemory(err, data)
		return nil
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		f.switchToMemory(err, data)
		return nil
	}
	return nil
}

func (f *jsonFile) switchToMemory(cause error, data []byte) {
	log.Printf("Local store write failed (%s), switching to in-memory mode: %v", f.path, cause)
	f.memOnly = true
	f.mem = data
}

// inMemory reports whether the escape hatch has triggered. Used by tests.
func (f *jsonFile) inMemory() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.memOnly
}
