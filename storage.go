package texops

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys for the three persisted collections. They intentionally
// match the keys of the original deployment so existing data loads as-is.
const (
	KeyInventory = "texops_inventory"
	KeyInvoices  = "texops_invoices"
	KeyOrders    = "texops_orders"
)

// Storage is the durable transport for the three collections, each stored
// as an opaque JSON document under its key. Get returns fs.ErrNotExist
// (possibly wrapped) when the key has never been written.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// DirStorage stores each key as a JSON file in a directory.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a Storage writing <dir>/<key>.json files.
func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{dir: dir}
}

func (s *DirStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *DirStorage) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return data, nil
}

func (s *DirStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}
