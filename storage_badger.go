package texops

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStorage stores the collections in a local Badger key-value store.
// It is an alternative to DirStorage for setups that prefer a single
// database directory over loose JSON files.
type BadgerStorage struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a Badger database at path.
func OpenBadger(path string) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("could not open badger store at %q: %w", path, err)
	}
	return &BadgerStorage{db: db}, nil
}

func (s *BadgerStorage) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return value, nil
}

func (s *BadgerStorage) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database.
func (s *BadgerStorage) Close() error { return s.db.Close() }
