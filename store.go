package texops

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/bhavya-learner/tex-ops/date"
)

// Store is the sole owner of the three collections. It keeps them in
// memory and synchronizes each one to durable storage whenever it is
// replaced. Engines never mutate a collection in place: they hand back a
// complete replacement so the Store can persist atomically per collection.
//
// A persistence failure is not recoverable here: the in-memory state is
// left untouched and the error is surfaced to the caller, which treats it
// as fatal for that operation.
type Store struct {
	storage   Storage
	inventory []InventoryItem
	invoices  []InvoiceRecord
	orders    []Order
}

// Open loads the three collections from storage. Keys that have never
// been written load as empty collections; a malformed document is an error.
func Open(storage Storage) (*Store, error) {
	s := &Store{storage: storage}
	if err := loadCollection(storage, KeyInventory, &s.inventory); err != nil {
		return nil, err
	}
	if err := loadCollection(storage, KeyInvoices, &s.invoices); err != nil {
		return nil, err
	}
	if err := loadCollection(storage, KeyOrders, &s.orders); err != nil {
		return nil, err
	}
	return s, nil
}

func loadCollection[T any](storage Storage, key string, into *[]T) error {
	data, err := storage.Get(key)
	if errors.Is(err, fs.ErrNotExist) {
		*into = []T{}
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("could not decode stored %q: %w", key, err)
	}
	if *into == nil {
		*into = []T{}
	}
	return nil
}

func persistCollection[T any](storage Storage, key string, collection []T) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	return storage.Set(key, data)
}

// Inventory returns a copy of the current inventory collection.
func (s *Store) Inventory() []InventoryItem {
	out := make([]InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// Invoices returns a copy of the current invoice ledger.
func (s *Store) Invoices() []InvoiceRecord {
	out := make([]InvoiceRecord, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// Orders returns a copy of the current order backlog.
func (s *Store) Orders() []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ReplaceInventory persists and installs a new inventory collection. The
// other two collections are not rewritten.
func (s *Store) ReplaceInventory(items []InventoryItem) error {
	if err := persistCollection(s.storage, KeyInventory, items); err != nil {
		return err
	}
	s.inventory = items
	return nil
}

// ReplaceInvoices persists and installs a new invoice ledger.
func (s *Store) ReplaceInvoices(invoices []InvoiceRecord) error {
	if err := persistCollection(s.storage, KeyInvoices, invoices); err != nil {
		return err
	}
	s.invoices = invoices
	return nil
}

// ReplaceOrders persists and installs a new order backlog.
func (s *Store) ReplaceOrders(orders []Order) error {
	if err := persistCollection(s.storage, KeyOrders, orders); err != nil {
		return err
	}
	s.orders = orders
	return nil
}

// ApplyPurchase records a captured invoice in the ledger and merges its
// line items into the inventory, as one logical transaction: neither the
// new ledger record nor the stock increments become observable unless both
// collections were persisted.
func (s *Store) ApplyPurchase(c CapturedInvoice, savedAt time.Time) (InvoiceRecord, error) {
	record := RecordInvoice(c, savedAt)
	newInventory := MergeInvoiceIntoInventory(record.Items, s.inventory, date.FromTime(savedAt))
	newInvoices := append([]InvoiceRecord{record}, s.invoices...)

	if err := persistCollection(s.storage, KeyInventory, newInventory); err != nil {
		return InvoiceRecord{}, err
	}
	if err := persistCollection(s.storage, KeyInvoices, newInvoices); err != nil {
		return InvoiceRecord{}, err
	}
	s.inventory = newInventory
	s.invoices = newInvoices
	return record, nil
}

// ApplyFulfillment installs the inventory and order collections produced
// by completing an order, persisting both together so the deduction and
// the status change are not observable apart.
func (s *Store) ApplyFulfillment(inventory []InventoryItem, orders []Order) error {
	if err := persistCollection(s.storage, KeyInventory, inventory); err != nil {
		return err
	}
	if err := persistCollection(s.storage, KeyOrders, orders); err != nil {
		return err
	}
	s.inventory = inventory
	s.orders = orders
	return nil
}

// RestoreAll replaces and persists all three collections at once, used by
// snapshot import.
func (s *Store) RestoreAll(inventory []InventoryItem, invoices []InvoiceRecord, orders []Order) error {
	if err := s.ReplaceInventory(inventory); err != nil {
		return err
	}
	if err := s.ReplaceInvoices(invoices); err != nil {
		return err
	}
	return s.ReplaceOrders(orders)
}
