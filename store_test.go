package texops

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"
)

// memStorage is an in-memory Storage for tests. Keys in failKeys reject
// writes, to exercise persistence failures.
type memStorage struct {
	data     map[string][]byte
	failKeys map[string]bool
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string][]byte{}, failKeys: map[string]bool{}}
}

func (m *memStorage) Get(key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return data, nil
}

func (m *memStorage) Set(key string, value []byte) error {
	if m.failKeys[key] {
		return fmt.Errorf("write to %q refused", key)
	}
	m.data[key] = value
	return nil
}

func TestOpen(t *testing.T) {
	t.Run("empty storage loads empty collections", func(t *testing.T) {
		store, err := Open(newMemStorage())
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		if len(store.Inventory()) != 0 || len(store.Invoices()) != 0 || len(store.Orders()) != 0 {
			t.Error("expected empty collections")
		}
	})

	t.Run("existing collections load", func(t *testing.T) {
		storage := newMemStorage()
		storage.data[KeyInventory], _ = json.Marshal([]InventoryItem{{ID: "a", Name: "Silk", Quantity: 10}})
		store, err := Open(storage)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		if got := store.Inventory(); len(got) != 1 || got[0].Name != "Silk" {
			t.Errorf("inventory = %+v", got)
		}
	})

	t.Run("malformed document is an error", func(t *testing.T) {
		storage := newMemStorage()
		storage.data[KeyOrders] = []byte("{broken")
		if _, err := Open(storage); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestReplaceInventoryPersistsOnlyItsKey(t *testing.T) {
	storage := newMemStorage()
	store, err := Open(storage)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := store.ReplaceInventory([]InventoryItem{{ID: "a", Name: "Silk", Quantity: 10}}); err != nil {
		t.Fatalf("ReplaceInventory() failed: %v", err)
	}
	if _, ok := storage.data[KeyInventory]; !ok {
		t.Error("inventory key not written")
	}
	if _, ok := storage.data[KeyInvoices]; ok {
		t.Error("invoices key written by an inventory replace")
	}
	if _, ok := storage.data[KeyOrders]; ok {
		t.Error("orders key written by an inventory replace")
	}
}

func TestReplaceInventoryKeepsStateOnFailure(t *testing.T) {
	storage := newMemStorage()
	store, err := Open(storage)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	storage.failKeys[KeyInventory] = true

	if err := store.ReplaceInventory([]InventoryItem{{ID: "a"}}); err == nil {
		t.Fatal("expected an error")
	}
	if len(store.Inventory()) != 0 {
		t.Error("in-memory inventory changed after a failed persist")
	}
}

func TestApplyPurchase(t *testing.T) {
	savedAt := time.Date(2026, time.May, 2, 9, 30, 0, 0, time.UTC)
	captured := CapturedInvoice{
		VendorName: "Acme Textiles",
		Items:      []InvoiceItem{{Name: "Blue Denim", Quantity: 60, UnitPrice: M(5), Total: M(300)}},
		TaxAmount:  M(10), TotalAmount: M(310),
	}

	t.Run("records and merges together", func(t *testing.T) {
		storage := newMemStorage()
		store, err := Open(storage)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		if err := store.ReplaceInvoices([]InvoiceRecord{{ID: "inv-old", VendorName: "Zenith Mills"}}); err != nil {
			t.Fatalf("ReplaceInvoices() failed: %v", err)
		}

		record, err := store.ApplyPurchase(captured, savedAt)
		if err != nil {
			t.Fatalf("ApplyPurchase() failed: %v", err)
		}
		if record.VendorName != "Acme Textiles" {
			t.Errorf("vendor = %q", record.VendorName)
		}

		invoices := store.Invoices()
		if len(invoices) != 2 || invoices[0].ID != record.ID {
			t.Errorf("new record is not first: %+v", invoices)
		}
		inventory := store.Inventory()
		if len(inventory) != 1 || inventory[0].Quantity != 60 {
			t.Errorf("inventory = %+v", inventory)
		}
		for _, key := range []string{KeyInventory, KeyInvoices} {
			if _, ok := storage.data[key]; !ok {
				t.Errorf("key %q not written", key)
			}
		}
	})

	t.Run("nothing installed when a persist fails", func(t *testing.T) {
		storage := newMemStorage()
		store, err := Open(storage)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		storage.failKeys[KeyInvoices] = true

		if _, err := store.ApplyPurchase(captured, savedAt); err == nil {
			t.Fatal("expected an error")
		}
		if len(store.Inventory()) != 0 || len(store.Invoices()) != 0 {
			t.Error("state changed after a failed purchase")
		}
	})
}

func TestApplyFulfillment(t *testing.T) {
	storage := newMemStorage()
	store, err := Open(storage)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	inventory := []InventoryItem{{ID: "a", Name: "Silk", Quantity: 15}}
	orders := []Order{{ID: "ord-1", Status: StatusCompleted}}
	if err := store.ApplyFulfillment(inventory, orders); err != nil {
		t.Fatalf("ApplyFulfillment() failed: %v", err)
	}
	if store.Inventory()[0].Quantity != 15 {
		t.Error("inventory not installed")
	}
	if store.Orders()[0].Status != StatusCompleted {
		t.Error("orders not installed")
	}
	for _, key := range []string{KeyInventory, KeyOrders} {
		if _, ok := storage.data[key]; !ok {
			t.Errorf("key %q not written", key)
		}
	}
}

func TestStorageNotExist(t *testing.T) {
	_, err := newMemStorage().Get("absent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}
