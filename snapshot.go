package texops

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// SnapshotVersion is the version tag stamped on exported backups.
const SnapshotVersion = "1.0"

// BackupData is a complete, self-contained serialization of all three
// collections at one point in time. It is a whole-state snapshot, not an
// incremental diff.
type BackupData struct {
	Inventory []InventoryItem `json:"inventory"`
	Invoices  []InvoiceRecord `json:"invoices"`
	Orders    []Order         `json:"orders"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
}

// ExportSnapshot assembles a backup of the three collections, stamped with
// the given wall-clock time and the current version tag.
func ExportSnapshot(inventory []InventoryItem, invoices []InvoiceRecord, orders []Order, at time.Time) BackupData {
	return BackupData{
		Inventory: inventory,
		Invoices:  invoices,
		Orders:    orders,
		Timestamp: at,
		Version:   SnapshotVersion,
	}
}

// EncodeSnapshot writes the backup as an indented JSON document.
func EncodeSnapshot(w io.Writer, b BackupData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads and validates a backup document. The only shape
// requirement is that "inventory" is an array; missing invoices or orders
// default to empty collections. A version mismatch is accepted but logged,
// since per-field compatibility has been kept so far.
func DecodeSnapshot(r io.Reader) (BackupData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return BackupData{}, fmt.Errorf("could not read snapshot: %w", err)
	}

	// Probe the untrusted document's shape before committing to a full decode.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return BackupData{}, fmt.Errorf("invalid snapshot file: %w", err)
	}
	jval, err := jsonpath.Get("$.inventory", probe)
	if err != nil {
		return BackupData{}, fmt.Errorf("invalid snapshot file: no inventory: %w", err)
	}
	if _, ok := jval.([]any); !ok {
		return BackupData{}, fmt.Errorf("invalid snapshot file: inventory is not an array")
	}

	var b BackupData
	if err := json.Unmarshal(data, &b); err != nil {
		return BackupData{}, fmt.Errorf("invalid snapshot file: %w", err)
	}
	if b.Version != SnapshotVersion {
		log.Printf("restoring snapshot with version %q (current %q)", b.Version, SnapshotVersion)
	}
	if b.Inventory == nil {
		b.Inventory = []InventoryItem{}
	}
	if b.Invoices == nil {
		b.Invoices = []InvoiceRecord{}
	}
	if b.Orders == nil {
		b.Orders = []Order{}
	}
	return b, nil
}
