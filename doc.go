// Package texops provides the core bookkeeping logic for a small
// manufacturing operation: stock tracking, a purchase invoice ledger, and
// customer order fulfillment. It is designed to be local-first, with all
// state held in three collections persisted as JSON documents.
//
// The core functionalities include:
//   - Entity Store: the single owner of the inventory, invoice and order
//     collections, persisting each one whenever it is replaced.
//   - Reconciliation: merging captured invoice line items into stock by
//     matching normalized item names, and recording the purchase in the
//     ledger as one transaction.
//   - Planning: checking whether current stock can satisfy a set of
//     requested quantities, reporting per-item shortfalls.
//   - Fulfillment: completing a pending order, deducting its requirements
//     from stock with a floor at zero.
//   - Snapshots: exporting and importing the whole tri-collection state as
//     a single versioned backup document.
//
// This package serves as the foundational logic for the `texops`
// command-line tool; the AI document extraction boundary lives in the
// extract subpackage.
package texops
