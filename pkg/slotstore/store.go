// Package slotstore persists named JSON slots and notifies subscribers when
// a slot changes. It is the storage substrate for every repository in this
// module: each slot holds one JSON-encoded collection, rewritten whole on
// every mutation.
package slotstore

import (
	"context"
	"errors"
)

// Well-known slot names.
const (
	SlotProducts = "products"
	SlotOrders   = "orders"
	SlotUsers    = "users"
	SlotSession  = "session"
	SlotCart     = "cart"
)

// ErrSlotEmpty is returned by Get when a slot has never been written or has
// been deleted. Callers are expected to treat it as "use the default value".
var ErrSlotEmpty = errors.New("slotstore: slot is empty")

// Event describes a change to a single slot.
type Event struct {
	Slot string
}

// Store is a named-slot key-value store. Set and Delete complete before they
// return; change events are delivered best effort and only within the scope
// the backend supports (in-process for memory and file, cross-process for
// redis). Slow subscribers may miss events.
type Store interface {
	Get(ctx context.Context, slot string) ([]byte, error)
	Set(ctx context.Context, slot string, data []byte) error
	Delete(ctx context.Context, slot string) error

	// Subscribe returns a channel of change events for one slot and a
	// cancel function releasing the subscription.
	Subscribe(slot string) (<-chan Event, func())
}
