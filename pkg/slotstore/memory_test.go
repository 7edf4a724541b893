package slotstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, SlotCart)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, store.Set(ctx, SlotCart, []byte(`[{"productId":"p1","quantity":2}]`)))

	data, err := store.Get(ctx, SlotCart)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"p1","quantity":2}]`, string(data))

	require.NoError(t, store.Delete(ctx, SlotCart))
	_, err = store.Get(ctx, SlotCart)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, SlotUsers, []byte(`[]`)))

	data, err := store.Get(ctx, SlotUsers)
	require.NoError(t, err)
	data[0] = 'x'

	again, err := store.Get(ctx, SlotUsers)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(again))
}

func TestMemorySubscribe(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	events, cancel := store.Subscribe(SlotOrders)
	defer cancel()

	// A write to another slot must not be delivered.
	require.NoError(t, store.Set(ctx, SlotCart, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, SlotOrders, []byte(`[]`)))

	ev := <-events
	assert.Equal(t, SlotOrders, ev.Slot)
	select {
	case extra := <-events:
		t.Fatalf("unexpected event: %+v", extra)
	default:
	}
}

func TestMemorySubscribeCancel(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	events, cancel := store.Subscribe(SlotProducts)
	cancel()

	require.NoError(t, store.Set(ctx, SlotProducts, []byte(`[]`)))

	_, open := <-events
	assert.False(t, open, "channel should be closed after cancel")
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(ctx, SlotProducts)
	assert.ErrorIs(t, err, ErrSlotEmpty)

	require.NoError(t, store.Set(ctx, SlotProducts, []byte(`[{"id":"p1"}]`)))
	data, err := store.Get(ctx, SlotProducts)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(data))

	require.NoError(t, store.Delete(ctx, SlotProducts))
	require.NoError(t, store.Delete(ctx, SlotProducts), "deleting a missing slot is a no-op")
	_, err = store.Get(ctx, SlotProducts)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}
