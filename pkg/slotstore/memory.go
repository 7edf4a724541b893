package slotstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is the default backend and the one tests
// use.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
	hub   hub
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.slots[slot]
	if !ok {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Set(_ context.Context, slot string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)

	m.mu.Lock()
	m.slots[slot] = cp
	m.mu.Unlock()

	m.hub.publish(slot)
	return nil
}

func (m *Memory) Delete(_ context.Context, slot string) error {
	m.mu.Lock()
	delete(m.slots, slot)
	m.mu.Unlock()

	m.hub.publish(slot)
	return nil
}

func (m *Memory) Subscribe(slot string) (<-chan Event, func()) {
	return m.hub.subscribe(slot)
}

// hub fans out slot change events to in-process subscribers. Delivery is
// non-blocking: a subscriber that is not draining its channel misses events.
type hub struct {
	mu   sync.Mutex
	subs map[string][]chan Event
}

func (h *hub) subscribe(slot string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	if h.subs == nil {
		h.subs = make(map[string][]chan Event)
	}
	h.subs[slot] = append(h.subs[slot], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.subs[slot]
		for i, c := range subs {
			if c == ch {
				h.subs[slot] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

func (h *hub) publish(slot string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[slot] {
		select {
		case ch <- Event{Slot: slot}:
		default:
		}
	}
}
