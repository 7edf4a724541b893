package slotstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File stores each slot as one JSON file under a directory. Change events
// reach in-process subscribers only; other processes pointed at the same
// directory will not hear about writes.
type File struct {
	dir string
	mu  sync.Mutex
	hub hub
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("slotstore: create dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(slot string) string {
	// Slot names are internal constants, but keep the filename tame anyway.
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, slot)
	return filepath.Join(f.dir, name+".json")
}

func (f *File) Get(_ context.Context, slot string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *File) Set(_ context.Context, slot string, data []byte) error {
	f.mu.Lock()
	err := writeAtomic(f.path(slot), data)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.hub.publish(slot)
	return nil
}

func (f *File) Delete(_ context.Context, slot string) error {
	f.mu.Lock()
	err := os.Remove(f.path(slot))
	f.mu.Unlock()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	f.hub.publish(slot)
	return nil
}

func (f *File) Subscribe(slot string) (<-chan Event, func()) {
	return f.hub.subscribe(slot)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".slot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
