// Package pkg provides utilities shared by the playground host.
package pkg

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrClosed is returned when appending to a closed log.
var ErrClosed = errors.New("event log closed")

// EventLog is an ordered, append-only sequence of items of type T.
// Items are never removed or rewritten; indexes are stable.
type EventLog[T any] interface {
	Len() uint64
	Append(item T) (uint64, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type eventLogImpl[T any] struct {
	name   string
	mu     sync.RWMutex
	items  []T
	closed bool
}

// NewEventLog creates an empty in-memory EventLog. The name only labels log records.
func NewEventLog[T any](name string) EventLog[T] {
	slog.Debug("created event log", "name", name)

	return &eventLogImpl[T]{name: name}
}

// Append implements EventLog. It returns the index of the new item.
func (l *eventLogImpl[T]) Append(item T) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		slog.Warn("append to closed event log", "name", l.name)
		return 0, ErrClosed
	}

	l.items = append(l.items, item)
	index := uint64(len(l.items) - 1)

	return index, nil
}

// Close implements EventLog. Reads stay available after Close.
func (l *eventLogImpl[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.closed {
		l.closed = true
		slog.Debug("closed event log", "name", l.name, "length", len(l.items))
	}

	return nil
}

// Len implements EventLog.
func (l *eventLogImpl[T]) Len() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return uint64(len(l.items))
}

// Range implements EventLog. It iterates over a snapshot taken when Range is
// called, so f may append to the log without deadlocking.
func (l *eventLogImpl[T]) Range(fn func(index uint64, item T) error) error {
	l.mu.RLock()
	snapshot := l.items[:len(l.items):len(l.items)]
	l.mu.RUnlock()

	for i, item := range snapshot {
		if err := fn(uint64(i), item); err != nil {
			slog.Debug("range callback error", "name", l.name, "index", i, "error", err)
			return err
		}
	}

	return nil
}
