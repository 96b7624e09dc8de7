package memory

import (
	"errors"
	"fmt"
	"sync"
)

var errRowNotFound = errors.New("memory: row not found")

// table is an insertion-ordered map of rows keyed by a sequential id.
type table[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	order  []int64
	nextID int64
	idOf   func(T) int64
	setID  func(*T, int64)
	clone  func(T) T
}

func newTable[T any](idOf func(T) int64, setID func(*T, int64), clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{
		items:  make(map[int64]T),
		idOf:   idOf,
		setID:  setID,
		clone:  clone,
		nextID: 1,
	}
}

// seed stores rows with their own ids and moves the id sequence past them.
func (t *table[T]) seed(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range rows {
		id := t.idOf(row)
		if id <= 0 {
			id = t.nextID
			t.setID(&row, id)
		}
		if _, exists := t.items[id]; !exists {
			t.order = append(t.order, id)
		}
		t.items[id] = t.clone(row)
		if id >= t.nextID {
			t.nextID = id + 1
		}
	}
}

func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.items[id]
		if keep != nil && !keep(row) {
			continue
		}
		out = append(out, t.clone(row))
	}
	return out
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(row), true
}

func (t *table[T]) insert(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.setID(&row, id)
	t.items[id] = t.clone(row)
	t.order = append(t.order, id)
	return t.clone(row)
}

func (t *table[T]) update(row T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.idOf(row)
	if _, ok := t.items[id]; !ok {
		var zero T
		return zero, fmt.Errorf("%w: id=%d", errRowNotFound, id)
	}
	t.items[id] = t.clone(row)
	return t.clone(row), nil
}

func (t *table[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func cloneInt64Ptr(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
