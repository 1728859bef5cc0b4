package repository

import (
	"sort"
	"sync"
	"time"

	"task-manager-crud/internal/domain"

	"github.com/google/uuid"
)

// Entity is satisfied by pointers to resource structs that embed domain.Record.
type Entity[T any] interface {
	*T
	Base() *domain.Record
}

// Repository defines the interface for resource data access
type Repository[T any] interface {
	Create(value T) T
	GetAll() []T
	GetByID(id string) (T, bool)
	Update(id string, patch func(*T)) (T, bool)
	Delete(id string) bool
	Len() int
}

// Option configures a memory repository.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator overrides the id source. Generated ids must never repeat.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

type entry[T any] struct {
	value T
	seq   uint64
}

type memoryRepository[T any, P Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]*entry[T]
	seq   uint64
	now   func() time.Time
	newID func() string
}

// NewMemoryRepository creates a map-backed Repository safe for concurrent use.
func NewMemoryRepository[T any, P Entity[T]](opts ...Option) Repository[T] {
	o := options{
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &memoryRepository[T, P]{
		items: make(map[string]*entry[T]),
		now:   o.now,
		newID: o.newID,
	}
}

// Create assigns a fresh id and timestamps, stores the value and returns it
func (r *memoryRepository[T, P]) Create(value T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := P(&value).Base()
	now := r.now()
	base.ID = r.newID()
	base.CreatedAt = now
	base.UpdatedAt = now

	r.seq++
	r.items[base.ID] = &entry[T]{value: value, seq: r.seq}

	return value
}

// GetAll returns every stored value, most recently created first
func (r *memoryRepository[T, P]) GetAll() []T {
	r.mu.RLock()
	entries := make([]entry[T], 0, len(r.items))
	for _, e := range r.items {
		entries = append(entries, *e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		ci := P(&entries[i].value).Base().CreatedAt
		cj := P(&entries[j].value).Base().CreatedAt
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return entries[i].seq > entries[j].seq
	})

	values := make([]T, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return values
}

// GetByID looks up a single value
func (r *memoryRepository[T, P]) GetByID(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Update applies patch to a copy of the stored value and stores the result.
// The id and createdAt of the stored value always survive the patch.
func (r *memoryRepository[T, P]) Update(id string, patch func(*T)) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}

	updated := e.value
	patch(&updated)

	original := P(&e.value).Base()
	base := P(&updated).Base()
	base.ID = original.ID
	base.CreatedAt = original.CreatedAt

	now := r.now()
	if now.Before(original.CreatedAt) {
		now = original.CreatedAt
	}
	base.UpdatedAt = now

	e.value = updated
	return updated, true
}

// Delete removes a value and reports whether it existed
func (r *memoryRepository[T, P]) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}
	delete(r.items, id)
	return true
}

// Len returns the number of stored values
func (r *memoryRepository[T, P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
