package memory

import (
	"sort"
	"sync"
	"time"
)

type entry[T any] struct {
	val T
	seq int64
}

// table is a mutex-guarded row set. Rows are stored and returned by value so
// callers never share memory with the store.
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[string]entry[T]
	seq     int64
	owner   func(*T) string
	created func(*T) time.Time
}

func newTable[T any](owner func(*T) string, created func(*T) time.Time) *table[T] {
	return &table[T]{rows: make(map[string]entry[T]), owner: owner, created: created}
}

func (t *table[T]) insert(id string, v *T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; exists {
		return false
	}
	t.seq++
	t.rows[id] = entry[T]{val: *v, seq: t.seq}
	return true
}

// findOwned matches id and owner together.
func (t *table[T]) findOwned(ownerID, id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.rows[id]
	if !ok || t.owner(&e.val) != ownerID {
		return nil, false
	}
	v := e.val
	return &v, true
}

// list returns matching rows newest first; rows created at the same instant
// are ordered by insertion, latest first.
func (t *table[T]) list(match func(*T) bool, limit int) []*T {
	t.mu.RLock()
	matched := make([]entry[T], 0, len(t.rows))
	for _, e := range t.rows {
		if match(&e.val) {
			matched = append(matched, e)
		}
	}
	t.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		ci, cj := t.created(&matched[i].val), t.created(&matched[j].val)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return matched[i].seq > matched[j].seq
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*T, len(matched))
	for i := range matched {
		v := matched[i].val
		out[i] = &v
	}
	return out
}

func (t *table[T]) count(match func(*T) bool) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var n int64
	for _, e := range t.rows {
		if match(&e.val) {
			n++
		}
	}
	return n
}

// updateOwned applies fn to the row matching id and owner.
func (t *table[T]) updateOwned(ownerID, id string, fn func(*T)) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.rows[id]
	if !ok || t.owner(&e.val) != ownerID {
		return nil, false
	}
	fn(&e.val)
	t.rows[id] = e
	v := e.val
	return &v, true
}

func ownedBy[T any](t *table[T], ownerID string) func(*T) bool {
	return func(v *T) bool { return t.owner(v) == ownerID }
}
