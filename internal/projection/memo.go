package projection

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoKey identifies one memoized projection. Generation changes whenever any
// input collection of the workspace changes, so a key never outlives its inputs.
type MemoKey struct {
	WorkspaceID string
	View        string
	EntityID    string
	Generation  uint64
}

// Memo caches projection results. A result computed for one entity or
// generation is never returned for another.
type Memo[V any] struct {
	cache *lru.Cache[MemoKey, V]
}

// NewMemo creates a memo holding at most size results.
func NewMemo[V any](size int) (*Memo[V], error) {
	cache, err := lru.New[MemoKey, V](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create projection cache: %w", err)
	}
	return &Memo[V]{cache: cache}, nil
}

// Get returns the cached value for key, computing and storing it on a miss.
func (m *Memo[V]) Get(key MemoKey, compute func() V) V {
	if v, ok := m.cache.Get(key); ok {
		return v
	}
	v := compute()
	m.cache.Add(key, v)
	return v
}

// PurgeWorkspace drops every cached result of a workspace and returns how many were removed.
func (m *Memo[V]) PurgeWorkspace(workspaceID string) int {
	removed := 0
	for _, key := range m.cache.Keys() {
		if key.WorkspaceID == workspaceID && m.cache.Remove(key) {
			removed++
		}
	}
	return removed
}

// Len returns the number of cached results.
func (m *Memo[V]) Len() int {
	return m.cache.Len()
}

// Cache groups the memos the console pages read from.
type Cache struct {
	Tables      *Memo[[]TableRow]
	Options     *Memo[[]DropdownOption]
	Connections *Memo[[]Connection]
}

// NewCache creates a Cache whose memos each hold at most size results.
func NewCache(size int) (*Cache, error) {
	tables, err := NewMemo[[]TableRow](size)
	if err != nil {
		return nil, err
	}
	options, err := NewMemo[[]DropdownOption](size)
	if err != nil {
		return nil, err
	}
	connections, err := NewMemo[[]Connection](size)
	if err != nil {
		return nil, err
	}
	return &Cache{Tables: tables, Options: options, Connections: connections}, nil
}

// PurgeWorkspace drops the workspace from every memo.
func (c *Cache) PurgeWorkspace(workspaceID string) int {
	return c.Tables.PurgeWorkspace(workspaceID) +
		c.Options.PurgeWorkspace(workspaceID) +
		c.Connections.PurgeWorkspace(workspaceID)
}
