package xcache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultCapacity = 128

// Memory is a thread-safe LRU cache.
type Memory struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List
	cache map[string]*list.Element
}

type entry struct {
	key     string
	data    []byte
	expires time.Time // zero means never
}

// NewMemory keeps at most capacity entries; ttl <= 0 disables expiry.
func NewMemory(capacity int, ttl time.Duration) *Memory {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Memory{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		cache:    make(map[string]*list.Element, capacity),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ele, ok := m.cache[key]
	if !ok {
		return nil, false, nil
	}

	ent := ele.Value.(*entry)
	if !ent.expires.IsZero() && !m.now().Before(ent.expires) {
		m.remove(ele)
		return nil, false, nil
	}

	m.ll.MoveToFront(ele)
	return ent.data, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expires time.Time
	if m.ttl > 0 {
		expires = m.now().Add(m.ttl)
	}

	if ele, ok := m.cache[key]; ok {
		m.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.data = value
		ent.expires = expires
		return nil
	}

	m.cache[key] = m.ll.PushFront(&entry{key: key, data: value, expires: expires})
	if m.ll.Len() > m.capacity {
		m.remove(m.ll.Back())
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ll.Len()
}

func (m *Memory) remove(ele *list.Element) {
	m.ll.Remove(ele)
	delete(m.cache, ele.Value.(*entry).key)
}
