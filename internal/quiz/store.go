package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/quizforge/quizforge/internal/grading"
)

var ErrNotFound = errors.New("quiz not found")

// Store keeps quizzes for the duration of a browser session. Everything is
// in-memory; reset or process exit discards it.
type Store interface {
	Put(q Quiz) error
	Get(id string) (Quiz, error)
	// SetResult records the most recent grading outcome so the export can
	// include it.
	SetResult(id string, sum grading.Summary) error
	Result(id string) (grading.Summary, bool)
	Delete(id string) error
}

type entry struct {
	quiz    Quiz
	result  *grading.Summary
	touched time.Time
}

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore returns a Store that evicts quizzes untouched for ttl.
// ttl <= 0 disables eviction.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	m := &MemoryStore{
		entries: map[string]*entry{},
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweep()
	}
	return m
}

func (m *MemoryStore) Put(q Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[q.ID] = &entry{quiz: q, touched: time.Now()}
	return nil
}

func (m *MemoryStore) Get(id string) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	e.touched = time.Now()
	return e.quiz, nil
}

func (m *MemoryStore) SetResult(id string, sum grading.Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return ErrNotFound
	}
	e.result = &sum
	e.touched = time.Now()
	return nil
}

func (m *MemoryStore) Result(id string) (grading.Summary, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	if !ok || e.result == nil {
		return grading.Summary{}, false
	}
	return *e.result, true
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// Close stops the eviction loop.
func (m *MemoryStore) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *MemoryStore) sweep() {
	t := time.NewTicker(m.ttl / 4)
	defer t.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-t.C:
			m.mu.Lock()
			for id, e := range m.entries {
				if now.Sub(e.touched) > m.ttl {
					delete(m.entries, id)
				}
			}
			m.mu.Unlock()
		}
	}
}
