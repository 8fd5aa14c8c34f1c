package local

import (
	"context"
	"sync"

	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache"
)

// New returns an in-process cache holding at most size entries. When full,
// an arbitrary entry is evicted. size <= 0 means unbounded.
func New(size int) cache.Client {
	return &local{
		store: make(map[string][]byte),
		size:  size,
		mut:   &sync.RWMutex{},
	}
}

type local struct {
	store map[string][]byte
	size  int
	mut   *sync.RWMutex
}

func (l *local) Get(_ context.Context, key string) ([]byte, bool, error) {
	l.mut.RLock()
	defer l.mut.RUnlock()

	value, ok := l.store[key]
	return value, ok, nil
}

func (l *local) Set(_ context.Context, key string, value []byte) error {
	l.mut.Lock()
	defer l.mut.Unlock()

	if _, ok := l.store[key]; !ok && l.size > 0 && len(l.store) >= l.size {
		for k := range l.store {
			delete(l.store, k)
			break
		}
	}
	l.store[key] = value
	return nil
}

func (l *local) Ready() bool {
	return true
}
