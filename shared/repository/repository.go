package repository

import (
	"context"
	"sync"

	"royalstay/shared/failure"
)

// Repository is a generic ordered in-memory store embedded by every domain
// repository. Records are kept in insertion order and indexed by a caller
// supplied key. All state lives for the process lifetime only.
//
// The mutex keeps the booking mutation sequence (insert booking, flip room
// availability, credit loyalty points) safe should the application ever be
// driven by more than one goroutine.
type Repository[K comparable, T any] struct {
	mu      sync.RWMutex
	entitas string
	key     func(T) K
	index   map[K]int
	items   []T
}

func NewRepository[K comparable, T any](entitasName string, key func(T) K) *Repository[K, T] {
	return &Repository[K, T]{
		entitas: entitasName,
		key:     key,
		index:   map[K]int{},
	}
}

func (repo *Repository[K, T]) Insert(_ context.Context, model T) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	k := repo.key(model)
	if _, ok := repo.index[k]; ok {
		return failure.Conflict(repo.entitas + " already exists") //nolint:wrapcheck
	}

	repo.index[k] = len(repo.items)
	repo.items = append(repo.items, model)

	return nil
}

func (repo *Repository[K, T]) Get(_ context.Context, key K) (T, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var model T

	pos, ok := repo.index[key]
	if !ok {
		return model, failure.NotFound(repo.entitas) //nolint:wrapcheck
	}

	return repo.items[pos], nil
}

// GetAll returns a copy of all records in insertion order.
func (repo *Repository[K, T]) GetAll(_ context.Context) []T {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	models := make([]T, len(repo.items))
	copy(models, repo.items)

	return models
}

func (repo *Repository[K, T]) Exist(_ context.Context, key K) bool {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.index[key]

	return ok
}

func (repo *Repository[K, T]) Count(_ context.Context) int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.items)
}

// Update applies fn to the stored record under the write lock. If fn returns
// an error the record is left unchanged.
func (repo *Repository[K, T]) Update(_ context.Context, key K, fn func(model *T) error) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	pos, ok := repo.index[key]
	if !ok {
		return failure.NotFound(repo.entitas) //nolint:wrapcheck
	}

	updated := repo.items[pos]
	if err := fn(&updated); err != nil {
		return err
	}

	repo.items[pos] = updated

	return nil
}

func (repo *Repository[K, T]) Delete(_ context.Context, key K) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	pos, ok := repo.index[key]
	if !ok {
		return failure.NotFound(repo.entitas) //nolint:wrapcheck
	}

	repo.items = append(repo.items[:pos], repo.items[pos+1:]...)

	delete(repo.index, key)
	for k, p := range repo.index {
		if p > pos {
			repo.index[k] = p - 1
		}
	}

	return nil
}
