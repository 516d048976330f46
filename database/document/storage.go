package document

import (
	"context"
	"errors"
	"sync"

	"thanawyia/utils"
)

// ErrNoDocument reports that nothing has been persisted yet.
var ErrNoDocument = errors.New("document: nothing persisted")

// Storage persists the serialized document.
type Storage interface {
	// Load returns the persisted bytes or ErrNoDocument.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the persisted bytes.
	Save(ctx context.Context, data []byte) error
	// Update atomically replaces the persisted bytes with fn(current).
	// current is nil when nothing is persisted. fn may run more than once
	// and must not have side effects beyond computing its result; an error
	// from fn aborts the update and is returned unchanged.
	Update(ctx context.Context, fn func(current []byte) ([]byte, error)) error
	Ping(ctx context.Context) error
}

// MemoryStorage keeps the document in process memory. Updates are
// optimistic: fn runs outside the lock and the result is swapped in only
// if no other write landed in between.
type MemoryStorage struct {
	mu         sync.Mutex
	data       []byte
	version    uint64
	writeErr   error
	maxRetries int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{maxRetries: defaultUpdateRetries}
}

// FailWrites makes subsequent writes return err; nil restores normal behaviour.
func (s *MemoryStorage) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *MemoryStorage) Load(ctx context.Context) ([]byte, error) {
	data, _ := s.snapshot()
	if data == nil {
		return nil, ErrNoDocument
	}
	return data, nil
}

func (s *MemoryStorage) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = append([]byte(nil), data...)
	s.version++
	return nil
}

func (s *MemoryStorage) Update(ctx context.Context, fn func(current []byte) ([]byte, error)) error {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		current, version := s.snapshot()
		next, err := fn(current)
		if err != nil {
			return err
		}

		swapped, err := s.compareAndSwap(version, next)
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
		utils.DocumentWriteConflicts.Inc()
	}
	return utils.Conflict("document was modified concurrently, retries exhausted")
}

func (s *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStorage) snapshot() ([]byte, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, s.version
	}
	return append([]byte(nil), s.data...), s.version
}

func (s *MemoryStorage) compareAndSwap(version uint64, data []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return false, s.writeErr
	}
	if s.version != version {
		return false, nil
	}
	s.data = append([]byte(nil), data...)
	s.version++
	return true, nil
}
