package document

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"thanawyia/utils"
)

const testFixture = `{"users":[{"id":"student_1","email":"a@x.com"}],"bookings":[],"settings":{"platformFee":0.15}}`

type countingSource struct {
	calls atomic.Int32
	data  []byte
	err   error
}

func (s *countingSource) Fetch(ctx context.Context) ([]byte, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestCacheServesFreshCopyWithoutRefetch(t *testing.T) {
	src := &countingSource{data: []byte(testFixture)}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewCache(src, WithClock(clock.Now))

	first, err := cache.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.now = clock.now.Add(2 * time.Second)
	second, err := cache.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := src.calls.Load(); got != 1 {
		t.Errorf("expected 1 fetch, got %d", got)
	}
	if !first.Equal(second) {
		t.Error("expected identical documents within the freshness window")
	}
}

func TestCacheRefetchesWhenStaleOrForced(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		force   bool
		fetches int32
	}{
		{"fresh", time.Second, false, 1},
		{"stale", 6 * time.Second, false, 2},
		{"forced", time.Second, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingSource{data: []byte(testFixture)}
			clock := &fakeClock{now: time.Unix(1700000000, 0)}
			cache := NewCache(src, WithClock(clock.Now))

			if _, err := cache.Load(context.Background(), false); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			clock.now = clock.now.Add(tt.advance)
			if _, err := cache.Load(context.Background(), tt.force); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := src.calls.Load(); got != tt.fetches {
				t.Errorf("expected %d fetches, got %d", tt.fetches, got)
			}
		})
	}
}

func TestCacheFallsBackToLastGoodCopy(t *testing.T) {
	src := &countingSource{data: []byte(testFixture)}
	cache := NewCache(src)

	good, err := cache.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src.err = errors.New("network down")
	got, err := cache.Load(context.Background(), true)
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if !good.Equal(got) {
		t.Error("expected the last good document")
	}
}

func TestCacheUnavailableWithoutPriorCopy(t *testing.T) {
	cache := NewCache(&countingSource{err: errors.New("network down")})

	_, err := cache.Load(context.Background(), false)
	if !utils.IsKind(err, utils.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestCacheReturnsIndependentCopies(t *testing.T) {
	cache := NewCache(&countingSource{data: []byte(testFixture)})

	doc, _ := cache.Load(context.Background(), false)
	doc.SetRaw(Users, []byte(`[]`))

	again, _ := cache.Load(context.Background(), false)
	if raw, _ := again.Raw(Users); string(raw) == "[]" {
		t.Error("mutating a returned document leaked into the cache")
	}
}
