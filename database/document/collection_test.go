package document

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"thanawyia/utils"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func newTestRepository(t *testing.T, fixture string) (*CollectionRepository, *MemoryStorage, *countingSource) {
	t.Helper()
	src := &countingSource{data: []byte(fixture)}
	storage := NewMemoryStorage()
	adapter := NewAdapter(storage, NewCache(src))
	return NewCollectionRepository(adapter), storage, src
}

func TestReadDocumentSeedsFromFixture(t *testing.T) {
	repo, storage, src := newTestRepository(t, testFixture)

	users, err := repo.GetCollection(context.Background(), Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if _, err := storage.Load(context.Background()); err != nil {
		t.Fatalf("expected seeded storage, got %v", err)
	}

	if _, err := repo.GetCollection(context.Background(), Users); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := src.calls.Load(); got != 1 {
		t.Errorf("expected fixture fetched once, got %d", got)
	}
}

func TestSeedTransformRunsOnce(t *testing.T) {
	src := &countingSource{data: []byte(testFixture)}
	calls := 0
	adapter := NewAdapter(NewMemoryStorage(), NewCache(src), WithSeedTransform(func(doc *Document) error {
		calls++
		doc.SetRaw(Messages, json.RawMessage(`[{"id":"m_1"}]`))
		return nil
	}))
	repo := NewCollectionRepository(adapter)

	for i := 0; i < 2; i++ {
		msgs, err := repo.GetCollection(context.Background(), Messages)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 1 {
			t.Fatalf("expected seeded message, got %d", len(msgs))
		}
	}
	if calls != 1 {
		t.Errorf("expected seed transform once, got %d", calls)
	}
}

func TestGetCollectionIsIdempotent(t *testing.T) {
	repo, _, _ := newTestRepository(t, testFixture)
	ctx := context.Background()

	first, err := repo.GetCollection(ctx, Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.GetCollection(ctx, Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) || string(first[0]) != string(second[0]) {
		t.Errorf("expected equal results, got %s and %s", first, second)
	}
}

func TestMissingCollectionIsEmpty(t *testing.T) {
	repo, _, _ := newTestRepository(t, `{}`)

	records, err := repo.GetCollection(context.Background(), Reviews)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", records)
	}
}

func TestSetCollectionRoundTripPreservesOrder(t *testing.T) {
	repo, _, _ := newTestRepository(t, testFixture)
	ctx := context.Background()

	want := []record{{ID: "b_3"}, {ID: "b_1"}, {ID: "b_2", Name: "x"}}
	if err := Replace(ctx, repo, Bookings, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := List[record](ctx, repo, Bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	users, _ := repo.GetCollection(ctx, Users)
	if len(users) != 1 {
		t.Errorf("expected other collections untouched, got %d users", len(users))
	}
}

func TestMutateAbortDiscardsChanges(t *testing.T) {
	repo, _, _ := newTestRepository(t, testFixture)
	ctx := context.Background()
	abort := utils.Conflict("stop")

	err := repo.Mutate(ctx, func(tx *Tx) error {
		if err := Store(tx, Users, []record{}); err != nil {
			return err
		}
		return abort
	})
	if !errors.Is(err, abort) {
		t.Fatalf("expected abort error, got %v", err)
	}

	users, _ := repo.GetCollection(ctx, Users)
	if len(users) != 1 {
		t.Errorf("expected users unchanged, got %d", len(users))
	}
}

func TestWriteFailureIsPersistenceError(t *testing.T) {
	repo, storage, _ := newTestRepository(t, testFixture)
	ctx := context.Background()
	if _, err := repo.GetCollection(ctx, Users); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	storage.FailWrites(errors.New("disk full"))
	err := repo.SetCollection(ctx, Users, nil)
	if !utils.IsKind(err, utils.KindPersistence) {
		t.Fatalf("expected persistence failure, got %v", err)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	repo, _, _ := newTestRepository(t, testFixture)
	ctx := context.Background()

	var settings struct {
		PlatformFee float64 `json:"platformFee"`
	}
	ok, err := repo.GetObject(ctx, Settings, &settings)
	if err != nil || !ok {
		t.Fatalf("expected settings, got ok=%v err=%v", ok, err)
	}
	if settings.PlatformFee != 0.15 {
		t.Errorf("expected 0.15, got %v", settings.PlatformFee)
	}

	settings.PlatformFee = 0.2
	if err := repo.SetObject(ctx, Settings, settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings.PlatformFee = 0
	if _, err := repo.GetObject(ctx, Settings, &settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.PlatformFee != 0.2 {
		t.Errorf("expected 0.2, got %v", settings.PlatformFee)
	}
}

func TestMergeOverlaysOnlyNamedFields(t *testing.T) {
	got, err := Merge(record{ID: "u1", Name: "old"}, map[string]any{"name": "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" || got.Name != "new" {
		t.Errorf("unexpected merge result %+v", got)
	}
}

func TestConcurrentMutationsAreNotLost(t *testing.T) {
	repo, _, _ := newTestRepository(t, `{"bookings":[]}`)
	ctx := context.Background()

	const writers = 8
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			done <- repo.Mutate(ctx, func(tx *Tx) error {
				items, err := Load[record](tx, Bookings)
				if err != nil {
					return err
				}
				return Store(tx, Bookings, append(items, record{ID: string(rune('a' + i))}))
			})
		}(i)
	}

	committed := 0
	for i := 0; i < writers; i++ {
		err := <-done
		if err == nil {
			committed++
			continue
		}
		if !utils.IsKind(err, utils.KindConflict) {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	items, err := List[record](ctx, repo, Bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != committed {
		t.Fatalf("expected %d records, got %d", committed, len(items))
	}
	seen := map[string]bool{}
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("duplicate record %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestAppendKeepsStoredRecordsVerbatim(t *testing.T) {
	repo, _, _ := newTestRepository(t, `{"users":[{"id":"u1","avatar":"pic.png","name":"a"}]}`)
	ctx := context.Background()

	err := repo.Mutate(ctx, func(tx *Tx) error {
		return Append(tx, Users, record{ID: "u2"})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users, err := repo.GetCollection(ctx, Users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if got := string(users[0]); got != `{"id":"u1","avatar":"pic.png","name":"a"}` {
		t.Errorf("expected first record untouched, got %s", got)
	}
}

func TestUpdateRewritesOnlyChangedRecords(t *testing.T) {
	repo, _, _ := newTestRepository(t, `{"users":[
		{"id":"u1","name":"a","avatar":"one.png"},
		{"id":"u2","name":"b","userType":"student"}
	]}`)
	ctx := context.Background()

	var changed int
	err := repo.Mutate(ctx, func(tx *Tx) error {
		var err error
		changed, err = Update(tx, Users, func(r *record) (bool, error) {
			if r.ID != "u1" {
				return false, nil
			}
			r.Name = ""
			return true, nil
		})
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 changed record, got %d", changed)
	}

	users, _ := repo.GetCollection(ctx, Users)
	var first map[string]any
	if err := json.Unmarshal(users[0], &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first["avatar"] != "one.png" {
		t.Errorf("expected undeclared field kept, got %v", first)
	}
	if _, ok := first["name"]; ok {
		t.Errorf("expected cleared field removed, got %v", first)
	}

	var second map[string]any
	if err := json.Unmarshal(users[1], &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second["userType"] != "student" || second["name"] != "b" {
		t.Errorf("expected untouched record, got %v", second)
	}
}

func TestUpdateErrorAbortsMutation(t *testing.T) {
	repo, _, _ := newTestRepository(t, testFixture)
	ctx := context.Background()
	abort := utils.NotFound("missing")

	err := repo.Mutate(ctx, func(tx *Tx) error {
		_, err := Update(tx, Users, func(r *record) (bool, error) {
			return false, abort
		})
		return err
	})
	if !errors.Is(err, abort) {
		t.Fatalf("expected abort error, got %v", err)
	}
}
