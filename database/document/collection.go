package document

import (
	"context"
	"encoding/json"
	"fmt"

	"thanawyia/utils"
)

// CollectionRepository exposes named collections of the document.
type CollectionRepository struct {
	adapter *Adapter
}

func NewCollectionRepository(adapter *Adapter) *CollectionRepository {
	return &CollectionRepository{adapter: adapter}
}

// GetCollection returns the records of a list collection, or an empty slice when absent.
func (r *CollectionRepository) GetCollection(ctx context.Context, name string) ([]json.RawMessage, error) {
	doc, err := r.adapter.ReadDocument(ctx)
	if err != nil {
		return nil, err
	}
	return (&Tx{doc: doc}).Records(name)
}

// SetCollection replaces a list collection, leaving the others untouched.
func (r *CollectionRepository) SetCollection(ctx context.Context, name string, records []json.RawMessage) error {
	return r.Mutate(ctx, func(tx *Tx) error {
		return tx.SetRecords(name, records)
	})
}

// GetObject decodes a single-object collection into out. It reports false when absent.
func (r *CollectionRepository) GetObject(ctx context.Context, name string, out any) (bool, error) {
	doc, err := r.adapter.ReadDocument(ctx)
	if err != nil {
		return false, err
	}
	return (&Tx{doc: doc}).Object(name, out)
}

// SetObject replaces a single-object collection.
func (r *CollectionRepository) SetObject(ctx context.Context, name string, v any) error {
	return r.Mutate(ctx, func(tx *Tx) error {
		return tx.SetObject(name, v)
	})
}

// Mutate runs fn against the latest document and persists its changes
// atomically. Returning an error from fn discards every change.
func (r *CollectionRepository) Mutate(ctx context.Context, fn func(tx *Tx) error) error {
	_, err := r.adapter.UpdateDocument(ctx, func(doc *Document) error {
		return fn(&Tx{doc: doc})
	})
	return err
}

// Ping checks the underlying storage.
func (r *CollectionRepository) Ping(ctx context.Context) error {
	return r.adapter.Ping(ctx)
}

// Tx is a document being mutated inside CollectionRepository.Mutate.
type Tx struct {
	doc *Document
}

// NewTx gives typed collection access to a detached document.
func NewTx(doc *Document) *Tx {
	return &Tx{doc: doc}
}

// Records returns the raw records of a list collection.
func (tx *Tx) Records(name string) ([]json.RawMessage, error) {
	raw, ok := tx.doc.Raw(name)
	if !ok {
		return []json.RawMessage{}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, utils.Persistence(fmt.Sprintf("decode collection %s", name), err)
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

// SetRecords replaces a list collection.
func (tx *Tx) SetRecords(name string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return utils.Persistence(fmt.Sprintf("encode collection %s", name), err)
	}
	tx.doc.SetRaw(name, raw)
	return nil
}

// Object decodes a single-object collection into out.
func (tx *Tx) Object(name string, out any) (bool, error) {
	raw, ok := tx.doc.Raw(name)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, utils.Persistence(fmt.Sprintf("decode %s", name), err)
	}
	return true, nil
}

// SetObject replaces a single-object collection.
func (tx *Tx) SetObject(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return utils.Persistence(fmt.Sprintf("encode %s", name), err)
	}
	tx.doc.SetRaw(name, raw)
	return nil
}

// List decodes a whole collection into typed records.
func List[T any](ctx context.Context, r *CollectionRepository, name string) ([]T, error) {
	doc, err := r.adapter.ReadDocument(ctx)
	if err != nil {
		return nil, err
	}
	return Load[T](&Tx{doc: doc}, name)
}

// Replace stores typed records as the whole collection.
func Replace[T any](ctx context.Context, r *CollectionRepository, name string, items []T) error {
	return r.Mutate(ctx, func(tx *Tx) error {
		return Store(tx, name, items)
	})
}

// Load decodes a collection inside a mutation.
func Load[T any](tx *Tx, name string) ([]T, error) {
	items := []T{}
	raw, ok := tx.doc.Raw(name)
	if !ok {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, utils.Persistence(fmt.Sprintf("decode collection %s", name), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Store encodes a collection inside a mutation.
func Store[T any](tx *Tx, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return utils.Persistence(fmt.Sprintf("encode collection %s", name), err)
	}
	tx.doc.SetRaw(name, raw)
	return nil
}

// Append adds item to the end of a list collection. Records already stored
// are kept byte for byte.
func Append[T any](tx *Tx, name string, item T) error {
	records, err := tx.Records(name)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return utils.Persistence(fmt.Sprintf("encode %s record", name), err)
	}
	return tx.SetRecords(name, append(records, raw))
}

// Update passes every record of a list collection to fn and rewrites the ones
// it reports as changed. Only keys the model encodes are replaced on a changed
// record; keys T does not declare survive, and unchanged records keep their
// stored bytes. It returns how many records changed.
func Update[T any](tx *Tx, name string, fn func(item *T) (bool, error)) (int, error) {
	records, err := tx.Records(name)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i, raw := range records {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return 0, utils.Persistence(fmt.Sprintf("decode %s record", name), err)
		}
		before, err := json.Marshal(item)
		if err != nil {
			return 0, utils.Persistence(fmt.Sprintf("encode %s record", name), err)
		}
		ok, err := fn(&item)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		after, err := json.Marshal(item)
		if err != nil {
			return 0, utils.Persistence(fmt.Sprintf("encode %s record", name), err)
		}
		merged, err := overlay(raw, before, after)
		if err != nil {
			return 0, utils.Persistence(fmt.Sprintf("merge %s record", name), err)
		}
		records[i] = merged
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, tx.SetRecords(name, records)
}

// overlay applies the difference between before and after to stored. Keys the
// model dropped (an omitempty field cleared) are removed; unknown keys stay.
func overlay(stored, before, after json.RawMessage) (json.RawMessage, error) {
	var current, prev, next map[string]json.RawMessage
	if err := json.Unmarshal(stored, &current); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(before, &prev); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(after, &next); err != nil {
		return nil, err
	}
	if current == nil {
		current = map[string]json.RawMessage{}
	}
	for k := range prev {
		if _, ok := next[k]; !ok {
			delete(current, k)
		}
	}
	for k, v := range next {
		current[k] = v
	}
	return json.Marshal(current)
}

// LoadObject decodes a single-object collection inside a mutation.
func LoadObject[T any](tx *Tx, name string) (T, bool, error) {
	var out T
	ok, err := tx.Object(name, &out)
	return out, ok, err
}

// StoreObject encodes a single-object collection inside a mutation.
func StoreObject[T any](tx *Tx, name string, v T) error {
	return tx.SetObject(name, v)
}

// Merge overlays fields onto item's JSON form, the way a partial update
// replaces only the keys it names.
func Merge[T any](item T, fields map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(item)
	if err != nil {
		return out, err
	}
	current := map[string]any{}
	if err := json.Unmarshal(raw, &current); err != nil {
		return out, err
	}
	for k, v := range fields {
		current[k] = v
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(merged, &out); err != nil {
		return out, utils.Validation("invalid update: %v", err)
	}
	return out, nil
}
