package document

import (
	"context"
	"errors"

	"thanawyia/utils"

	"go.uber.org/zap"
)

// SeedTransform rewrites the fixture before it is first persisted.
type SeedTransform func(doc *Document) error

// Adapter reads and writes the whole document, seeding storage from the
// fixture cache the first time it is read.
type Adapter struct {
	storage Storage
	cache   *Cache
	seed    SeedTransform
}

type AdapterOption func(*Adapter)

// WithSeedTransform applies fn to the fixture before seeding.
func WithSeedTransform(fn SeedTransform) AdapterOption {
	return func(a *Adapter) { a.seed = fn }
}

func NewAdapter(storage Storage, cache *Cache, opts ...AdapterOption) *Adapter {
	a := &Adapter{storage: storage, cache: cache}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ReadDocument returns the persisted document. When nothing is persisted it
// force-refreshes the fixture, persists it and returns it.
func (a *Adapter) ReadDocument(ctx context.Context) (*Document, error) {
	data, err := a.storage.Load(ctx)
	if err == nil {
		doc, perr := Parse(data)
		if perr != nil {
			return nil, utils.Persistence("decode persisted document", perr)
		}
		return doc, nil
	}
	if !errors.Is(err, ErrNoDocument) {
		return nil, utils.Persistence("read persisted document", err)
	}

	utils.GetLogger().Info("No persisted document, seeding from fixture")
	return a.UpdateDocument(ctx, func(*Document) error { return nil })
}

// WriteDocument persists doc as a whole and refreshes the cache.
func (a *Adapter) WriteDocument(ctx context.Context, doc *Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return utils.Persistence("encode document", err)
	}
	if err := a.storage.Save(ctx, data); err != nil {
		utils.GetLogger().Error("Failed to write document", zap.Error(err))
		return utils.Persistence("write document", err)
	}
	a.cache.Store(doc)
	return nil
}

// UpdateDocument applies fn to the latest persisted document and writes the
// result atomically. fn may be retried and must only touch the document.
func (a *Adapter) UpdateDocument(ctx context.Context, fn func(doc *Document) error) (*Document, error) {
	var result *Document
	err := a.storage.Update(ctx, func(current []byte) ([]byte, error) {
		var doc *Document
		var err error
		if current == nil {
			doc, err = a.initialDocument(ctx)
		} else {
			doc, err = Parse(current)
		}
		if err != nil {
			return nil, err
		}
		if err := fn(doc); err != nil {
			return nil, err
		}
		result = doc
		return doc.Bytes()
	})
	if err != nil {
		return nil, utils.Persistence("update document", err)
	}
	a.cache.Store(result)
	return result, nil
}

// Ping checks the underlying storage.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.storage.Ping(ctx)
}

func (a *Adapter) initialDocument(ctx context.Context) (*Document, error) {
	doc, err := a.cache.Load(ctx, true)
	if err != nil {
		return nil, err
	}
	if a.seed != nil {
		if err := a.seed(doc); err != nil {
			return nil, utils.Persistence("prepare seed document", err)
		}
	}
	return doc, nil
}
