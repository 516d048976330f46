package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Collection names held by the document.
const (
	Users         = "users"
	Bookings      = "bookings"
	Messages      = "messages"
	Transactions  = "transactions"
	Notifications = "notifications"
	Reviews       = "reviews"
	Settings      = "settings"
)

// Document is the whole data blob: collection name to its raw JSON value.
// List collections are JSON arrays; settings is a single object.
type Document struct {
	collections map[string]json.RawMessage
}

// New returns an empty document.
func New() *Document {
	return &Document{collections: map[string]json.RawMessage{}}
}

// Parse decodes a serialized document. A JSON null decodes to an empty document.
func Parse(data []byte) (*Document, error) {
	doc := New()
	if err := json.Unmarshal(data, &doc.collections); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.collections == nil {
		doc.collections = map[string]json.RawMessage{}
	}
	return doc, nil
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	data, err := json.Marshal(d.collections)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return data, nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Bytes()
}

func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	d.collections = parsed.collections
	return nil
}

// Raw returns the stored value of a collection.
func (d *Document) Raw(name string) (json.RawMessage, bool) {
	raw, ok := d.collections[name]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// SetRaw replaces a collection value.
func (d *Document) SetRaw(name string, raw json.RawMessage) {
	d.collections[name] = raw
}

// Names lists the collections present, sorted.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.collections))
	for name := range d.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	out := &Document{collections: make(map[string]json.RawMessage, len(d.collections))}
	for name, raw := range d.collections {
		out.collections[name] = append(json.RawMessage(nil), raw...)
	}
	return out
}

// Equal reports whether two documents hold the same raw values.
func (d *Document) Equal(other *Document) bool {
	if len(d.collections) != len(other.collections) {
		return false
	}
	for name, raw := range d.collections {
		if !bytes.Equal(raw, other.collections[name]) {
			return false
		}
	}
	return true
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
