package tags

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// DefaultKey is the table key used when no keyword matches.
const DefaultKey = "default"

// Entry is a single styling rule for technology labels.
type Entry struct {
	ClassName       string   `json:"className" validate:"required"`
	BackgroundColor string   `json:"backgroundColor" validate:"required"`
	TextColor       string   `json:"textColor" validate:"required"`
	Keywords        []string `json:"keywords"`
}

// Table is an ordered, read-only set of entries. Classification walks the
// entries in insertion order, so the order is part of the table's meaning.
type Table struct {
	keys    []string
	entries map[string]Entry
}

// NewTable builds a table from keys in order. Keys must be unique and must
// include DefaultKey.
func NewTable(keys []string, entries map[string]Entry) (table Table, err error) {
	table = Table{
		keys:    make([]string, 0, len(keys)),
		entries: make(map[string]Entry, len(keys)),
	}

	for _, key := range keys {
		entry, ok := entries[key]
		if !ok {
			err = errors.Errorf("no entry for key %q", key)
			return Table{}, err
		}
		if _, dup := table.entries[key]; dup {
			err = errors.Errorf("duplicate key %q", key)
			return Table{}, err
		}
		table.keys = append(table.keys, key)
		table.entries[key] = entry.clone()
	}

	if _, ok := table.entries[DefaultKey]; !ok {
		err = errors.Errorf("tag table has no %q entry", DefaultKey)
		return Table{}, err
	}

	return table, err
}

// Keys returns the table keys in order.
func (t Table) Keys() (keys []string) {
	keys = append([]string(nil), t.keys...)
	return keys
}

// Len returns the number of entries.
func (t Table) Len() (n int) {
	n = len(t.keys)
	return n
}

// Entry returns the entry stored under key.
func (t Table) Entry(key string) (entry Entry, ok bool) {
	entry, ok = t.entries[key]
	entry = entry.clone()
	return entry, ok
}

// Default returns the fallback entry.
func (t Table) Default() (entry Entry) {
	entry = t.entries[DefaultKey].clone()
	return entry
}

func (e Entry) clone() (c Entry) {
	c = e
	if e.Keywords != nil {
		c.Keywords = make([]string, len(e.Keywords))
		copy(c.Keywords, e.Keywords)
	}
	return c
}

// MarshalJSON writes the table as a JSON object with keys in table order.
func (t Table) MarshalJSON() (data []byte, err error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		var k, v []byte
		k, err = json.Marshal(key)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal key %q", key)
			return data, err
		}
		v, err = json.Marshal(t.entries[key])
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal entry %q", key)
			return data, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	data = buf.Bytes()
	return data, err
}
