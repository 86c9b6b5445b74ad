package models

import "github.com/goccy/go-json"

type extKey struct {
	name string
	path string
}

// ExtendedAttribute keeps values for a field that has no canonical slot.
// Path names the annotated property, e.g. "TelecomAddresses[tel:+15555555]".
type ExtendedAttribute struct {
	Name   string        `json:"name"`
	Path   string        `json:"path"`
	Values []interface{} `json:"values"`
}

// ExtendedAttributes is a side table keyed by (name, path). Adding to an
// existing key appends to its values. The zero value is ready to use.
type ExtendedAttributes struct {
	index   map[extKey]int
	entries []ExtendedAttribute
}

func (e *ExtendedAttributes) Add(name, path string, value interface{}) {
	if e.index == nil {
		e.index = make(map[extKey]int)
	}
	k := extKey{name, path}
	if i, ok := e.index[k]; ok {
		e.entries[i].Values = append(e.entries[i].Values, value)
		return
	}
	e.index[k] = len(e.entries)
	e.entries = append(e.entries, ExtendedAttribute{Name: name, Path: path, Values: []interface{}{value}})
}

func (e *ExtendedAttributes) Get(name, path string) ([]interface{}, bool) {
	i, ok := e.index[extKey{name, path}]
	if !ok {
		return nil, false
	}
	return e.entries[i].Values, true
}

// Named returns every entry with the given name in insertion order.
func (e *ExtendedAttributes) Named(name string) []ExtendedAttribute {
	var out []ExtendedAttribute
	for _, entry := range e.entries {
		if entry.Name == name {
			out = append(out, entry)
		}
	}
	return out
}

func (e *ExtendedAttributes) Len() int {
	return len(e.entries)
}

func (e *ExtendedAttributes) All() []ExtendedAttribute {
	out := make([]ExtendedAttribute, len(e.entries))
	copy(out, e.entries)
	return out
}

func (e ExtendedAttributes) MarshalJSON() ([]byte, error) {
	if e.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e.entries)
}
