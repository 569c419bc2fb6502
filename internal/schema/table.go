// Package schema holds the closed key tables for every section of the
// configuration language. A table drives both decoding (with default
// fallback) and encoding, so the parser and the formatter agree on the key
// set and its order.
package schema

import (
	"fmt"

	"github.com/donaldgifford/hyprconf/internal/model"
)

// Table is the ordered, closed set of keys recognized for records of type T.
type Table[T any] struct {
	name     string
	defaults T
	fields   []Field[T]
	index    map[string]int
}

// NewTable builds a table. It panics on a duplicate key, which is a
// programming error in the table definition.
func NewTable[T any](name string, defaults T, fields ...Field[T]) *Table[T] {
	t := &Table[T]{
		name:     name,
		defaults: defaults,
		fields:   fields,
		index:    make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		for _, k := range append([]string{f.Key}, f.Aliases...) {
			if _, dup := t.index[k]; dup {
				panic(fmt.Sprintf("schema: duplicate key %q in table %s", k, name))
			}
			t.index[k] = i
		}
	}
	return t
}

// Name returns the table's section name.
func (t *Table[T]) Name() string { return t.name }

// Has reports whether key (or an alias) is recognized.
func (t *Table[T]) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Set decodes raw into the field named key. known is false for keys the
// table does not recognize; err is a *CoercionError when the value did not
// parse and the field fell back.
func (t *Table[T]) Set(dst *T, key, raw string) (known bool, err error) {
	i, ok := t.index[key]
	if !ok {
		return false, nil
	}
	return true, t.fields[i].decode(dst, &t.defaults, raw)
}

// Each calls fn for every field that has a value, in table order, using
// the canonical key.
func (t *Table[T]) Each(src *T, fn func(key, value string)) {
	for _, f := range t.fields {
		if v, ok := f.encode(src); ok {
			fn(f.Key, v)
		}
	}
}

// Keys returns the canonical keys in table order.
func (t *Table[T]) Keys() []string {
	keys := make([]string, len(t.fields))
	for i, f := range t.fields {
		keys[i] = f.Key
	}
	return keys
}

// Section binds a table to its place in model.Config. It is the
// non-generic handle the parser and formatter dispatch on.
type Section struct {
	Name   string
	nested []*Section

	set  func(cfg *model.Config, key, raw string) (bool, error)
	each func(cfg *model.Config, fn func(key, value string))
}

func bind[T any](t *Table[T], at func(*model.Config) *T, nested ...*Section) *Section {
	return &Section{
		Name:   t.Name(),
		nested: nested,
		set: func(cfg *model.Config, key, raw string) (bool, error) {
			return t.Set(at(cfg), key, raw)
		},
		each: func(cfg *model.Config, fn func(key, value string)) {
			t.Each(at(cfg), fn)
		},
	}
}

// Set decodes one key of this section into cfg.
func (s *Section) Set(cfg *model.Config, key, raw string) (known bool, err error) {
	return s.set(cfg, key, raw)
}

// Each visits every field of this section in cfg, in table order.
func (s *Section) Each(cfg *model.Config, fn func(key, value string)) {
	s.each(cfg, fn)
}

// Nested returns the nested section called name.
func (s *Section) Nested(name string) (*Section, bool) {
	for _, n := range s.nested {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

// Children returns the nested sections in output order.
func (s *Section) Children() []*Section {
	return s.nested
}
