package keymap

import (
	"strings"
	"unicode"

	"pokemasdb/core/frozen"

	"golang.org/x/text/cases"
)

// Normalize reduces s to its comparison form: letters and digits only, case folded.
// "Mr. Mime", "mr mime" and "MRMIME" all normalize to "mrmime".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	// A Caser carries state, so one is built per call.
	return cases.Fold().String(b.String())
}

type entry[V any] struct {
	key   string
	match string
	value V
}

// Map is an insertion-ordered associative table whose keys are compared
// fuzzily (see Normalize) unless it was created WithExactKeys.
//
// Lookups scan every entry. Tables hold at most a few thousand names, and
// the scan keeps insert and lookup on exactly the same comparator.
//
// A Map is not safe for concurrent writers. Once frozen it is safe for
// any number of concurrent readers.
type Map[V any] struct {
	entries []entry[V]
	exact   bool
	frozen  bool
}

// Option configures a Map.
type Option func(*options)

type options struct {
	exact bool
}

// WithExactKeys switches the comparator to plain string equality.
func WithExactKeys() Option {
	return func(o *options) { o.exact = true }
}

// New creates an empty Map. Keys are fuzzy by default.
func New[V any](opts ...Option) *Map[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Map[V]{exact: o.exact}
}

func (m *Map[V]) matchKey(s string) string {
	if m.exact {
		return s
	}
	return Normalize(s)
}

func (m *Map[V]) find(key any) int {
	s, ok := key.(string)
	if !ok {
		return -1
	}
	target := m.matchKey(s)
	for i := range m.entries {
		if m.entries[i].match == target {
			return i
		}
	}
	return -1
}

// Get returns the value whose key compares equal to key.
// Non-string keys are never found.
func (m *Map[V]) Get(key any) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i := m.find(key)
	if i < 0 {
		return zero, false
	}
	return m.entries[i].value, true
}

// Contains reports whether a key comparing equal to key is present.
func (m *Map[V]) Contains(key any) bool {
	return m != nil && m.find(key) >= 0
}

// Put stores value under key. When an equal key already exists its value is
// replaced and the originally stored spelling is kept.
func (m *Map[V]) Put(key string, value V) error {
	if m.frozen {
		return frozen.ErrAlreadyFrozen
	}
	if i := m.find(key); i >= 0 {
		m.entries[i].value = value
		return nil
	}
	m.entries = append(m.entries, entry[V]{key: key, match: m.matchKey(key), value: value})
	return nil
}

// GetOrCreate returns the value stored under key, storing create() first
// when the key is absent.
func (m *Map[V]) GetOrCreate(key string, create func() V) (V, error) {
	if i := m.find(key); i >= 0 {
		return m.entries[i].value, nil
	}
	v := create()
	if err := m.Put(key, v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// Key returns the stored spelling of the key comparing equal to key.
func (m *Map[V]) Key(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	i := m.find(key)
	if i < 0 {
		return "", false
	}
	return m.entries[i].key, true
}

// Keys returns the stored keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return []string{}
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// ForEach calls fn for every entry in insertion order until fn returns false.
func (m *Map[V]) ForEach(fn func(key string, value V) bool) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Freeze makes the map read-only. Calling it again has no effect.
func (m *Map[V]) Freeze() {
	m.frozen = true
}

// Frozen reports whether Freeze has been called.
func (m *Map[V]) Frozen() bool {
	return m.frozen
}

// Fuzzy reports whether keys are compared with Normalize.
func (m *Map[V]) Fuzzy() bool {
	return !m.exact
}
