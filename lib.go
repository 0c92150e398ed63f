package fontparts

import (
	"fmt"
	"sort"

	"github.com/robotools/fontparts/normalizers"
)

// Lib is an arbitrary key/value store attached to a font or a glyph.
// Keys follow the reverse-domain naming convention; values are plist
// compatible: nil, bool, numbers, strings, []byte, []any and
// map[string]any.
type Lib struct {
	font  *Font
	glyph *Glyph

	data map[string]any
}

func newLib() *Lib {
	return &Lib{data: make(map[string]any)}
}

// Font returns the font the lib belongs to, directly or through its
// glyph, or nil.
func (l *Lib) Font() *Font {
	if l.font != nil {
		return l.font
	}
	if l.glyph != nil {
		return l.glyph.Font()
	}
	return nil
}

// Glyph returns the lib's parent glyph, or nil for font libs.
func (l *Lib) Glyph() *Glyph { return l.glyph }

// Len returns the number of stored keys.
func (l *Lib) Len() int { return len(l.data) }

// Keys returns the stored keys, sorted.
func (l *Lib) Keys() []string {
	keys := make([]string, 0, len(l.data))
	for k := range l.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Contains reports whether a key is stored.
func (l *Lib) Contains(key string) bool {
	_, ok := l.data[key]
	return ok
}

// Get returns the value stored under key.
func (l *Lib) Get(key string) (any, bool) {
	v, ok := l.data[key]
	return v, ok
}

// Set stores a value under key, validating both.
func (l *Lib) Set(key string, value any) error {
	k, err := normalizers.LibKey(key)
	if err != nil {
		return validationError("lib", "key", err)
	}
	v, err := normalizers.LibValue(value)
	if err != nil {
		return validationError("lib", "value", err)
	}
	l.data[k] = v
	return nil
}

// Remove deletes a key.
func (l *Lib) Remove(key string) error {
	if _, ok := l.data[key]; !ok {
		return fmt.Errorf("lib key %q: %w", key, ErrNotFound)
	}
	delete(l.data, key)
	return nil
}

// Clear removes all keys.
func (l *Lib) Clear() {
	l.data = make(map[string]any)
}

// AsMap returns a copy of the lib as a plain map. Values are shared,
// not deep-copied.
func (l *Lib) AsMap() map[string]any {
	out := make(map[string]any, len(l.data))
	for k, v := range l.data {
		out[k] = v
	}
	return out
}

// Update copies every key from other into the lib.
func (l *Lib) Update(other *Lib) {
	if other == nil {
		return
	}
	for k, v := range other.data {
		l.data[k] = v
	}
}

func (l *Lib) String() string {
	return fmt.Sprintf("<Lib %d keys>", len(l.data))
}
