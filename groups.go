package fontparts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robotools/fontparts/normalizers"
)

// Kerning group name prefixes. Groups with these prefixes participate
// in kerning pair lookup: side 1 groups stand in for the first member
// of a pair, side 2 groups for the second.
const (
	KerningGroupPrefix1 = "public.kern1."
	KerningGroupPrefix2 = "public.kern2."
)

// Groups maps group names to lists of glyph names. A glyph may belong
// to at most one side 1 kerning group and at most one side 2 kerning
// group; Set enforces this.
type Groups struct {
	font *Font

	data map[string][]string
}

func newGroups() *Groups {
	return &Groups{data: make(map[string][]string)}
}

// Font returns the groups' parent font, or nil.
func (g *Groups) Font() *Font { return g.font }

// Len returns the number of groups.
func (g *Groups) Len() int { return len(g.data) }

// Keys returns the group names, sorted.
func (g *Groups) Keys() []string {
	keys := make([]string, 0, len(g.data))
	for k := range g.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Contains reports whether a group exists.
func (g *Groups) Contains(name string) bool {
	_, ok := g.data[name]
	return ok
}

// Get returns the members of a group.
func (g *Groups) Get(name string) ([]string, bool) {
	members, ok := g.data[name]
	return members, ok
}

// Set stores a group. For kerning groups, any member already in
// another group on the same side is rejected.
func (g *Groups) Set(name string, members []string) error {
	k, err := normalizers.GroupKey(name)
	if err != nil {
		return validationError("groups", "key", err)
	}
	v, err := normalizers.GroupValue(members)
	if err != nil {
		return validationError("groups", "value", err)
	}
	var prefix string
	switch {
	case strings.HasPrefix(k, KerningGroupPrefix1):
		prefix = KerningGroupPrefix1
	case strings.HasPrefix(k, KerningGroupPrefix2):
		prefix = KerningGroupPrefix2
	}
	if prefix != "" {
		for _, member := range v {
			other := g.kerningGroupFor(member, prefix)
			if other != "" && other != k {
				return validationError("groups", "value",
					fmt.Errorf("glyph %q is already in kerning group %q", member, other))
			}
		}
	}
	g.data[k] = v
	return nil
}

// AsMap returns a copy of the groups as a plain map. The member slices
// are copied as well.
func (g *Groups) AsMap() map[string][]string {
	out := make(map[string][]string, len(g.data))
	for name, members := range g.data {
		out[name] = append([]string(nil), members...)
	}
	return out
}

// Update sets every group from other, applying the same validation as
// Set.
func (g *Groups) Update(other *Groups) error {
	if other == nil {
		return nil
	}
	for _, name := range other.Keys() {
		if err := g.Set(name, other.data[name]); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes a group.
func (g *Groups) Remove(name string) error {
	if _, ok := g.data[name]; !ok {
		return fmt.Errorf("group %q: %w", name, ErrNotFound)
	}
	delete(g.data, name)
	return nil
}

// Clear removes all groups.
func (g *Groups) Clear() {
	g.data = make(map[string][]string)
}

// FindGlyph returns the names of every group the glyph belongs to,
// sorted.
func (g *Groups) FindGlyph(glyphName string) []string {
	var found []string
	for name, members := range g.data {
		for _, member := range members {
			if member == glyphName {
				found = append(found, name)
				break
			}
		}
	}
	sort.Strings(found)
	return found
}

// Side1KerningGroups returns the side 1 kerning groups.
func (g *Groups) Side1KerningGroups() map[string][]string {
	return g.kerningGroups(KerningGroupPrefix1)
}

// Side2KerningGroups returns the side 2 kerning groups.
func (g *Groups) Side2KerningGroups() map[string][]string {
	return g.kerningGroups(KerningGroupPrefix2)
}

func (g *Groups) kerningGroups(prefix string) map[string][]string {
	out := make(map[string][]string)
	for name, members := range g.data {
		if strings.HasPrefix(name, prefix) {
			out[name] = members
		}
	}
	return out
}

// kerningGroupFor returns the name of the kerning group on the given
// side containing the glyph, or "".
func (g *Groups) kerningGroupFor(glyphName, prefix string) string {
	for name, members := range g.data {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		for _, member := range members {
			if member == glyphName {
				return name
			}
		}
	}
	return ""
}

func (g *Groups) String() string {
	return fmt.Sprintf("<Groups %d groups>", len(g.data))
}
