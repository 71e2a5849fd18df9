package manifest

import (
	"sort"
	"strconv"
	"strings"
)

// NoBucket marks an entry that was not routed to any output
const NoBucket = -1

// Group is an optional group label. The zero value is NoGroup, which is
// distinct from the empty label parsed from "{}".
type Group struct {
	name    string
	present bool
}

// NoGroup is the absent group
var NoGroup = Group{}

// Named returns a present group with the given label
func Named(name string) Group {
	return Group{name: name, present: true}
}

// Name returns the group label and whether the group is present
func (g Group) Name() (string, bool) {
	return g.name, g.present
}

// IsNone reports whether the group is absent
func (g Group) IsNone() bool {
	return !g.present
}

// String returns the label, or "<none>" for the absent group
func (g Group) String() string {
	if !g.present {
		return "<none>"
	}
	return g.name
}

// Quoted returns the label quoted for diagnostics, or "None" when absent
func (g Group) Quoted() string {
	if !g.present {
		return "None"
	}
	return strconv.Quote(g.name)
}

// prefix returns the "{group}" line prefix
func (g Group) prefix() string {
	if !g.present {
		return ""
	}
	return "{" + g.name + "}"
}

// Entry is a single target=source mapping read from a manifest
type Entry struct {
	Group    Group
	Target   string
	Source   string
	Manifest string
	Bucket   int
}

// WithBucket returns a copy of the entry routed to the given output bucket.
// The raw group is dropped; it only matters for selection.
func (e Entry) WithBucket(bucket int) Entry {
	e.Group = NoGroup
	e.Bucket = bucket
	return e
}

// WithoutBucket returns a copy of the entry with no group and no bucket
func (e Entry) WithoutBucket() Entry {
	return e.WithBucket(NoBucket)
}

// HasBucket reports whether the entry was routed to an output
func (e Entry) HasBucket() bool {
	return e.Bucket != NoBucket
}

// String renders the entry as a manifest line without the trailing newline
func (e Entry) String() string {
	return e.Group.prefix() + e.Target + "=" + e.Source
}

// Format renders entries as manifest text, one newline-terminated line each
func Format(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// GroupSet is a set of groups
type GroupSet map[Group]struct{}

// Add inserts a group into the set
func (s GroupSet) Add(g Group) {
	s[g] = struct{}{}
}

// Has reports whether the set contains g
func (s GroupSet) Has(g Group) bool {
	_, ok := s[g]
	return ok
}

// Sorted returns the groups ordered with NoGroup first, then by label
func (s GroupSet) Sorted() []Group {
	groups := make([]Group, 0, len(s))
	for g := range s {
		groups = append(groups, g)
	}
	sortGroups(groups)
	return groups
}

func sortGroups(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].present != groups[j].present {
			return !groups[i].present
		}
		return groups[i].name < groups[j].name
	})
}
