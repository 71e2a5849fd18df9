package manifest

import "strings"

// AllGroups is the group list that selects every entry
const AllGroups = "all"

// GroupFilter decides which entries of a manifest are selected. It either
// selects everything, selects nothing, or selects a concrete set of groups.
type GroupFilter struct {
	all    bool
	groups GroupSet
}

// SelectAll returns a filter that selects every entry
func SelectAll() GroupFilter {
	return GroupFilter{all: true}
}

// SelectNone returns a filter that selects no entry
func SelectNone() GroupFilter {
	return GroupFilter{}
}

// SelectGroups returns a filter selecting exactly the given groups
func SelectGroups(groups ...Group) GroupFilter {
	set := make(GroupSet, len(groups))
	for _, g := range groups {
		set.Add(g)
	}
	return GroupFilter{groups: set}
}

// ParseGroupFilter parses a group list: "all", or comma-separated labels
// where an empty element stands for the absent group.
func ParseGroupFilter(list string) GroupFilter {
	if list == AllGroups {
		return SelectAll()
	}
	var groups []Group
	for _, label := range strings.Split(list, ",") {
		if label == "" {
			groups = append(groups, NoGroup)
		} else {
			groups = append(groups, Named(label))
		}
	}
	return SelectGroups(groups...)
}

// Selects reports whether an entry with the given raw group is selected
func (f GroupFilter) Selects(g Group) bool {
	if f.all {
		return true
	}
	return f.groups.Has(g)
}

// IsConcrete reports whether the filter is an explicit group set
func (f GroupFilter) IsConcrete() bool {
	return f.groups != nil
}

// Missing returns the requested groups absent from seen. The absent group
// is never reported.
func (f GroupFilter) Missing(seen GroupSet) []Group {
	var missing []Group
	for g := range f.groups {
		if g.IsNone() || seen.Has(g) {
			continue
		}
		missing = append(missing, g)
	}
	sortGroups(missing)
	return missing
}

// Unrequested returns the seen groups the filter did not ask for, sorted
func (f GroupFilter) Unrequested(seen GroupSet) []Group {
	var rest []Group
	for g := range seen {
		if !f.groups.Has(g) {
			rest = append(rest, g)
		}
	}
	sortGroups(rest)
	return rest
}

// String returns the filter in group-list form
func (f GroupFilter) String() string {
	if f.all {
		return AllGroups
	}
	if f.groups == nil {
		return "<none>"
	}
	labels := make([]string, 0, len(f.groups))
	for _, g := range f.groups.Sorted() {
		name, _ := g.Name()
		labels = append(labels, name)
	}
	return strings.Join(labels, ",")
}
