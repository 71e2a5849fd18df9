package manifest

// IngestOptions contains options for ingesting one manifest
type IngestOptions struct {
	// Title labels the provenance of every entry
	Title string
	// InputCwd is the directory the manifest's source paths are relative to
	InputCwd string
	// OutputCwd is the directory emitted source paths are made relative to
	OutputCwd string
	// Filter selects entries by their raw group
	Filter GroupFilter
	// Bucket is the output index selected entries are routed to
	Bucket int
}

// IngestResult holds the outcome of ingesting one manifest
type IngestResult struct {
	Selected   []Entry
	Unselected []Entry
	// Seen holds every raw group among the parsed entries
	Seen GroupSet
}

// Ingest parses lines and partitions the entries by the group filter.
// Selected entries are routed to opts.Bucket; unselected ones lose both
// their group and bucket.
func Ingest(lines []string, opts IngestOptions) (*IngestResult, error) {
	parser, err := NewParser(opts.Title, opts.InputCwd, opts.OutputCwd)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{Seen: make(GroupSet)}
	for _, line := range lines {
		entry, ok, err := parser.Parse(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		result.Seen.Add(entry.Group)
		if opts.Filter.Selects(entry.Group) {
			result.Selected = append(result.Selected, entry.WithBucket(opts.Bucket))
		} else {
			result.Unselected = append(result.Unselected, entry.WithoutBucket())
		}
	}

	return result, nil
}
