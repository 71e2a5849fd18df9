package output

import "sort"

// LineSet collects the rendered lines of one output
type LineSet interface {
	// Add records the rendered line for target
	Add(target, line string)
	// Lines returns the distinct lines in output order
	Lines() []string
	// Len returns the number of lines
	Len() int
}

// Pair is a target with its rendered line
type Pair struct {
	Target string
	Line   string
}

// NewLineSet returns a by-target set when unique is true, otherwise a set
// of distinct lines.
func NewLineSet(unique bool) LineSet {
	if unique {
		return &targetSet{lines: make(map[string]string)}
	}
	return &distinctSet{lines: make(map[string]struct{})}
}

// targetSet keeps one line per target; the last write wins
type targetSet struct {
	lines map[string]string
}

func (s *targetSet) Add(target, line string) {
	s.lines[target] = line
}

func (s *targetSet) Lines() []string {
	lines := make([]string, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, line)
	}
	sortLines(lines)
	return lines
}

// Pairs returns target/line pairs ordered by target
func (s *targetSet) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s.lines))
	for target, line := range s.lines {
		pairs = append(pairs, Pair{Target: target, Line: line})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Target < pairs[j].Target
	})
	return pairs
}

func (s *targetSet) Len() int {
	return len(s.lines)
}

// distinctSet collapses lines only when the whole rendered line matches
type distinctSet struct {
	lines map[string]struct{}
}

func (s *distinctSet) Add(_, line string) {
	s.lines[line] = struct{}{}
}

func (s *distinctSet) Lines() []string {
	lines := make([]string, 0, len(s.lines))
	for line := range s.lines {
		lines = append(lines, line)
	}
	sortLines(lines)
	return lines
}

func (s *distinctSet) Len() int {
	return len(s.lines)
}

// sortLines orders lines as they compare once newline-terminated, which
// differs from plain order only for bytes below '\n'.
func sortLines(lines []string) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i]+"\n" < lines[j]+"\n"
	})
}
