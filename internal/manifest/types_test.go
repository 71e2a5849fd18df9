package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_Absent(t *testing.T) {
	var zero Group

	assert.Equal(t, NoGroup, zero)
	assert.True(t, zero.IsNone())
	assert.NotEqual(t, NoGroup, Named(""))
	assert.False(t, Named("").IsNone())

	name, ok := Named("tools").Name()
	assert.Equal(t, "tools", name)
	assert.True(t, ok)

	_, ok = NoGroup.Name()
	assert.False(t, ok)
}

func TestGroup_Quoted(t *testing.T) {
	assert.Equal(t, "None", NoGroup.Quoted())
	assert.Equal(t, `""`, Named("").Quoted())
	assert.Equal(t, `"runtime"`, Named("runtime").Quoted())
}

func TestEntry_WithBucket(t *testing.T) {
	original := Entry{Group: Named("g"), Target: "t", Source: "s", Manifest: "m", Bucket: NoBucket}

	routed := original.WithBucket(2)
	assert.Equal(t, 2, routed.Bucket)
	assert.True(t, routed.HasBucket())
	assert.True(t, routed.Group.IsNone())
	assert.Equal(t, "t", routed.Target)
	assert.Equal(t, "s", routed.Source)
	assert.Equal(t, "m", routed.Manifest)

	// the original value is untouched
	assert.Equal(t, Named("g"), original.Group)
	assert.Equal(t, NoBucket, original.Bucket)

	dropped := original.WithoutBucket()
	assert.False(t, dropped.HasBucket())
	assert.True(t, dropped.Group.IsNone())
}

func TestFormat(t *testing.T) {
	entries := []Entry{
		{Group: NoGroup, Target: "a", Source: "src/a"},
		{Group: Named(""), Target: "b", Source: "src/b"},
		{Group: Named("tools"), Target: "bin/c", Source: "out/c"},
	}

	assert.Equal(t, "a=src/a\n{}b=src/b\n{tools}bin/c=out/c\n", Format(entries))
	assert.Equal(t, "", Format(nil))
}

func TestFormat_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Group: NoGroup, Target: "a", Source: "src/a"},
		{Group: Named(""), Target: "b/c", Source: "../out/b"},
		{Group: Named("runtime"), Target: "bin/x", Source: "x=y"},
		{Group: Named("runtime"), Target: "bin/x", Source: "other/x"},
	}

	lines, err := ReadLines(strings.NewReader(Format(entries)))
	require.NoError(t, err)

	result, err := Ingest(lines, IngestOptions{
		Title:     "roundtrip",
		OutputCwd: ".",
		Filter:    SelectNone(),
	})
	require.NoError(t, err)
	require.Len(t, result.Unselected, len(entries))

	parser, err := NewParser("roundtrip", "", ".")
	require.NoError(t, err)
	for i, line := range lines {
		got, ok, err := parser.Parse(line)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, entries[i].Group, got.Group)
		assert.Equal(t, entries[i].Target, got.Target)
		assert.Equal(t, entries[i].Source, got.Source)
	}
}

func TestGroupSet_Sorted(t *testing.T) {
	set := make(GroupSet)
	set.Add(Named("b"))
	set.Add(NoGroup)
	set.Add(Named("a"))
	set.Add(Named(""))
	set.Add(Named("a"))

	assert.Equal(t, []Group{NoGroup, Named(""), Named("a"), Named("b")}, set.Sorted())
}
