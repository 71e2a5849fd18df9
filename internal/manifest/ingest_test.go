package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ingestLines = []string{
	"{runtime}bin/app=out/app\n",
	"{tools}bin/tool=out/tool\n",
	"lib/a.so=out/lib/a.so\n",
	"{}etc/conf=src/conf\n",
	"{runtime}lib/b.so=prebuilt/lib/b.so\n",
}

func TestIngest_SelectAll(t *testing.T) {
	result, err := Ingest(ingestLines, IngestOptions{
		Title:     "a.manifest",
		OutputCwd: ".",
		Filter:    SelectAll(),
		Bucket:    1,
	})
	require.NoError(t, err)

	require.Len(t, result.Selected, 4)
	assert.Empty(t, result.Unselected)
	for _, e := range result.Selected {
		assert.Equal(t, 1, e.Bucket)
		assert.True(t, e.Group.IsNone())
		assert.Equal(t, "a.manifest", e.Manifest)
	}

	// input order is preserved
	assert.Equal(t, "bin/app", result.Selected[0].Target)
	assert.Equal(t, "bin/tool", result.Selected[1].Target)
	assert.Equal(t, "lib/a.so", result.Selected[2].Target)
	assert.Equal(t, "etc/conf", result.Selected[3].Target)
}

func TestIngest_ConcreteFilter(t *testing.T) {
	result, err := Ingest(ingestLines, IngestOptions{
		Title:     "a.manifest",
		OutputCwd: ".",
		Filter:    ParseGroupFilter("runtime,tools"),
		Bucket:    0,
	})
	require.NoError(t, err)

	require.Len(t, result.Selected, 2)
	assert.Equal(t, "bin/app", result.Selected[0].Target)
	assert.Equal(t, "bin/tool", result.Selected[1].Target)

	require.Len(t, result.Unselected, 2)
	for _, e := range result.Unselected {
		assert.Equal(t, NoBucket, e.Bucket)
		assert.True(t, e.Group.IsNone())
	}
	assert.Equal(t, "lib/a.so", result.Unselected[0].Target)
	assert.Equal(t, "etc/conf", result.Unselected[1].Target)
}

func TestIngest_UngroupedOnlyWhenRequested(t *testing.T) {
	result, err := Ingest(ingestLines, IngestOptions{
		OutputCwd: ".",
		Filter:    ParseGroupFilter("tools,"),
	})
	require.NoError(t, err)

	var targets []string
	for _, e := range result.Selected {
		targets = append(targets, e.Target)
	}
	assert.Equal(t, []string{"bin/tool", "lib/a.so"}, targets)
}

func TestIngest_Seen(t *testing.T) {
	result, err := Ingest(ingestLines, IngestOptions{
		OutputCwd: ".",
		Filter:    ParseGroupFilter("tools"),
	})
	require.NoError(t, err)

	// groups are recorded whether or not the filter selects them
	assert.Equal(t, []Group{NoGroup, Named(""), Named("runtime"), Named("tools")}, result.Seen.Sorted())
}

func TestIngest_ExcludedEntriesAreAbsent(t *testing.T) {
	result, err := Ingest([]string{"{only}x=prebuilt/x\n"}, IngestOptions{
		OutputCwd: ".",
		Filter:    SelectAll(),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Selected)
	assert.Empty(t, result.Unselected)
	assert.Empty(t, result.Seen)
}

func TestIngest_ParseError(t *testing.T) {
	result, err := Ingest([]string{"a=b\n", "broken"}, IngestOptions{
		Title:     "bad",
		OutputCwd: ".",
		Filter:    SelectAll(),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnterminatedLine)
}
