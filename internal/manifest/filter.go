package manifest

import "strings"

// ExcludedMarker is the reserved marker for vendor/prebuilt material. Any
// entry whose rebased source path contains it is never propagated.
const ExcludedMarker = "prebuilt"

// IsExcluded reports whether a rebased source path carries the reserved
// marker anywhere in it.
func IsExcluded(source string) bool {
	return strings.Contains(source, ExcludedMarker)
}
