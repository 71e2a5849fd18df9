package app

import (
	"github.com/quantmind-br/buildmanifest/internal/manifest"
)

// Kind identifies the source of a declaration's entries
type Kind int

const (
	// KindManifest reads entries from a manifest file
	KindManifest Kind = iota
	// KindEntry is a single TARGET=SOURCE given on the command line
	KindEntry
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindManifest:
		return "manifest"
	case KindEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Declaration is one input as it was declared, with the settings in effect
// at that point on the command line.
type Declaration struct {
	Kind Kind
	// Value is the manifest path or the TARGET=SOURCE text
	Value string
	// Title labels the provenance of the input's entries
	Title string
	// Cwd is the directory the input's sources are relative to
	Cwd string
	// OutputCwd is the directory emitted sources are made relative to
	OutputCwd string
	Groups    manifest.GroupFilter
	// Bucket is the index of the most recent output, or manifest.NoBucket
	Bucket int
}

// IngestOptions returns the ingestion options for the declaration
func (d Declaration) IngestOptions() manifest.IngestOptions {
	return manifest.IngestOptions{
		Title:     d.Title,
		InputCwd:  d.Cwd,
		OutputCwd: d.OutputCwd,
		Filter:    d.Groups,
		Bucket:    d.Bucket,
	}
}

// Plan is everything one run needs
type Plan struct {
	Outputs      []string
	Declarations []Declaration
	// Stamp is touched after every output is written, if set
	Stamp string
	// Report receives a YAML provenance report, if set
	Report string
}
