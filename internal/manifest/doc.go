// Package manifest provides the types and utilities for reading build
// manifests. A manifest maps logical target paths to source files, one
// mapping per line, optionally tagged with a group.
//
// # Manifest Format
//
// Every line is newline-terminated and has the form:
//
//	[{group}]target=source
//
// The group prefix is optional and may be empty ({}), which is distinct from
// having no group at all. Target and source are split on the first '='.
//
//	{runtime}bin/app=out/app
//	{}lib/libc.so=sysroot/lib/libc.so
//	data/config.json=../src/config.json
//
// # Usage
//
// Ingest a manifest file, keeping only two groups:
//
//	filter := manifest.ParseGroupFilter("runtime,tools")
//	lines, err := manifest.NewLoader().Load("images.manifest")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := manifest.Ingest(lines, manifest.IngestOptions{
//	    Title:     "images.manifest",
//	    InputCwd:  "out/default",
//	    OutputCwd: ".",
//	    Filter:    filter,
//	    Bucket:    0,
//	})
//
// Source paths are rebased from InputCwd to OutputCwd while parsing. Entries
// whose rebased source contains the reserved "prebuilt" marker are dropped.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrUnterminatedLine: line has no trailing newline
//   - ErrUnterminatedGroup: a '{' group prefix is never closed
//   - ErrMissingSeparator: line has no target=source separator
//   - ErrInvalidGroup: group label contains '='
//   - ErrEmptyTarget: target path is empty
//   - ErrUnknownGroup: a requested group never appeared in the input
//   - ErrFileNotFound: manifest file does not exist
//
// Parse failures are reported as *ParseError and group failures as
// *UnknownGroupError; both unwrap to the sentinels above.
package manifest
