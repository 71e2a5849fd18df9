package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/quantmind-br/buildmanifest/internal/app"
	"github.com/quantmind-br/buildmanifest/internal/config"
	"github.com/quantmind-br/buildmanifest/internal/manifest"
)

// setting is an order-sensitive flag value. Unset settings take their value
// from the configuration once it is loaded.
type setting struct {
	value string
	set   bool
}

func (s setting) or(fallback string) string {
	if s.set {
		return s.value
	}
	return fallback
}

// pendingInput is an input flag with the settings in effect when it was
// parsed
type pendingInput struct {
	kind      app.Kind
	value     string
	cwd       setting
	outputCwd setting
	groups    setting
	title     setting
	bucket    int
}

// recorder captures the order-sensitive flags as pflag parses them, left
// to right
type recorder struct {
	outputs       []string
	cwd           setting
	outputCwd     setting
	groups        setting
	entryManifest setting
	inputs        []pendingInput
}

func (r *recorder) addInput(kind app.Kind, value string) {
	title := r.entryManifest
	if kind == app.KindManifest {
		title = setting{value: value, set: true}
	}
	r.inputs = append(r.inputs, pendingInput{
		kind:      kind,
		value:     value,
		cwd:       r.cwd,
		outputCwd: r.outputCwd,
		groups:    r.groups,
		title:     title,
		bucket:    len(r.outputs) - 1,
	})
}

// Declarations resolves the recorded inputs against cfg. Inputs declared
// before the first output are written to it.
func (r *recorder) Declarations(cfg *config.Config) []app.Declaration {
	decls := make([]app.Declaration, 0, len(r.inputs))
	for _, in := range r.inputs {
		bucket := in.bucket
		if bucket < 0 {
			bucket = 0
		}
		decls = append(decls, app.Declaration{
			Kind:      in.kind,
			Value:     in.value,
			Title:     in.title.or(cfg.Input.EntryManifest),
			Cwd:       in.cwd.or(cfg.Input.Cwd),
			OutputCwd: in.outputCwd.or(cfg.Output.Cwd),
			Groups:    manifest.ParseGroupFilter(in.groups.or(cfg.Input.Groups)),
			Bucket:    bucket,
		})
	}
	return decls
}

// Outputs returns the declared outputs in order
func (r *recorder) Outputs() []string {
	return r.outputs
}

// outputValue records --output
type outputValue struct {
	r *recorder
}

func (v *outputValue) Set(s string) error {
	v.r.outputs = append(v.r.outputs, s)
	return nil
}

func (v *outputValue) String() string {
	return strings.Join(v.r.outputs, ",")
}

func (v *outputValue) Type() string {
	return "file"
}

// settingValue records a setting that applies to later inputs
type settingValue struct {
	s   *setting
	typ string
	def string
}

func (v *settingValue) Set(s string) error {
	*v.s = setting{value: s, set: true}
	return nil
}

func (v *settingValue) String() string {
	return v.s.or(v.def)
}

func (v *settingValue) Type() string {
	return v.typ
}

// inputValue records --manifest or --entry
type inputValue struct {
	r    *recorder
	kind app.Kind
	typ  string
}

func (v *inputValue) Set(s string) error {
	v.r.addInput(v.kind, s)
	return nil
}

func (v *inputValue) String() string {
	return ""
}

func (v *inputValue) Type() string {
	return v.typ
}

// register adds the order-sensitive flags to fs
func (r *recorder) register(fs *pflag.FlagSet) {
	fs.Var(&outputValue{r: r}, "output", "Output manifest or tree; later inputs, and any inputs before the first --output, are written to it (repeatable)")
	fs.Var(&settingValue{s: &r.outputCwd, typ: "dir", def: config.DefaultOutputCwd}, "output-cwd",
		"Directory later source paths are made relative to")
	fs.Var(&settingValue{s: &r.cwd, typ: "dir", def: config.DefaultInputCwd}, "cwd",
		"Directory later source paths are relative to")
	fs.Var(&settingValue{s: &r.groups, typ: "list", def: config.DefaultGroups}, "groups",
		`Groups selected from later inputs: "all" or a comma-separated list (empty item = no group)`)
	fs.Var(&settingValue{s: &r.entryManifest, typ: "title", def: config.DefaultEntryManifest}, "entry-manifest",
		"Provenance title of later --entry flags")
	fs.Var(&inputValue{r: r, kind: app.KindManifest, typ: "file"}, "manifest", "Manifest file to read (repeatable)")
	fs.Var(&inputValue{r: r, kind: app.KindEntry, typ: "target=source"}, "entry", "Single manifest entry (repeatable)")
}
