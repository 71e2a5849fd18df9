package output

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/buildmanifest/internal/manifest"
	"github.com/quantmind-br/buildmanifest/internal/utils"
)

// Report describes what one run read and where each entry went
type Report struct {
	Outputs    []string       `yaml:"outputs"`
	Inputs     []InputSummary `yaml:"inputs"`
	Unselected []EntryRecord  `yaml:"unselected,omitempty"`
}

// InputSummary describes one --manifest or --entry declaration
type InputSummary struct {
	Kind       string   `yaml:"kind"`
	Value      string   `yaml:"value"`
	Title      string   `yaml:"title"`
	Output     string   `yaml:"output,omitempty"`
	Groups     string   `yaml:"groups"`
	GroupsSeen []string `yaml:"groups_seen,omitempty"`
	Selected   int      `yaml:"selected"`
	Unselected int      `yaml:"unselected"`
}

// EntryRecord is an entry with its provenance
type EntryRecord struct {
	Manifest string `yaml:"manifest"`
	Target   string `yaml:"target"`
	Source   string `yaml:"source"`
}

// ReportCollector gathers a Report and writes it as YAML
type ReportCollector struct {
	path    string
	enabled bool
	report  Report
}

// ReportOptions contains options for the report collector
type ReportOptions struct {
	Path string
}

// NewReportCollector creates a collector; it is disabled without a path
func NewReportCollector(opts ReportOptions) *ReportCollector {
	return &ReportCollector{
		path:    opts.Path,
		enabled: opts.Path != "",
	}
}

// SetOutputs records the output destinations
func (c *ReportCollector) SetOutputs(outputs []string) {
	c.report.Outputs = append([]string(nil), outputs...)
}

// AddInput records one input declaration and its unselected entries
func (c *ReportCollector) AddInput(summary InputSummary, unselected []manifest.Entry) {
	if !c.enabled {
		return
	}
	c.report.Inputs = append(c.report.Inputs, summary)
	for _, e := range unselected {
		c.report.Unselected = append(c.report.Unselected, EntryRecord{
			Manifest: e.Manifest,
			Target:   e.Target,
			Source:   e.Source,
		})
	}
}

// Flush writes the report to its path
func (c *ReportCollector) Flush() error {
	if !c.enabled {
		return nil
	}

	data, err := yaml.Marshal(&c.report)
	if err != nil {
		return err
	}

	if err := utils.EnsureDir(c.path); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// Count returns the number of recorded inputs
func (c *ReportCollector) Count() int {
	return len(c.report.Inputs)
}
