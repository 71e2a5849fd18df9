package app

import (
	"fmt"
	"time"

	"github.com/quantmind-br/buildmanifest/internal/manifest"
	"github.com/quantmind-br/buildmanifest/internal/output"
	"github.com/quantmind-br/buildmanifest/internal/utils"
)

// Assembler coordinates ingestion, validation and output for one run
type Assembler struct {
	logger *utils.Logger
	writer *output.Writer
	loader *manifest.Loader
}

// AssemblerOptions contains options for creating an assembler
type AssemblerOptions struct {
	Logger *utils.Logger
	Writer *output.Writer
	Loader *manifest.Loader
}

// NewAssembler creates a new assembler
func NewAssembler(opts AssemblerOptions) (*Assembler, error) {
	if opts.Writer == nil {
		return nil, fmt.Errorf("writer is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	loader := opts.Loader
	if loader == nil {
		loader = manifest.NewLoader()
	}

	return &Assembler{
		logger: logger.WithComponent("assembler"),
		writer: opts.Writer,
		loader: loader,
	}, nil
}

// Run ingests every declaration in order, validates the requested groups,
// writes the outputs and finally touches the stamp. The first failure ends
// the run.
func (a *Assembler) Run(plan Plan) error {
	startTime := time.Now()

	a.logger.Debug().
		Int("outputs", len(plan.Outputs)).
		Int("inputs", len(plan.Declarations)).
		Msg("Starting manifest assembly")

	acc := NewAccumulator()
	for _, decl := range plan.Declarations {
		result, err := a.ingest(decl)
		if err != nil {
			return err
		}
		acc.Add(decl, result)
	}

	if err := acc.Validate(); err != nil {
		return err
	}

	if err := a.writer.WriteAll(plan.Outputs, acc.Selected()); err != nil {
		return err
	}

	if plan.Report != "" {
		if err := a.writeReport(plan, acc); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if plan.Stamp != "" {
		if err := utils.Touch(plan.Stamp); err != nil {
			return fmt.Errorf("failed to touch stamp: %w", err)
		}
	}

	a.logger.Info().
		Int("selected", len(acc.Selected())).
		Int("unselected", len(acc.Unselected())).
		Dur("duration", time.Since(startTime)).
		Msg("Manifest assembly completed")

	return nil
}

// ingest reads and ingests one declaration
func (a *Assembler) ingest(decl Declaration) (*manifest.IngestResult, error) {
	var lines []string
	switch decl.Kind {
	case KindManifest:
		var err error
		lines, err = a.loader.Load(decl.Value)
		if err != nil {
			return nil, err
		}
	case KindEntry:
		lines = a.loader.EntryLines(decl.Value)
	default:
		return nil, fmt.Errorf("unknown declaration kind: %d", decl.Kind)
	}

	result, err := manifest.Ingest(lines, decl.IngestOptions())
	if err != nil {
		return nil, err
	}

	logger := a.logger.WithInput(decl.Kind.String(), decl.Title, decl.Bucket)
	logger.Debug().
		Str("groups", decl.Groups.String()).
		Int("selected", len(result.Selected)).
		Int("unselected", len(result.Unselected)).
		Msg("Ingested input")
	if len(result.Unselected) > 0 {
		logger.Debug().
			Str("entries", manifest.Format(result.Unselected)).
			Msg("Skipped unselected entries")
	}

	return result, nil
}

// writeReport writes the provenance report for the run
func (a *Assembler) writeReport(plan Plan, acc *Accumulator) error {
	collector := output.NewReportCollector(output.ReportOptions{Path: plan.Report})
	collector.SetOutputs(plan.Outputs)

	for _, r := range acc.Records() {
		decl := r.Declaration
		summary := output.InputSummary{
			Kind:       decl.Kind.String(),
			Value:      decl.Value,
			Title:      decl.Title,
			Groups:     decl.Groups.String(),
			Selected:   len(r.Result.Selected),
			Unselected: len(r.Result.Unselected),
		}
		if decl.Bucket >= 0 && decl.Bucket < len(plan.Outputs) {
			summary.Output = plan.Outputs[decl.Bucket]
		}
		for _, g := range r.Result.Seen.Sorted() {
			summary.GroupsSeen = append(summary.GroupsSeen, g.String())
		}
		collector.AddInput(summary, r.Result.Unselected)
	}

	if err := collector.Flush(); err != nil {
		return err
	}

	a.logger.Debug().
		Str("path", plan.Report).
		Int("inputs", collector.Count()).
		Msg("Wrote report")
	return nil
}
