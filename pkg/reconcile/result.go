package reconcile

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/restomap/pkg/tabular"
)

// Result represents the outcome of a pipeline run.
type Result struct {
	// Partition is the three-way categorized output.
	Partition Partition

	// Errors contains recoverable errors that degraded a dataset's
	// contribution to empty (schema and computation failures).
	Errors []error

	// Warnings contains non-critical issues.
	Warnings []string

	// Metadata about the run.
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the pipeline run.
type ResultMetadata struct {
	// StartTime when the run started.
	StartTime utc.Time

	// EndTime when the run completed.
	EndTime utc.Time

	// Duration of the run.
	Duration time.Duration

	// Stats holds per-dataset before/after cleaning counts.
	Stats map[string]tabular.CleanStats
}

// HasErrors returns true if any dataset's contribution was degraded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there were warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := fmt.Sprintf("Reconciled %d records (match: %d, esb-only: %d, jakarta-only: %d)",
		r.Partition.Total(),
		len(r.Partition.Matched),
		len(r.Partition.ESBOnly),
		len(r.Partition.JakartaOnly))
	if r.HasErrors() {
		s += fmt.Sprintf(" with %d recoverable errors", len(r.Errors))
	}
	return s
}

// ResultBuilder helps construct Result objects.
type ResultBuilder struct {
	result    *Result
	startedAt time.Time
}

// NewResultBuilder creates a new ResultBuilder.
func NewResultBuilder() *ResultBuilder {
	now := time.Now()
	return &ResultBuilder{
		startedAt: now,
		result: &Result{
			Errors:   []error{},
			Warnings: []string{},
			Metadata: ResultMetadata{
				StartTime: utc.New(now),
				Stats:     make(map[string]tabular.CleanStats),
			},
		},
	}
}

// WithPartition sets the categorized output.
func (b *ResultBuilder) WithPartition(p Partition) *ResultBuilder {
	b.result.Partition = p
	return b
}

// WithError adds a recoverable error.
func (b *ResultBuilder) WithError(err error) *ResultBuilder {
	if err != nil {
		b.result.Errors = append(b.result.Errors, err)
	}
	return b
}

// WithWarning adds a warning.
func (b *ResultBuilder) WithWarning(warning string) *ResultBuilder {
	b.result.Warnings = append(b.result.Warnings, warning)
	return b
}

// WithStats records before/after cleaning counts for a dataset.
func (b *ResultBuilder) WithStats(dataset string, stats tabular.CleanStats) *ResultBuilder {
	b.result.Metadata.Stats[dataset] = stats
	return b
}

// Build finalizes and returns the Result.
func (b *ResultBuilder) Build() *Result {
	now := time.Now()
	b.result.Metadata.EndTime = utc.New(now)
	b.result.Metadata.Duration = now.Sub(b.startedAt)
	return b.result
}
