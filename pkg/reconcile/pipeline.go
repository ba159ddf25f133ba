package reconcile

import (
	"context"
	"fmt"

	"github.com/agentstation/restomap/pkg/errors"
	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/logging"
	"github.com/agentstation/restomap/pkg/tabular"
)

// Pipeline runs the full transform: harmonize, clean, decode, reconcile.
// It is a pure function of its three inputs: every stage returns a new
// dataset, no state is kept between runs, and re-running with identical
// inputs yields identical results.
type Pipeline struct {
	validator  geo.Validator
	matched    Schema
	esb        Schema
	jakarta    Schema
	reconciler Reconciler
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline) error

// NewPipeline creates a Pipeline with options. Defaults: Jakarta region
// bounds and the default per-source schemas.
func NewPipeline(opts ...PipelineOption) (*Pipeline, error) {
	p := &Pipeline{
		validator:  geo.NewValidator(geo.JakartaBounds()),
		matched:    MatchedSchema(),
		esb:        ESBSchema(),
		jakarta:    JakartaSchema(),
		reconciler: New(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WithBounds sets the region bounding box used for coordinate validation.
func WithBounds(bounds geo.Bounds) PipelineOption {
	return func(p *Pipeline) error {
		if !bounds.IsValid() {
			return errors.NewConfigError("bounds", fmt.Sprintf("invalid region bounds %+v", bounds), nil)
		}
		p.validator = geo.NewValidator(bounds)
		return nil
	}
}

// WithSchemas overrides the per-source schemas. Zero-valued schemas keep
// their defaults.
func WithSchemas(matched, esb, jakarta Schema) PipelineOption {
	return func(p *Pipeline) error {
		if matched.Dataset != "" {
			p.matched = matched
		}
		if esb.Dataset != "" {
			p.esb = esb
		}
		if jakarta.Dataset != "" {
			p.jakarta = jakarta
		}
		return nil
	}
}

// WithReconciler sets a custom reconciler (useful for testing).
func WithReconciler(r Reconciler) PipelineOption {
	return func(p *Pipeline) error {
		if r == nil {
			return errors.NewConfigError("reconciler", "cannot be nil", nil)
		}
		p.reconciler = r
		return nil
	}
}

// Run executes the pipeline over the three raw datasets. A schema or
// computation failure in one dataset degrades that dataset's contribution
// to empty and is collected on the Result; the other outputs are still
// computed. The context carries the logger only; nothing blocks.
func (p *Pipeline) Run(ctx context.Context, matched, esb, jakarta tabular.Dataset) *Result {
	log := logging.FromContext(ctx)
	builder := NewResultBuilder()

	log.Info().
		Int("matched", matched.Len()).
		Int("esb", esb.Len()).
		Int("jakarta", jakarta.Len()).
		Msg("Datasets loaded")

	matchedPairs := prepare(ctx, builder, p.matched, matched, p.validator, DecodeMatched)
	esbRecords := prepare(ctx, builder, p.esb, esb, p.validator, DecodeESB)
	jakartaRecords := prepare(ctx, builder, p.jakarta, jakarta, p.validator, DecodeJakarta)

	partition := p.reconciler.Reconcile(matchedPairs, esbRecords, jakartaRecords)

	log.Info().
		Int("match", len(partition.Matched)).
		Int("esb_only", len(partition.ESBOnly)).
		Int("jakarta_only", len(partition.JakartaOnly)).
		Msg("Reconciliation complete")

	return builder.WithPartition(partition).Build()
}

// prepare harmonizes, cleans, and decodes one dataset, recording cleaning
// stats and degrading to nil on any recoverable failure.
func prepare[T any](
	ctx context.Context,
	builder *ResultBuilder,
	schema Schema,
	raw tabular.Dataset,
	validator geo.Validator,
	decode func(tabular.Dataset) ([]T, error),
) []T {
	log := logging.FromContext(ctx)

	var records []T
	err := guard("prepare", schema.Dataset, func() error {
		harmonized := tabular.Harmonize(raw, schema.Aliases)
		cleaned, stats := tabular.CleanCoordinates(harmonized, schema.LatField, schema.LonField, validator)
		builder.WithStats(schema.Dataset, stats)

		log.Debug().
			Str("dataset", schema.Dataset).
			Int("before", stats.Before).
			Int("after", stats.After).
			Msg("Coordinates cleaned")

		decoded, err := decode(cleaned)
		if err != nil {
			return err
		}
		records = decoded
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("dataset", schema.Dataset).Msg("Dataset degraded to empty")
		builder.WithError(err)
		return nil
	}

	return records
}

// guard runs fn, converting a panic in the sub-step into a recoverable
// ComputeError so one malformed dataset cannot halt the pipeline.
func guard(stage, dataset string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewComputeError(stage, dataset, fmt.Errorf("%v", r))
		}
	}()
	return fn()
}
