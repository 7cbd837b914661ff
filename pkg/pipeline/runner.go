package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/measure"
	"github.com/matzehuels/handoff/pkg/observability"
	"github.com/matzehuels/handoff/pkg/scene"
)

// Runner executes measurements. It holds no per-run state, so multiple
// goroutines can share one Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Extract flattens doc into an index and reports the extraction to the
// registered measure hooks.
func (r *Runner) Extract(ctx context.Context, doc *scene.Document) (*scene.Index, error) {
	start := time.Now()
	rects, err := doc.Rects()
	elapsed := time.Since(start)
	observability.Measure().OnExtract(ctx, len(rects), elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("extracted rectangles", "document", doc.Name, "rects", len(rects), "duration", elapsed)
	return scene.NewIndex(rects), nil
}

// Execute resolves both selectors in the document and composes their marks.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	extractStart := time.Now()
	idx, err := r.Extract(ctx, opts.Document)
	if err != nil {
		return nil, err
	}
	extractTime := time.Since(extractStart)

	selected, err := idx.Resolve(opts.Selected.String())
	if err != nil {
		return nil, err
	}
	target, err := idx.Resolve(opts.Target.String())
	if err != nil {
		return nil, err
	}

	return r.Compose(ctx, selected, target, opts.ResolvePage(), Stats{
		RectCount:   idx.Len(),
		ExtractTime: extractTime,
	})
}

// Compose measures an already resolved pair. stats carries extraction
// figures from the caller and is completed with the compose time.
func (r *Runner) Compose(ctx context.Context, selected, target geom.Rect, page geom.Page, stats Stats) (*Result, error) {
	relation := geom.Classify(selected, target).Case()

	start := time.Now()
	marks, err := measure.Compose(&selected, target, page)
	stats.ComposeTime = time.Since(start)
	observability.Measure().OnCompose(ctx, relation.String(),
		len(marks.DistanceLabels), len(marks.RulerGuides), stats.ComposeTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("composed marks",
		"selected", selected.Index,
		"target", target.Index,
		"relation", relation,
		"labels", len(marks.DistanceLabels),
		"guides", len(marks.RulerGuides))

	return &Result{
		Selected: selected,
		Target:   target,
		Relation: relation.String(),
		Page:     page,
		Marks:    marks,
		Stats:    stats,
	}, nil
}
