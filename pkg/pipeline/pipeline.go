// Package pipeline runs the extract → resolve → compose flow shared by the
// CLI and the HTTP API.
//
// Both entry points start from a decoded [scene.Document] and two selectors.
// Centralizing the flow keeps page fallback, selector resolution, logging
// and observability hooks identical everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Document: doc,
//	    Selected: pipeline.ParseSelector("1:2"),
//	    Target:   pipeline.ParseSelector("#4"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Marks.DistanceLabels))
//
// Extract only:
//
//	idx, err := runner.Extract(ctx, doc)
package pipeline

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/measure"
	"github.com/matzehuels/handoff/pkg/scene"
)

// =============================================================================
// Selectors
// =============================================================================

// Selector names one rectangle of a document, either by node id or by
// extraction index. Exactly one of ID and Index is set.
type Selector struct {
	ID    string `json:"id,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// ParseSelector reads the CLI form of a selector: "#<n>" selects by index,
// anything else by node id.
func ParseSelector(s string) Selector {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			return Selector{Index: &n}
		}
	}
	return Selector{ID: s}
}

// IndexSelector selects the rectangle with extraction index n.
func IndexSelector(n int) Selector {
	return Selector{Index: &n}
}

// IsZero reports whether the selector names nothing.
func (s Selector) IsZero() bool {
	return s.ID == "" && s.Index == nil
}

// String returns the selector in the form accepted by [scene.Index.Resolve].
func (s Selector) String() string {
	if s.Index != nil {
		return "#" + strconv.Itoa(*s.Index)
	}
	return s.ID
}

// Validate checks that exactly one of ID and Index is set.
func (s Selector) Validate() error {
	switch {
	case s.IsZero():
		return errors.New(errors.ErrCodeInvalidSelector, "selector needs an id or an index")
	case s.ID != "" && s.Index != nil:
		return errors.New(errors.ErrCodeInvalidSelector, "selector has both id %q and index %d", s.ID, *s.Index)
	case s.Index != nil && *s.Index < 0:
		return errors.New(errors.ErrCodeInvalidSelector, "selector index must not be negative, got %d", *s.Index)
	}
	return errors.ValidateSelector(s.String())
}

// =============================================================================
// Options
// =============================================================================

// Options contains everything needed for one measurement.
type Options struct {
	Document *scene.Document `json:"document"`
	Selected Selector        `json:"selected"`
	Target   Selector        `json:"target"`

	// Page is used when the document carries no page of its own.
	Page geom.Page `json:"-"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Document == nil {
		return errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if o.Selected.IsZero() {
		return errors.New(errors.ErrCodeInvalidInput, "selected rectangle is required")
	}
	if o.Target.IsZero() {
		return errors.New(errors.ErrCodeInvalidInput, "target rectangle is required")
	}
	if err := o.Selected.Validate(); err != nil {
		return err
	}
	if err := o.Target.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ResolvePage returns the document's page, falling back to o.Page.
func (o *Options) ResolvePage() geom.Page {
	if o.Document != nil && o.Document.Page != nil {
		return *o.Document.Page
	}
	return o.Page
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of one measurement.
type Result struct {
	Selected geom.Rect      `json:"selected"`
	Target   geom.Rect      `json:"target"`
	Relation string         `json:"relation"`
	Page     geom.Page      `json:"page"`
	Marks    measure.Result `json:"marks"`
	Stats    Stats          `json:"-"`
}

// Stats contains timing and size information.
type Stats struct {
	RectCount   int
	ExtractTime time.Duration
	ComposeTime time.Duration
}
