package wizard

import (
	"context"
	"errors"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

// Submitter runs the generation pipeline when the wizard completes. It is
// satisfied by the generation orchestrator without this package importing it.
type Submitter interface {
	Generate(ctx context.Context, req domain.DesignRequest) (*domain.GenerationResult, error)
}

// Controller tracks the current step of a wizard run and the request being
// assembled. It is a pure state holder: completion predicates are exposed for
// the caller to consult, but transitions are not blocked internally.
type Controller struct {
	template  domain.DesignRequest // empty request keeping only the design type
	steps     []Step
	current   int
	request   domain.DesignRequest
	submitter Submitter
}

// Advance describes the outcome of an Advance call.
type Advance struct {
	Submitted bool
	Result    *domain.GenerationResult
}

// NewController starts a wizard for the given request template. The design
// type must already be set; it is fixed for the lifetime of the run, so the
// step sequence is computed once.
func NewController(req domain.DesignRequest, submitter Submitter) (*Controller, error) {
	steps, err := StepsFor(req.DesignType)
	if err != nil {
		return nil, err
	}
	if submitter == nil {
		return nil, errors.New("wizard: submitter is required")
	}
	template := domain.DesignRequest{DesignType: req.DesignType}
	return &Controller{
		template:  template,
		steps:     steps,
		request:   req,
		submitter: submitter,
	}, nil
}

// Steps returns the derived step sequence.
func (c *Controller) Steps() []Step {
	out := make([]Step, len(c.steps))
	copy(out, c.steps)
	return out
}

// Current returns the zero-based index of the active step.
func (c *Controller) Current() int {
	return c.current
}

// CurrentStep returns the active step.
func (c *Controller) CurrentStep() Step {
	return c.steps[c.current]
}

// Request returns a copy of the request assembled so far.
func (c *Controller) Request() domain.DesignRequest {
	return c.request
}

// SetSource records the user's photo.
func (c *Controller) SetSource(src domain.SourceImage) {
	c.request.Source = src
}

// SetArea records the selected area subtype.
func (c *Controller) SetArea(id string) {
	c.request.AreaID = id
}

// SetStyle records the selected style id.
func (c *Controller) SetStyle(id string) {
	c.request.StyleID = id
}

// SetCustomPrompt records the free-text description for custom styles.
func (c *Controller) SetCustomPrompt(text string) {
	c.request.CustomPrompt = text
}

// SetPalette records the selected palette id.
func (c *Controller) SetPalette(id string) {
	c.request.PaletteID = id
}

// SetPaintColor records the selected paint color id.
func (c *Controller) SetPaintColor(id string) {
	c.request.PaintColorID = id
}

// IsStepComplete reports whether the fields owned by the step at the given
// index are populated in the current request.
func (c *Controller) IsStepComplete(index int) bool {
	if index < 0 || index >= len(c.steps) {
		return false
	}
	return StepComplete(c.steps[index], c.request)
}

// IsComplete reports whether every step's fields are populated.
func (c *Controller) IsComplete() bool {
	for i := range c.steps {
		if !c.IsStepComplete(i) {
			return false
		}
	}
	return true
}

// Advance moves to the next step, or submits the assembled request when
// already on the last one. Callers are expected to check IsStepComplete for
// the active step before invoking.
func (c *Controller) Advance(ctx context.Context) (Advance, error) {
	if c.current < len(c.steps)-1 {
		c.current++
		return Advance{}, nil
	}
	result, err := c.submitter.Generate(ctx, c.request)
	if err != nil {
		return Advance{Submitted: true}, err
	}
	return Advance{Submitted: true, Result: result}, nil
}

// Retreat moves back one step. It returns false when already on the first
// step, signalling that the wizard should be abandoned by the caller.
func (c *Controller) Retreat() bool {
	if c.current == 0 {
		return false
	}
	c.current--
	return true
}

// Restart clears the assembled request (keeping the design type) and returns
// to the first step.
func (c *Controller) Restart() {
	c.request = c.template
	c.current = 0
}
