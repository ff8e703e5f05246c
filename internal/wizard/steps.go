package wizard

import (
	"fmt"
	"strings"

	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

// Step identifies one input-collection stage of the wizard.
type Step string

const (
	StepPhoto      Step = "photo"
	StepArea       Step = "area"
	StepStyle      Step = "style"
	StepPaintColor Step = "paint_color"
	StepPalette    Step = "palette"
)

// Title returns the heading shown for the step.
func (s Step) Title() string {
	switch s {
	case StepPhoto:
		return "Add a Photo"
	case StepArea:
		return "Choose Room"
	case StepStyle:
		return "Select Style"
	case StepPaintColor:
		return "Select Color"
	case StepPalette:
		return "Pick Colors"
	}
	return string(s)
}

// StepsFor derives the ordered step sequence for a design type. Photo and
// area selection always lead; paint changes end with a single color pick,
// style-bearing types insert a style step before the palette, and everything
// else goes straight to the palette.
func StepsFor(t catalog.DesignType) ([]Step, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown design type %q", domain.ErrInvalidRequest, string(t))
	}
	steps := []Step{StepPhoto, StepArea}
	switch {
	case t.UsesPaintColor():
		steps = append(steps, StepPaintColor)
	case t.NeedsStyle():
		steps = append(steps, StepStyle, StepPalette)
	default:
		steps = append(steps, StepPalette)
	}
	return steps, nil
}

// stepRequirements maps each step to the request fields it is responsible
// for. The step list and the validity checks share this single table so the
// two cannot drift apart when sequences differ per design type.
var stepRequirements = map[Step]func(domain.DesignRequest) bool{
	StepPhoto: func(r domain.DesignRequest) bool {
		return !r.Source.IsZero()
	},
	StepArea: func(r domain.DesignRequest) bool {
		return strings.TrimSpace(r.AreaID) != ""
	},
	StepStyle: func(r domain.DesignRequest) bool {
		if strings.TrimSpace(r.StyleID) == "" {
			return false
		}
		if r.StyleID == catalog.StyleCustom {
			return strings.TrimSpace(r.CustomPrompt) != ""
		}
		return true
	},
	StepPaintColor: func(r domain.DesignRequest) bool {
		return strings.TrimSpace(r.PaintColorID) != ""
	},
	StepPalette: func(r domain.DesignRequest) bool {
		return strings.TrimSpace(r.PaletteID) != ""
	},
}

// StepComplete reports whether the fields owned by the step are populated.
func StepComplete(s Step, req domain.DesignRequest) bool {
	check, ok := stepRequirements[s]
	if !ok {
		return false
	}
	return check(req)
}

// Validate checks that every field required by the request's design type is
// populated, using the same table the wizard steps use.
func Validate(req domain.DesignRequest) error {
	steps, err := StepsFor(req.DesignType)
	if err != nil {
		return err
	}
	for _, s := range steps {
		if !StepComplete(s, req) {
			return fmt.Errorf("%w: %s step incomplete", domain.ErrInvalidRequest, s)
		}
	}
	return nil
}
