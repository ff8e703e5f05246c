package generation

import (
	"fmt"
	"strings"

	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

// DefaultNegativePrompt discourages the artefacts the model most often
// produces. It travels alongside the main prompt, never concatenated into it.
const DefaultNegativePrompt = "blurry, distorted, ugly, low quality"

// Prompt is the assembled instruction pair sent to the generation service.
type Prompt struct {
	Text     string
	Negative string
}

// BuildPrompt deterministically assembles the final prompt from the request.
// Paint changes synthesize a wall-painting instruction from the resolved area
// and color names; styled designs use the style's canned prompt text
// verbatim; custom styles use the user's free text. Palette-bearing requests
// get a clause appending the palette name and its constituent colors.
func BuildPrompt(req domain.DesignRequest) (Prompt, error) {
	var text string

	switch {
	case req.DesignType.UsesPaintColor():
		color, ok := catalog.PaintColorByID(req.PaintColorID)
		if !ok {
			return Prompt{}, fmt.Errorf("%w: unknown paint color %q", domain.ErrInvalidRequest, req.PaintColorID)
		}
		text = fmt.Sprintf(
			"Professional interior design: Paint the walls of this %s with a beautiful %s color. "+
				"The walls should be entirely covered in this paint color. The paint should be applied evenly and professionally. "+
				"Keep the rest of the room visible and properly lit. High quality, realistic rendering.",
			areaPhrase(req.DesignType, req.AreaID), color.Name)

	case req.StyleID != "" && req.StyleID != catalog.StyleCustom:
		style, ok := catalog.StyleByID(req.DesignType, req.StyleID)
		if !ok {
			return Prompt{}, fmt.Errorf("%w: unknown style %q for %s designs", domain.ErrInvalidRequest, req.StyleID, req.DesignType)
		}
		text = style.Prompt

	default:
		text = strings.TrimSpace(req.CustomPrompt)
		if text == "" {
			return Prompt{}, fmt.Errorf("%w: custom prompt is required", domain.ErrInvalidRequest)
		}
	}

	if req.DesignType.UsesPalette() && req.PaletteID != "" {
		palette, ok := catalog.PaletteByID(req.PaletteID)
		if !ok {
			return Prompt{}, fmt.Errorf("%w: unknown palette %q", domain.ErrInvalidRequest, req.PaletteID)
		}
		text += fmt.Sprintf(
			". Use a %s color scheme with these specific colors: %s. "+
				"Ensure the design prominently features these colors throughout. The color palette should be a key design element.",
			palette.Name, strings.Join(palette.Colors, ", "))
	}

	return Prompt{Text: text, Negative: DefaultNegativePrompt}, nil
}

// areaPhrase renders the area subtype as a lowercase in-sentence noun. Areas
// outside the design type's option set are humanized from their raw id, so a
// paint request for a plain room id still reads naturally.
func areaPhrase(t catalog.DesignType, areaID string) string {
	if area, ok := catalog.AreaByID(t, areaID); ok {
		return strings.ToLower(area.Name)
	}
	return strings.ToLower(strings.ReplaceAll(areaID, "_", " "))
}
