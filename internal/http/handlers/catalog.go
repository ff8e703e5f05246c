package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
)

type designTypeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NeedsStyle     bool   `json:"needs_style"`
	UsesPalette    bool   `json:"uses_palette"`
	UsesPaintColor bool   `json:"uses_paint_color"`
}

// ListDesignTypes returns the supported design types and their wizard shape.
func (a *App) ListDesignTypes(w http.ResponseWriter, r *http.Request) {
	out := make([]designTypeResponse, 0, len(catalog.DesignTypes))
	for _, t := range catalog.DesignTypes {
		out = append(out, designTypeResponse{
			ID:             string(t),
			Name:           t.Name(),
			NeedsStyle:     t.NeedsStyle(),
			UsesPalette:    t.UsesPalette(),
			UsesPaintColor: t.UsesPaintColor(),
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"design_types": out})
}

func (a *App) designType(w http.ResponseWriter, r *http.Request) (catalog.DesignType, bool) {
	t, ok := catalog.ParseDesignType(chi.URLParam(r, "type"))
	if !ok {
		a.writeError(w, http.StatusNotFound, "not_found", "unknown design type")
		return "", false
	}
	return t, true
}

// ListAreas returns the selectable areas for a design type.
func (a *App) ListAreas(w http.ResponseWriter, r *http.Request) {
	t, ok := a.designType(w, r)
	if !ok {
		return
	}
	type areaResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	areas := catalog.AreasFor(t)
	out := make([]areaResponse, 0, len(areas))
	for _, area := range areas {
		out = append(out, areaResponse{ID: area.ID, Name: area.Name})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"areas": out})
}

// ListStyles returns the selectable styles for a design type. Types without a
// style step return an empty list.
func (a *App) ListStyles(w http.ResponseWriter, r *http.Request) {
	t, ok := a.designType(w, r)
	if !ok {
		return
	}
	type styleResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}
	styles := catalog.StylesFor(t)
	out := make([]styleResponse, 0, len(styles))
	for _, s := range styles {
		out = append(out, styleResponse{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"styles": out})
}

// ListPalettes returns the color palettes.
func (a *App) ListPalettes(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{"palettes": catalog.Palettes})
}

// ListPaintColors returns the paint color swatches.
func (a *App) ListPaintColors(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{"paint_colors": catalog.PaintColors})
}
