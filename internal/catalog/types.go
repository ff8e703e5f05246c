package catalog

import "strings"

// DesignType selects which wizard steps and option sets apply to a request.
type DesignType string

const (
	DesignTypeInterior DesignType = "interior"
	DesignTypeExterior DesignType = "exterior"
	DesignTypeGarden   DesignType = "garden"
	DesignTypePaint    DesignType = "paint"
)

// DesignTypes lists every supported type in presentation order.
var DesignTypes = []DesignType{
	DesignTypeInterior,
	DesignTypeExterior,
	DesignTypeGarden,
	DesignTypePaint,
}

// ParseDesignType normalizes a raw string and validates it against the
// closed set.
func ParseDesignType(raw string) (DesignType, bool) {
	t := DesignType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case DesignTypeInterior, DesignTypeExterior, DesignTypeGarden, DesignTypePaint:
		return t, true
	}
	return "", false
}

// Valid reports whether the type belongs to the closed set.
func (t DesignType) Valid() bool {
	_, ok := ParseDesignType(string(t))
	return ok
}

// Name returns the human label for the type.
func (t DesignType) Name() string {
	switch t {
	case DesignTypeInterior:
		return "Interior Design"
	case DesignTypeExterior:
		return "Exterior Design"
	case DesignTypeGarden:
		return "Garden Design"
	case DesignTypePaint:
		return "Paint Change"
	}
	return string(t)
}

// NeedsStyle reports whether the wizard includes a style-selection step.
// Garden designs go straight to palettes and paint changes pick a single color.
func (t DesignType) NeedsStyle() bool {
	return t == DesignTypeInterior || t == DesignTypeExterior
}

// UsesPaintColor reports whether the request ends with a single paint color
// instead of a palette.
func (t DesignType) UsesPaintColor() bool {
	return t == DesignTypePaint
}

// UsesPalette reports whether the request ends with a palette selection.
func (t DesignType) UsesPalette() bool {
	return t.Valid() && !t.UsesPaintColor()
}
