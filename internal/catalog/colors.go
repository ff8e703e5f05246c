package catalog

// Palette is a named scheme of five hex colors applied across a design.
type Palette struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Palettes lists every selectable color palette.
var Palettes = []Palette{
	{ID: "vibrant", Name: "Vibrant", Colors: []string{"#FF6B6B", "#FFA500", "#FFD700", "#98FF98", "#6BCB77"}},
	{ID: "neutral", Name: "Neutral Gray", Colors: []string{"#F5F5F5", "#D3D3D3", "#A9A9A9", "#696969", "#2F4F4F"}},
	{ID: "warm", Name: "Warm Earth", Colors: []string{"#D2B48C", "#CD853F", "#8B4513", "#A0522D", "#654321"}},
	{ID: "cool", Name: "Cool Blue", Colors: []string{"#ADD8E6", "#87CEEB", "#4682B4", "#00008B", "#191970"}},
	{ID: "pastel", Name: "Pastel", Colors: []string{"#FFB6C1", "#FFC0CB", "#E6E6FA", "#B0E0E6", "#F0E68C"}},
	{ID: "sunset", Name: "Sunset", Colors: []string{"#FF7F50", "#FF6347", "#FF4500", "#DC143C", "#8B0000"}},
	{ID: "forest", Name: "Forest", Colors: []string{"#228B22", "#32CD32", "#90EE90", "#006400", "#2F4F4F"}},
	{ID: "monochrome", Name: "Monochrome", Colors: []string{"#000000", "#333333", "#666666", "#999999", "#CCCCCC"}},
}

// PaletteByID looks up a palette by id.
func PaletteByID(id string) (Palette, bool) {
	for _, p := range Palettes {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}

// PaintColor is a single wall paint color for paint-change designs.
type PaintColor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// PaintColors lists every selectable paint color.
var PaintColors = []PaintColor{
	{ID: "white", Name: "White", Hex: "#FFFFFF"},
	{ID: "cream", Name: "Cream", Hex: "#FFFDD0"},
	{ID: "light_gray", Name: "Light Gray", Hex: "#D3D3D3"},
	{ID: "gray", Name: "Gray", Hex: "#808080"},
	{ID: "charcoal", Name: "Charcoal", Hex: "#36454F"},
	{ID: "black", Name: "Black", Hex: "#000000"},
	{ID: "navy", Name: "Navy", Hex: "#000080"},
	{ID: "light_blue", Name: "Light Blue", Hex: "#ADD8E6"},
	{ID: "blue", Name: "Blue", Hex: "#0000FF"},
	{ID: "teal", Name: "Teal", Hex: "#008080"},
	{ID: "light_green", Name: "Light Green", Hex: "#90EE90"},
	{ID: "green", Name: "Green", Hex: "#008000"},
	{ID: "sage", Name: "Sage", Hex: "#9DC183"},
	{ID: "beige", Name: "Beige", Hex: "#F5F5DC"},
	{ID: "tan", Name: "Tan", Hex: "#D2B48C"},
	{ID: "brown", Name: "Brown", Hex: "#8B4513"},
	{ID: "light_pink", Name: "Light Pink", Hex: "#FFB6C1"},
	{ID: "pink", Name: "Pink", Hex: "#FFC0CB"},
	{ID: "rose", Name: "Rose", Hex: "#FF007F"},
	{ID: "coral", Name: "Coral", Hex: "#FF7F50"},
	{ID: "orange", Name: "Orange", Hex: "#FFA500"},
	{ID: "gold", Name: "Gold", Hex: "#FFD700"},
	{ID: "yellow", Name: "Yellow", Hex: "#FFFF00"},
	{ID: "purple", Name: "Purple", Hex: "#800080"},
	{ID: "lavender", Name: "Lavender", Hex: "#E6E6FA"},
}

// PaintColorByID looks up a paint color by id.
func PaintColorByID(id string) (PaintColor, bool) {
	for _, c := range PaintColors {
		if c.ID == id {
			return c, true
		}
	}
	return PaintColor{}, false
}
