package catalog

// Area is a design-type-specific subtype of the photographed space, such as a
// room for interiors or a structure for exteriors.
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var areasByType = map[DesignType][]Area{
	DesignTypeInterior: {
		{ID: "bedroom", Name: "Bedroom"},
		{ID: "living", Name: "Living Room"},
		{ID: "kitchen", Name: "Kitchen"},
		{ID: "bathroom", Name: "Bathroom"},
		{ID: "office", Name: "Office"},
		{ID: "dining", Name: "Dining Room"},
		{ID: "study", Name: "Study Room"},
		{ID: "gym", Name: "Gym"},
		{ID: "playroom", Name: "Playroom"},
	},
	DesignTypeExterior: {
		{ID: "house", Name: "House"},
		{ID: "apartment", Name: "Apartment"},
		{ID: "garage", Name: "Garage"},
		{ID: "patio", Name: "Patio"},
		{ID: "porch", Name: "Porch"},
		{ID: "deck", Name: "Deck"},
		{ID: "fence", Name: "Fence"},
	},
	DesignTypeGarden: {
		{ID: "front", Name: "Front Garden"},
		{ID: "backyard", Name: "Backyard"},
		{ID: "vegetable", Name: "Vegetable Garden"},
		{ID: "flower", Name: "Flower Garden"},
		{ID: "zen", Name: "Zen Garden"},
		{ID: "landscape", Name: "Landscape"},
	},
	DesignTypePaint: {
		{ID: "wall", Name: "Wall Paint"},
		{ID: "trim", Name: "Trim & Molding"},
		{ID: "exterior", Name: "Exterior Paint"},
		{ID: "accent", Name: "Accent Wall"},
		{ID: "full", Name: "Full Interior"},
	},
}

// AreasFor returns the selectable areas for a design type.
func AreasFor(t DesignType) []Area {
	return areasByType[t]
}

// AreaByID looks up an area within the given design type's option set.
func AreaByID(t DesignType, id string) (Area, bool) {
	for _, a := range areasByType[t] {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}
