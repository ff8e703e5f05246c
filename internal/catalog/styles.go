package catalog

// StyleCustom is the sentinel style id meaning the user writes their own
// prompt instead of using a canned one.
const StyleCustom = "custom"

// Style is a selectable design style with the canned prompt text sent to the
// generation model when chosen.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"-"`
}

// IsCustom reports whether the style requires a free-text prompt.
func (s Style) IsCustom() bool {
	return s.ID == StyleCustom
}

// InteriorStyles applies to interior designs.
var InteriorStyles = []Style{
	{ID: StyleCustom, Name: "Custom", Description: "Create your own design"},
	{ID: "modern", Name: "Modern", Description: "Contemporary minimalist",
		Prompt: "modern minimalist interior design, clean lines, neutral colors, sleek furniture"},
	{ID: "scandinavian", Name: "Scandinavian", Description: "Light and airy",
		Prompt: "scandinavian interior design, light wood, white walls, cozy furniture, natural light"},
	{ID: "luxury", Name: "Luxury", Description: "Premium contemporary",
		Prompt: "luxury contemporary interior design, high-end finishes, elegant furniture, ambient lighting"},
	{ID: "cozy", Name: "Cozy", Description: "Warm and inviting",
		Prompt: "cozy warm interior design, soft lighting, textured fabrics, comfortable furniture"},
	{ID: "industrial", Name: "Industrial", Description: "Raw and edgy",
		Prompt: "industrial interior design, exposed brick, metal accents, concrete, vintage elements"},
	{ID: "bohemian", Name: "Bohemian", Description: "Eclectic and artistic",
		Prompt: "bohemian interior design, colorful patterns, plants, layered textiles, artistic decor"},
	{ID: "minimalist", Name: "Minimalist", Description: "Less is more",
		Prompt: "minimalist interior design, monochrome colors, clean spaces, essential furniture only"},
	{ID: "vintage", Name: "Vintage", Description: "Nostalgic charm",
		Prompt: "vintage interior design, antique furniture, warm wood tones, classic decor"},
	{ID: "tropical", Name: "Tropical", Description: "Vibrant and lush",
		Prompt: "tropical interior design, bright colors, plants, natural materials, relaxed atmosphere"},
}

// ExteriorStyles applies to exterior designs.
var ExteriorStyles = []Style{
	{ID: StyleCustom, Name: "Custom", Description: "Create your own"},
	{ID: "modern", Name: "Modern", Description: "Contemporary & sleek",
		Prompt: "modern contemporary house exterior design, clean lines, minimalist, glass and steel elements, flat rooflines"},
	{ID: "farmhouse", Name: "Farmhouse", Description: "Rustic charm",
		Prompt: "farmhouse architectural style exterior, rustic wood siding, metal roof, white trim, front porch, charming details"},
	{ID: "gothic", Name: "Gothic", Description: "Dark & dramatic",
		Prompt: "gothic architectural style exterior, pointed arches, ornate details, dark stone, dramatic towers, Victorian influence"},
	{ID: "mediterranean", Name: "Mediterranean", Description: "Warm & sunny",
		Prompt: "mediterranean architectural style exterior, terracotta roof, stucco walls, arched openings, lush landscaping, warm colors"},
	{ID: "colonial", Name: "Colonial", Description: "Classic elegance",
		Prompt: "colonial architectural style exterior, symmetrical design, shuttered windows, brick or wood siding, pitched roof, timeless elegance"},
	{ID: "ancient_chinese", Name: "Ancient Chinese", Description: "Oriental tradition",
		Prompt: "ancient Chinese architectural style exterior, upturned eaves, intricate details, red and gold colors, traditional craftsmanship, serene garden"},
	{ID: "japanese", Name: "Japanese", Description: "Zen aesthetics",
		Prompt: "traditional Japanese architectural style exterior, minimalist design, natural materials, wooden beams, sliding panels, manicured garden"},
	{ID: "victorian", Name: "Victorian", Description: "Ornate & grand",
		Prompt: "Victorian architectural style exterior, intricate details, gabled roofs, ornamental woodwork, bay windows, sophisticated grandeur"},
	{ID: "craftsman", Name: "Craftsman", Description: "Handcrafted details",
		Prompt: "craftsman architectural style exterior, natural materials, exposed beams, stone or wood accents, deep overhangs, warm inviting design"},
	{ID: "mid_century", Name: "Mid-Century", Description: "Retro modern",
		Prompt: "mid-century modern architectural style exterior, clean lines, large windows, horizontal emphasis, natural integration with landscape, atomic age influence"},
}

// StylesFor returns the style list for a design type, or nil when the type
// has no style step.
func StylesFor(t DesignType) []Style {
	switch t {
	case DesignTypeInterior:
		return InteriorStyles
	case DesignTypeExterior:
		return ExteriorStyles
	}
	return nil
}

// StyleByID looks up a style within the given design type's list.
func StyleByID(t DesignType, id string) (Style, bool) {
	for _, s := range StylesFor(t) {
		if s.ID == id {
			return s, true
		}
	}
	return Style{}, false
}
