package domain

// MaxIngredients is the capacity of a recipe's ingredient list
const MaxIngredients = 8

// Ingredient is a single material requirement of a recipe
type Ingredient struct {
	VNUM     VNUM `json:"vnum" validate:"gt=0"`
	Quantity int  `json:"quantity" validate:"min=1,max=100"`
}

// Recipe is a craftable transformation: ingredients in, product out
type Recipe struct {
	VNUM            VNUM            `json:"vnum" validate:"gt=0"`
	Name            string          `json:"name"`
	RequiredSkill   string          `json:"required_skill,omitempty"`
	MinSkillPct     int             `json:"min_skill_pct" validate:"min=0,max=100"`
	MinLevel        int             `json:"min_level" validate:"min=0"`
	StationType     WorkstationType `json:"station_type,omitempty"`
	StationVNUM     VNUM            `json:"station_vnum,omitempty"`
	Discovery       DiscoveryType   `json:"discovery"`
	Ingredients     []Ingredient    `json:"ingredients" validate:"max=8,dive"`
	ProductVNUM     VNUM            `json:"product_vnum"`
	ProductQuantity int             `json:"product_quantity" validate:"min=1,max=100"`
}

// NewRecipe returns a recipe with safe defaults for the given vnum
func NewRecipe(vnum VNUM) *Recipe {
	return &Recipe{
		VNUM:            vnum,
		Name:            "new recipe",
		MinLevel:        1,
		Discovery:       DiscoveryKnown,
		ProductQuantity: 1,
	}
}

// AddIngredient appends an ingredient, failing once the list is at capacity
func (r *Recipe) AddIngredient(vnum VNUM, quantity int) error {
	if len(r.Ingredients) >= MaxIngredients {
		return ErrTooManyIngredients
	}
	r.Ingredients = append(r.Ingredients, Ingredient{VNUM: vnum, Quantity: quantity})
	return nil
}

// RemoveIngredient removes the ingredient at index, shifting the tail down.
// Returns false when index is out of range.
func (r *Recipe) RemoveIngredient(index int) bool {
	if index < 0 || index >= len(r.Ingredients) {
		return false
	}
	r.Ingredients = append(r.Ingredients[:index], r.Ingredients[index+1:]...)
	return true
}

// ClearIngredients resets the ingredient count to zero
func (r *Recipe) ClearIngredients() {
	r.Ingredients = r.Ingredients[:0]
}

// RequiredMaterials sums the needed quantity per distinct ingredient vnum,
// preserving first-appearance order.
func (r *Recipe) RequiredMaterials() []Ingredient {
	index := make(map[VNUM]int, len(r.Ingredients))
	out := make([]Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if i, ok := index[ing.VNUM]; ok {
			out[i].Quantity += ing.Quantity
			continue
		}
		index[ing.VNUM] = len(out)
		out = append(out, ing)
	}
	return out
}

// Clone returns a deep copy safe to hand to readers outside the store
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return &c
}
