package harvest

import (
	"slices"

	"github.com/osse101/mudcraft/internal/domain"
)

// CorpseDefaults names the materials derived for creatures without an
// explicit list
type CorpseDefaults struct {
	Hide domain.VNUM
	Meat domain.VNUM
}

// CorpseMaterials returns the extraction materials a corpse of mob carries.
// An explicit list on the prototype always wins; otherwise the list is
// derived from the creature's form.
func CorpseMaterials(mob *domain.MobPrototype, defaults CorpseDefaults) []domain.VNUM {
	if len(mob.Materials) > 0 {
		return slices.Clone(mob.Materials)
	}

	form := mob.Form
	if !form.Has(domain.FormEdible) {
		return nil
	}
	switch {
	case form.Has(domain.FormMammal):
		return []domain.VNUM{defaults.Hide, defaults.Meat}
	default:
		// Birds, reptiles and anything else edible yield meat only
		return []domain.VNUM{defaults.Meat}
	}
}
