package crafting

import (
	"fmt"

	"github.com/osse101/mudcraft/internal/domain"
)

// CountMaterial sums the units of vnum the character carries: stack
// quantities plus one per discrete object.
func CountMaterial(ch *domain.Character, vnum domain.VNUM) int {
	total := 0
	for _, obj := range ch.Carrying {
		if obj.ProtoVNUM == vnum {
			total += obj.Count()
		}
	}
	return total
}

// MissingMaterial returns the first ingredient the character cannot cover
func MissingMaterial(ch *domain.Character, r *domain.Recipe) (domain.Ingredient, bool) {
	for _, ing := range r.RequiredMaterials() {
		if CountMaterial(ch, ing.VNUM) < ing.Quantity {
			return ing, true
		}
	}
	return domain.Ingredient{}, false
}

// consume removes exactly need units of vnum from the character. Stacks
// larger than the remaining need are decremented in place; everything else
// is destroyed whole.
func consume(factory domain.ObjectFactory, ch *domain.Character, vnum domain.VNUM, need int) {
	// Snapshot: ExtractObject mutates ch.Carrying
	held := make([]*domain.Object, 0, len(ch.Carrying))
	for _, obj := range ch.Carrying {
		if obj.ProtoVNUM == vnum {
			held = append(held, obj)
		}
	}
	for _, obj := range held {
		if need <= 0 {
			return
		}
		if obj.Count() > need {
			obj.Quantity -= need
			return
		}
		need -= obj.Count()
		factory.ExtractObject(obj)
	}
}

// consumeAll verifies sufficiency of every ingredient before mutating
func consumeAll(factory domain.ObjectFactory, ch *domain.Character, r *domain.Recipe) error {
	if ing, missing := MissingMaterial(ch, r); missing {
		return fmt.Errorf("%w: need %d of vnum %d", domain.ErrNotEligible, ing.Quantity, ing.VNUM)
	}
	for _, ing := range r.RequiredMaterials() {
		consume(factory, ch, ing.VNUM, ing.Quantity)
	}
	return nil
}
