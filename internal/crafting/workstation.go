package crafting

import (
	"github.com/osse101/mudcraft/internal/domain"
)

// FindWorkstation returns the first workstation in room granting every
// capability in want.
func FindWorkstation(room *domain.Room, want domain.WorkstationType) *domain.Object {
	if room == nil {
		return nil
	}
	for _, obj := range room.Contents {
		if obj.Type == domain.ItemWorkstation && obj.StationFlags.Has(want) {
			return obj
		}
	}
	return nil
}

// FindWorkstationByVNUM returns the first workstation in room instantiated
// from the given prototype.
func FindWorkstationByVNUM(room *domain.Room, vnum domain.VNUM) *domain.Object {
	if room == nil {
		return nil
	}
	for _, obj := range room.Contents {
		if obj.Type == domain.ItemWorkstation && obj.ProtoVNUM == vnum {
			return obj
		}
	}
	return nil
}

// HasRequiredWorkstation checks the recipe's station requirement against
// room. A concrete vnum takes precedence over a capability; no requirement
// always passes with a nil station.
func HasRequiredWorkstation(room *domain.Room, r *domain.Recipe) (*domain.Object, bool) {
	switch {
	case r.StationVNUM != domain.VNUMNone:
		obj := FindWorkstationByVNUM(room, r.StationVNUM)
		return obj, obj != nil
	case r.StationType != domain.StationNone:
		obj := FindWorkstation(room, r.StationType)
		return obj, obj != nil
	default:
		return nil, true
	}
}
