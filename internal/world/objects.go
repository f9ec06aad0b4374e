package world

import (
	"slices"

	"github.com/google/uuid"

	"github.com/osse101/mudcraft/internal/domain"
)

// CreateObject implements domain.ObjectFactory. Stackable prototypes yield a
// stack of one.
func (w *World) CreateObject(proto *domain.ObjectPrototype, level int) *domain.Object {
	obj := &domain.Object{
		ID:           uuid.NewString(),
		ProtoVNUM:    proto.VNUM,
		Keywords:     proto.Keywords,
		ShortDescr:   proto.ShortDescr,
		Type:         proto.Type,
		Material:     proto.Material,
		Level:        level,
		MatType:      proto.MatType,
		StationFlags: proto.StationFlags,
		Tool:         proto.Tool,
		SalvageMats:  slices.Clone(proto.SalvageMats),
	}
	if proto.Stackable {
		obj.Quantity = 1
	}
	return obj
}

// ExtractObject implements domain.ObjectFactory
func (w *World) ExtractObject(obj *domain.Object) {
	w.detach(obj)
}

// GiveObject implements domain.ObjectFactory. A stack merges into a stack of
// the same prototype the character already carries.
func (w *World) GiveObject(obj *domain.Object, ch *domain.Character) {
	w.detach(obj)
	if obj.Quantity > 0 {
		for _, held := range ch.Carrying {
			if held.ProtoVNUM == obj.ProtoVNUM && held.Quantity > 0 {
				held.Quantity += obj.Quantity
				return
			}
		}
	}
	obj.CarriedBy = ch
	ch.Carrying = append(ch.Carrying, obj)
}

// PlaceObject puts obj on the floor of room
func (w *World) PlaceObject(obj *domain.Object, room *domain.Room) {
	w.detach(obj)
	obj.InRoom = room
	room.Contents = append(room.Contents, obj)
}

// PlaceCharacter moves ch into room
func (w *World) PlaceCharacter(ch *domain.Character, room *domain.Room) {
	if ch.Room != nil {
		ch.Room.People = slices.DeleteFunc(ch.Room.People, func(c *domain.Character) bool { return c == ch })
	}
	ch.Room = room
	room.People = append(room.People, ch)
}

// MakeCorpse creates the corpse of a slain mobile in room carrying the given
// extraction materials.
func (w *World) MakeCorpse(mob *domain.MobPrototype, materials []domain.VNUM, room *domain.Room) *domain.Object {
	corpse := &domain.Object{
		ID:         uuid.NewString(),
		Keywords:   "corpse " + mob.Name,
		ShortDescr: "the corpse of " + mob.ShortDescr,
		Type:       domain.ItemCorpseNPC,
		Level:      mob.Level,
		CorpseMats: slices.Clone(materials),
	}
	w.PlaceObject(corpse, room)
	return corpse
}

func (w *World) detach(obj *domain.Object) {
	if ch := obj.CarriedBy; ch != nil {
		ch.Carrying = slices.DeleteFunc(ch.Carrying, func(o *domain.Object) bool { return o == obj })
		if ch.Wielded == obj {
			ch.Wielded = nil
		}
		obj.CarriedBy = nil
	}
	if room := obj.InRoom; room != nil {
		room.Contents = slices.DeleteFunc(room.Contents, func(o *domain.Object) bool { return o == obj })
		obj.InRoom = nil
	}
}
