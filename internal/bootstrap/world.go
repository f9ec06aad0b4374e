package bootstrap

import (
	"strings"

	"github.com/osse101/mudcraft/internal/config"
	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/harvest"
	"github.com/osse101/mudcraft/internal/world"
)

// Demo world vnums. Materials come from config so a world file can move them.
const (
	VNUMSmithy = 3001

	VNUMIronSword     = 3200
	VNUMLeatherBelt   = 3201
	VNUMHeartyStew    = 3202
	VNUMRustySword    = 3210
	VNUMLeatherCap    = 3211
	VNUMSkinningKnife = 3300
	VNUMCleaver       = 3301
	VNUMSmithHammer   = 3302
	VNUMForge         = 3400
	VNUMTanningRack   = 3401
	VNUMCampfire      = 3402

	VNUMWolf     = 3060
	VNUMChicken  = 3061
	VNUMSkeleton = 3062
	VNUMBear     = 3063
)

// Demo character names
const (
	PlayerName  = "Hero"
	BuilderName = "Builder"
)

// Demo is a small playable world: one room with stations and corpses, a
// player carrying tools and materials, and a builder for Midgaard.
type Demo struct {
	World   *world.World
	Room    *domain.Room
	Player  *domain.Character
	Builder *domain.Character
}

// Character returns the demo character with the given name, ignoring case
func (d *Demo) Character(name string) (*domain.Character, bool) {
	for _, ch := range d.Room.People {
		if strings.EqualFold(ch.Name, name) {
			return ch, true
		}
	}
	return nil, false
}

// SeedWorld builds the demo world around the configured material vnums
func SeedWorld(mats config.MaterialVNUMs) *Demo {
	w := world.New()
	w.AddArea(&domain.Area{Name: "Midgaard", MinVNUM: 3000, MaxVNUM: 3999, Builders: []string{BuilderName}})
	w.AddArea(&domain.Area{Name: "Moria", MinVNUM: 4000, MaxVNUM: 4999})

	for _, p := range materialPrototypes(mats) {
		w.AddObjectPrototype(p)
	}
	for _, p := range craftedPrototypes(mats) {
		w.AddObjectPrototype(p)
	}

	w.AddMobPrototype(&domain.MobPrototype{VNUM: VNUMWolf, Name: "wolf", ShortDescr: "a grey wolf", Level: 6, Form: domain.FormEdible | domain.FormMammal})
	w.AddMobPrototype(&domain.MobPrototype{VNUM: VNUMChicken, Name: "chicken", ShortDescr: "a plump chicken", Level: 1, Form: domain.FormEdible | domain.FormBird})
	w.AddMobPrototype(&domain.MobPrototype{VNUM: VNUMSkeleton, Name: "skeleton", ShortDescr: "a rattling skeleton", Level: 10, Form: domain.FormUndead})
	w.AddMobPrototype(&domain.MobPrototype{VNUM: VNUMBear, Name: "bear", ShortDescr: "a brown bear", Level: 14, Form: domain.FormEdible | domain.FormMammal,
		Materials: []domain.VNUM{mats.Hide, mats.Hide, mats.Meat}})

	room := &domain.Room{VNUM: VNUMSmithy, Name: "The Smithy"}
	w.AddRoom(room)
	for _, vnum := range []domain.VNUM{VNUMForge, VNUMTanningRack, VNUMCampfire} {
		proto, _ := w.ObjectPrototype(vnum)
		w.PlaceObject(w.CreateObject(proto, 1), room)
	}

	defaults := harvest.CorpseDefaults{Hide: mats.Hide, Meat: mats.Meat}
	for _, vnum := range []domain.VNUM{VNUMWolf, VNUMChicken, VNUMSkeleton, VNUMBear} {
		mob, _ := w.MobPrototype(vnum)
		w.MakeCorpse(mob, harvest.CorpseMaterials(mob, defaults), room)
	}

	player := &domain.Character{
		Name:  PlayerName,
		Level: 20,
		Skills: map[string]int{
			domain.SkillSkinning:       60,
			domain.SkillButchering:     55,
			domain.SkillBlacksmithing:  45,
			domain.SkillLeatherworking: 40,
			domain.SkillCooking:        70,
		},
	}
	w.PlaceCharacter(player, room)
	knife := give(w, player, VNUMSkinningKnife, 1)
	player.Wielded = knife
	give(w, player, VNUMCleaver, 1)
	give(w, player, mats.IronIngot, 6)
	give(w, player, mats.TannedLeather, 2)
	give(w, player, VNUMRustySword, 1)
	give(w, player, VNUMLeatherCap, 1)

	builder := &domain.Character{Name: BuilderName, Level: domain.LevelBuilder}
	w.PlaceCharacter(builder, room)

	return &Demo{World: w, Room: room, Player: player, Builder: builder}
}

// give hands ch one object of the prototype; stackable prototypes arrive as
// a single stack of quantity.
func give(w *world.World, ch *domain.Character, vnum domain.VNUM, quantity int) *domain.Object {
	proto, ok := w.ObjectPrototype(vnum)
	if !ok {
		return nil
	}
	obj := w.CreateObject(proto, ch.Level)
	if obj.Quantity > 0 {
		obj.Quantity = quantity
	}
	w.GiveObject(obj, ch)
	return obj
}

func materialPrototypes(m config.MaterialVNUMs) []*domain.ObjectPrototype {
	return []*domain.ObjectPrototype{
		{VNUM: m.Hide, Keywords: "hide raw", ShortDescr: "a raw hide", Type: domain.ItemMaterial, Stackable: true, MatType: domain.MatHide},
		{VNUM: m.Meat, Keywords: "meat raw", ShortDescr: "a slab of raw meat", Type: domain.ItemMaterial, Stackable: true, MatType: domain.MatMeat},
		{VNUM: m.TannedLeather, Keywords: "leather tanned", ShortDescr: "a piece of tanned leather", Type: domain.ItemMaterial, Stackable: true, MatType: domain.MatLeather},
		{VNUM: m.IronIngot, Keywords: "ingot iron", ShortDescr: "an iron ingot", Type: domain.ItemMaterial, Stackable: true, MatType: domain.MatIngot},
		{VNUM: m.BronzeIngot, Keywords: "ingot bronze", ShortDescr: "a bronze ingot", Type: domain.ItemMaterial, Stackable: true, MatType: domain.MatIngot},
		{VNUM: m.LinenScraps, Keywords: "scraps linen", ShortDescr: "some linen scraps", Type: domain.ItemMaterial, Stackable: true, MatType: domain.MatCloth},
	}
}

func craftedPrototypes(m config.MaterialVNUMs) []*domain.ObjectPrototype {
	return []*domain.ObjectPrototype{
		{VNUM: VNUMIronSword, Keywords: "sword iron", ShortDescr: "an iron sword", Type: domain.ItemWeapon, Material: "iron", Level: 10},
		{VNUM: VNUMLeatherBelt, Keywords: "belt leather", ShortDescr: "a leather belt", Type: domain.ItemArmor, Material: "leather", Level: 5},
		{VNUM: VNUMHeartyStew, Keywords: "stew hearty", ShortDescr: "a bowl of hearty stew", Type: domain.ItemFood, Level: 1},
		{VNUM: VNUMRustySword, Keywords: "shortsword rusty iron", ShortDescr: "a rusty iron shortsword", Type: domain.ItemWeapon, Material: "iron", Level: 8},
		{VNUM: VNUMLeatherCap, Keywords: "cap leather", ShortDescr: "a leather cap", Type: domain.ItemArmor, Material: "leather", Level: 4,
			SalvageMats: []domain.VNUM{m.TannedLeather, m.LinenScraps}},
		{VNUM: VNUMSkinningKnife, Keywords: "knife skinning", ShortDescr: "a skinning knife", Type: domain.ItemTool, Tool: domain.ToolKnife},
		{VNUM: VNUMCleaver, Keywords: "cleaver", ShortDescr: "a butcher's cleaver", Type: domain.ItemTool, Tool: domain.ToolCleaver},
		{VNUM: VNUMSmithHammer, Keywords: "hammer smithing", ShortDescr: "a smithing hammer", Type: domain.ItemTool, Tool: domain.ToolHammer},
		{VNUM: VNUMForge, Keywords: "forge", ShortDescr: "a roaring forge", Type: domain.ItemWorkstation, StationFlags: domain.StationForge | domain.StationAnvil},
		{VNUM: VNUMTanningRack, Keywords: "rack tanning", ShortDescr: "a tanning rack", Type: domain.ItemWorkstation, StationFlags: domain.StationTannery},
		{VNUM: VNUMCampfire, Keywords: "campfire fire", ShortDescr: "a crackling campfire", Type: domain.ItemWorkstation, StationFlags: domain.StationCampfire},
	}
}
