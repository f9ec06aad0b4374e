package crafting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/recipe"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/internal/world"
)

const (
	vnumIronIngot     domain.VNUM = 3111
	vnumTannedLeather domain.VNUM = 3110
	vnumBronzeIngot   domain.VNUM = 3112
	vnumLinenScraps   domain.VNUM = 3113
	vnumHilt          domain.VNUM = 3200
	vnumIronSword     domain.VNUM = 4000
	vnumLeatherCap    domain.VNUM = 4001
	vnumApple         domain.VNUM = 4002
	vnumForge         domain.VNUM = 5000
	vnumTanningRack   domain.VNUM = 5001
)

// fixedRoller returns a constant percent roll; NumberRange returns hi when
// high is set, lo otherwise.
type fixedRoller struct {
	percent int
	high    bool
}

func (f *fixedRoller) NumberPercent() int { return f.percent }

func (f *fixedRoller) NumberRange(lo, hi int) int {
	if f.high {
		return hi
	}
	return lo
}

type fixture struct {
	world *world.World
	room  *domain.Room
	store *recipe.Store
	actor *domain.Character
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := world.New()
	for _, p := range []*domain.ObjectPrototype{
		{VNUM: vnumIronIngot, Keywords: "iron ingot", ShortDescr: "an iron ingot", Type: domain.ItemMaterial, MatType: domain.MatIngot, Stackable: true},
		{VNUM: vnumTannedLeather, Keywords: "tanned leather", ShortDescr: "a piece of tanned leather", Type: domain.ItemMaterial, MatType: domain.MatLeather, Stackable: true},
		{VNUM: vnumBronzeIngot, Keywords: "bronze ingot", ShortDescr: "a bronze ingot", Type: domain.ItemMaterial, MatType: domain.MatIngot, Stackable: true},
		{VNUM: vnumLinenScraps, Keywords: "linen scraps", ShortDescr: "some linen scraps", Type: domain.ItemMaterial, MatType: domain.MatCloth, Stackable: true},
		{VNUM: vnumHilt, Keywords: "hilt", ShortDescr: "a sword hilt", Type: domain.ItemMaterial, MatType: domain.MatWood},
		{VNUM: vnumIronSword, Keywords: "iron sword", ShortDescr: "an iron sword", Type: domain.ItemWeapon, Material: "iron", Level: 5},
		{VNUM: vnumLeatherCap, Keywords: "leather cap", ShortDescr: "a leather cap", Type: domain.ItemArmor, Material: "leather"},
		{VNUM: vnumApple, Keywords: "apple", ShortDescr: "a red apple", Type: domain.ItemFood},
		{VNUM: vnumForge, Keywords: "forge", ShortDescr: "a roaring forge", Type: domain.ItemWorkstation, StationFlags: domain.StationForge | domain.StationSmelter},
		{VNUM: vnumTanningRack, Keywords: "rack", ShortDescr: "a tanning rack", Type: domain.ItemWorkstation, StationFlags: domain.StationTannery},
	} {
		w.AddObjectPrototype(p)
	}

	room := &domain.Room{VNUM: 1, Name: "Smithy"}
	w.AddRoom(room)

	actor := &domain.Character{
		Name:   "Bob",
		Level:  10,
		Skills: map[string]int{domain.SkillBlacksmithing: 50},
	}
	w.PlaceCharacter(actor, room)
	w.PlaceCharacter(&domain.Character{Name: "Alice", Level: 10}, room)

	store := recipe.NewStore()
	sword := domain.NewRecipe(100)
	sword.Name = "iron sword"
	sword.RequiredSkill = domain.SkillBlacksmithing
	sword.MinSkillPct = 20
	sword.MinLevel = 5
	sword.StationType = domain.StationForge
	sword.Ingredients = []domain.Ingredient{{VNUM: vnumIronIngot, Quantity: 3}, {VNUM: vnumHilt, Quantity: 1}}
	sword.ProductVNUM = vnumIronSword
	require.NoError(t, store.Add(sword))

	capRecipe := domain.NewRecipe(101)
	capRecipe.Name = "leather cap"
	capRecipe.Ingredients = []domain.Ingredient{{VNUM: vnumTannedLeather, Quantity: 2}}
	capRecipe.ProductVNUM = vnumLeatherCap
	require.NoError(t, store.Add(capRecipe))

	secret := domain.NewRecipe(102)
	secret.Name = "secret blade"
	secret.Discovery = domain.DiscoveryScroll
	secret.ProductVNUM = vnumIronSword
	require.NoError(t, store.Add(secret))

	broken := domain.NewRecipe(103)
	broken.Name = "broken thing"
	broken.Ingredients = []domain.Ingredient{{VNUM: vnumTannedLeather, Quantity: 1}}
	broken.ProductVNUM = 9999
	require.NoError(t, store.Add(broken))

	return &fixture{world: w, room: room, store: store, actor: actor}
}

// give puts count units of vnum into the actor's inventory, as one stack
// for stackable prototypes or as discrete objects otherwise.
func (f *fixture) give(t *testing.T, vnum domain.VNUM, count int) {
	t.Helper()
	proto, ok := f.world.ObjectPrototype(vnum)
	require.True(t, ok)
	if proto.Stackable {
		obj := f.world.CreateObject(proto, proto.Level)
		obj.Quantity = count
		f.actor.Carrying = append(f.actor.Carrying, obj)
		obj.CarriedBy = f.actor
		return
	}
	for i := 0; i < count; i++ {
		f.world.GiveObject(f.world.CreateObject(proto, proto.Level), f.actor)
	}
}

func (f *fixture) place(t *testing.T, vnum domain.VNUM) *domain.Object {
	t.Helper()
	proto, ok := f.world.ObjectPrototype(vnum)
	require.True(t, ok)
	obj := f.world.CreateObject(proto, proto.Level)
	f.world.PlaceObject(obj, f.room)
	return obj
}

func (f *fixture) service(roller domain.Roller, opts ...Option) Service {
	return NewService(f.store, f.world, skillcheck.NewChecker(roller), opts...)
}
