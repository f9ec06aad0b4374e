package crafting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/mocks"
)

func (f *fixture) salvager(roller domain.Roller, improver domain.Improver) *Salvager {
	rules := DerivationRules(RecoveredMaterials{
		TannedLeather: vnumTannedLeather,
		IronIngot:     vnumIronIngot,
		BronzeIngot:   vnumBronzeIngot,
		LinenScraps:   vnumLinenScraps,
	})
	return NewSalvager(f.world, skillcheck.NewChecker(roller), rules, improver)
}

func mats(n int) []domain.VNUM {
	out := make([]domain.VNUM, n)
	for i := range out {
		out[i] = vnumIronIngot
	}
	return out
}

func TestSalvageSkillFor(t *testing.T) {
	tests := []struct {
		name     string
		obj      domain.Object
		expected string
	}{
		{"weapon", domain.Object{Type: domain.ItemWeapon, Material: "wood"}, domain.SkillBlacksmithing},
		{"leather armor", domain.Object{Type: domain.ItemArmor, Material: "Leather"}, domain.SkillLeatherworking},
		{"cloth armor", domain.Object{Type: domain.ItemArmor, Material: "cloth"}, domain.SkillTailoring},
		{"steel armor", domain.Object{Type: domain.ItemArmor, Material: "steel"}, domain.SkillBlacksmithing},
		{"bronze armor", domain.Object{Type: domain.ItemArmor, Material: "bronze"}, domain.SkillBlacksmithing},
		{"metal armor", domain.Object{Type: domain.ItemArmor, Material: "metal"}, domain.SkillBlacksmithing},
		{"glass armor", domain.Object{Type: domain.ItemArmor, Material: "glass"}, ""},
		{"food", domain.Object{Type: domain.ItemFood, Material: "iron"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SalvageSkillFor(&tt.obj))
		})
	}
}

func TestSalvager_Materials(t *testing.T) {
	f := newFixture(t)
	s := f.salvager(&fixedRoller{}, nil)

	explicit := &domain.Object{Material: "leather", SalvageMats: []domain.VNUM{vnumHilt, vnumHilt}}
	assert.Equal(t, []domain.VNUM{vnumHilt, vnumHilt}, s.Materials(explicit), "explicit list overrides derivation")

	assert.Equal(t, []domain.VNUM{vnumTannedLeather}, s.Materials(&domain.Object{Material: "soft leather"}))
	assert.Equal(t, []domain.VNUM{vnumIronIngot}, s.Materials(&domain.Object{Material: "steel"}))
	assert.Equal(t, []domain.VNUM{vnumBronzeIngot}, s.Materials(&domain.Object{Material: "bronze"}))
	assert.Equal(t, []domain.VNUM{vnumLinenScraps}, s.Materials(&domain.Object{Material: "cloth"}))
	assert.Nil(t, s.Materials(&domain.Object{Material: "glass"}))
	assert.Nil(t, s.Materials(&domain.Object{}))
}

func TestSalvager_EvaluateYield(t *testing.T) {
	f := newFixture(t)

	t.Run("no requirement yields everything", func(t *testing.T) {
		s := f.salvager(&fixedRoller{}, nil)
		obj := &domain.Object{Type: domain.ItemFood, SalvageMats: mats(6)}
		res, err := s.Evaluate(&domain.Character{}, obj)
		require.NoError(t, err)
		assert.Len(t, res.Materials, 6)
		assert.False(t, res.Learned)
	})

	t.Run("unlearned yields a quarter but at least one", func(t *testing.T) {
		s := f.salvager(&fixedRoller{}, nil)
		for n, want := range map[int]int{1: 1, 2: 1, 4: 1, 7: 1, 8: 2} {
			obj := &domain.Object{Type: domain.ItemWeapon, SalvageMats: mats(n)}
			res, err := s.Evaluate(&domain.Character{}, obj)
			require.NoError(t, err)
			assert.Len(t, res.Materials, want, "n=%d", n)
		}
	})

	t.Run("mastery yields at least three quarters", func(t *testing.T) {
		master := &domain.Character{Skills: map[string]int{domain.SkillBlacksmithing: 100}}
		for _, high := range []bool{false, true} {
			s := f.salvager(&fixedRoller{high: high}, nil)
			for n := 1; n <= 8; n++ {
				obj := &domain.Object{Type: domain.ItemWeapon, SalvageMats: mats(n)}
				res, err := s.Evaluate(master, obj)
				require.NoError(t, err)
				got := len(res.Materials)
				assert.True(t, res.Learned)
				assert.GreaterOrEqual(t, got, 1)
				assert.GreaterOrEqual(t, got*100, n*75, "n=%d high=%v", n, high)
				assert.LessOrEqual(t, got, n)
			}
		}
	})

	t.Run("yield grows with skill", func(t *testing.T) {
		s := f.salvager(&fixedRoller{}, nil)
		obj := &domain.Object{Type: domain.ItemWeapon, SalvageMats: mats(8)}
		prev := 0
		for _, pct := range []int{1, 25, 50, 75, 100} {
			ch := &domain.Character{Skills: map[string]int{domain.SkillBlacksmithing: pct}}
			res, err := s.Evaluate(ch, obj)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(res.Materials), prev)
			prev = len(res.Materials)
		}
	})
}

func TestYieldPercent(t *testing.T) {
	assert.Equal(t, 25, YieldPercent(0, 0))
	assert.Equal(t, 75, YieldPercent(100, 0))
	assert.Equal(t, 100, YieldPercent(100, 25))
	assert.Equal(t, 100, YieldPercent(100, 40), "capped")
}

func TestSalvager_EvaluateRefusals(t *testing.T) {
	f := newFixture(t)
	s := f.salvager(&fixedRoller{}, nil)

	_, err := s.Evaluate(f.actor, &domain.Object{ShortDescr: "a glass bead", Material: "glass"})
	assert.ErrorIs(t, err, domain.ErrNothingToDo)
	assert.Equal(t, "There is nothing worth salvaging from a glass bead.", err.Error())

	_, err = s.Evaluate(f.actor, &domain.Object{ShortDescr: "a relic", SalvageMats: []domain.VNUM{9999}})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
	assert.Contains(t, err.Error(), "Error:")
}

func TestSalvager_Salvage(t *testing.T) {
	f := newFixture(t)
	imp := mocks.NewMockImprover(t)
	s := f.salvager(&fixedRoller{high: true}, imp)

	f.give(t, vnumIronSword, 1)
	sword := f.actor.Carrying[0]
	sword.SalvageMats = []domain.VNUM{vnumIronIngot, vnumHilt}

	// sword level 5, actor level 10 => medium rate
	imp.On("ImproveSkill", f.actor, domain.SkillBlacksmithing, true, skillcheck.RateMedium).Once()

	res, err := s.Salvage(context.Background(), f.actor, "sword")
	require.NoError(t, err)
	assert.Len(t, res.Materials, 2)

	assert.Equal(t, 0, CountMaterial(f.actor, vnumIronSword), "salvaged item is destroyed")
	assert.Equal(t, 1, CountMaterial(f.actor, vnumIronIngot))
	assert.Equal(t, 1, CountMaterial(f.actor, vnumHilt))
	assert.Equal(t, "You salvage an iron sword and recover an iron ingot and a sword hilt.", f.world.LastMessage(f.actor))
}

func TestSalvager_SalvageRefusals(t *testing.T) {
	f := newFixture(t)
	s := f.salvager(&fixedRoller{}, nil)

	_, err := s.Salvage(context.Background(), f.actor, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, MsgSalvageWhat, err.Error())

	_, err = s.Salvage(context.Background(), f.actor, "anvil")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.give(t, vnumApple, 1)
	_, err = s.Salvage(context.Background(), f.actor, "apple")
	assert.ErrorIs(t, err, domain.ErrNothingToDo)
	assert.Equal(t, 1, CountMaterial(f.actor, vnumApple), "refused salvage keeps the item")
}
