package skillcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/mudcraft/internal/domain"
)

type fixedRoller struct {
	percent int
	calls   int
}

func (f *fixedRoller) NumberPercent() int {
	f.calls++
	return f.percent
}

func (f *fixedRoller) NumberRange(lo, _ int) int { return lo }

func TestEvaluate_Scenario(t *testing.T) {
	res := Evaluate(75, 10, 5, 60)
	assert.Equal(t, 85, res.Target)
	assert.True(t, res.Success)
	assert.Equal(t, 25, res.Quality)
	assert.Equal(t, QualityNormal, res.Tier())
}

func TestEvaluate_TargetAlwaysClamped(t *testing.T) {
	for skill := 0; skill <= 100; skill += 5 {
		for player := 1; player <= 60; player += 7 {
			for recipe := 0; recipe <= 60; recipe += 9 {
				for _, roll := range []int{1, 5, 50, 95, 100} {
					res := Evaluate(skill, player, recipe, roll)
					assert.GreaterOrEqual(t, res.Target, MinTarget)
					assert.LessOrEqual(t, res.Target, MaxTarget)
					assert.Equal(t, roll <= res.Target, res.Success)
					assert.Equal(t, res.Target-roll, res.Quality)
				}
			}
		}
	}
}

func TestEvaluate_Bounds(t *testing.T) {
	assert.Equal(t, MinTarget, Evaluate(0, 1, 50, 100).Target)
	assert.Equal(t, MaxTarget, Evaluate(100, 50, 1, 1).Target)

	// Roll equal to the target still succeeds
	res := Evaluate(40, 10, 10, 40)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.Quality)

	res = Evaluate(40, 10, 10, 41)
	assert.False(t, res.Success)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		margin   int
		expected QualityTier
	}{
		{-10, QualityPoor},
		{0, QualityPoor},
		{19, QualityPoor},
		{20, QualityNormal},
		{39, QualityNormal},
		{40, QualityFine},
		{60, QualityExceptional},
		{79, QualityExceptional},
		{80, QualityMasterwork},
		{94, QualityMasterwork},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.margin), "margin %d", tt.margin)
	}
}

func TestTierFor_Monotonic(t *testing.T) {
	prev := TierFor(0)
	for _, m := range []int{20, 40, 60, 80} {
		cur := TierFor(m)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestImprovementRate(t *testing.T) {
	assert.Equal(t, RateEasy, ImprovementRate(30, 10))
	assert.Equal(t, RateMedium, ImprovementRate(20, 10), "diff -10 is not below -10")
	assert.Equal(t, RateMedium, ImprovementRate(10, 14))
	assert.Equal(t, RateHard, ImprovementRate(10, 15))
}

func TestChecker_CraftCheck(t *testing.T) {
	roller := &fixedRoller{percent: 60}
	checker := NewChecker(roller)

	ch := &domain.Character{Level: 10, Skills: map[string]int{domain.SkillBlacksmithing: 75}}
	r := domain.NewRecipe(1)
	r.RequiredSkill = domain.SkillBlacksmithing
	r.MinLevel = 5

	res := checker.CraftCheck(ch, r)
	assert.Equal(t, 85, res.Target)
	assert.True(t, res.Success)
	assert.Equal(t, domain.SkillBlacksmithing, res.Skill)
	assert.Equal(t, 1, roller.calls, "exactly one roll per check")
}

func TestChecker_UnlearnedSkillIsZero(t *testing.T) {
	checker := NewChecker(&fixedRoller{percent: 10})
	ch := &domain.Character{Level: 5}

	res := checker.Check(ch, domain.SkillSkinning, 5)
	assert.Equal(t, MinTarget, res.Target)
	assert.False(t, res.Success)
}

func TestHasCraftingTool(t *testing.T) {
	knife := &domain.Object{Tool: domain.ToolKnife}
	ch := &domain.Character{Wielded: knife}

	assert.True(t, HasCraftingTool(ch, domain.ToolKnife))
	assert.False(t, HasCraftingTool(ch, domain.ToolCleaver))
	assert.False(t, HasCraftingTool(&domain.Character{}, domain.ToolKnife))
	assert.False(t, HasCraftingTool(nil, domain.ToolKnife))
}
