// Package skillcheck implements the success and quality arithmetic shared by
// crafting, extraction and salvage.
package skillcheck

import (
	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/utils"
)

// Result is the outcome of one skill check
type Result struct {
	Success bool
	Quality int // target - roll; only meaningful on success
	Roll    int
	Target  int
	Skill   string
}

// Tier classifies the result's quality margin
func (r Result) Tier() QualityTier {
	return TierFor(r.Quality)
}

// Evaluate is the pure check: target = clamp(skill + 2*(player-recipe), 5, 95),
// success when roll <= target.
func Evaluate(skillPct, playerLevel, recipeLevel, roll int) Result {
	target := utils.Clamp(skillPct+LevelWeight*(playerLevel-recipeLevel), MinTarget, MaxTarget)
	return Result{
		Success: roll <= target,
		Quality: target - roll,
		Roll:    roll,
		Target:  target,
	}
}

// Checker draws rolls from an injected source
type Checker struct {
	roller domain.Roller
}

// NewChecker creates a checker using roller for every draw
func NewChecker(roller domain.Roller) *Checker {
	return &Checker{roller: roller}
}

// Roller exposes the underlying random source for yield rolls
func (c *Checker) Roller() domain.Roller {
	return c.roller
}

// CraftCheck resolves the actor's effective skill for the recipe (0 when the
// recipe needs none or the actor never learned it) and draws one roll.
func (c *Checker) CraftCheck(ch *domain.Character, r *domain.Recipe) Result {
	return c.Check(ch, r.RequiredSkill, r.MinLevel)
}

// Check runs a skill check against an arbitrary level, e.g. a corpse's level
// for extraction.
func (c *Checker) Check(ch *domain.Character, skill string, level int) Result {
	skillPct := 0
	if skill != "" {
		skillPct = ch.SkillPercent(skill)
	}
	res := Evaluate(skillPct, ch.Level, level, c.roller.NumberPercent())
	res.Skill = skill
	return res
}

// ImprovementRate selects the improvement multiplier from the level gap
// between the recipe and the actor.
func ImprovementRate(actorLevel, recipeLevel int) int {
	diff := recipeLevel - actorLevel
	switch {
	case diff < EasyBelowDiff:
		return RateEasy
	case diff < MediumBelowDiff:
		return RateMedium
	default:
		return RateHard
	}
}

// HasCraftingTool reports whether the actor wields a tool of exactly the
// requested category.
func HasCraftingTool(ch *domain.Character, tool domain.ToolType) bool {
	if ch == nil || ch.Wielded == nil {
		return false
	}
	return ch.Wielded.Tool == tool
}
