package world

import (
	"fmt"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
)

// Improvement messages
const (
	MsgImprovedFmt        = "You have become better at %s!"
	MsgLearnedFromFailFmt = "You learn from your mistakes, and your %s skill improves."
)

// improveChance is the base percent chance of an improvement attempt
// before the difficulty multiplier divides it down
const improveChance = 40

// Trainer is a simple domain.Improver for the in-memory world. Skills a
// character has never learned, or has mastered, never move.
type Trainer struct {
	world  *World
	roller domain.Roller
}

// NewTrainer creates a trainer that reports gains through w
func NewTrainer(w *World, roller domain.Roller) *Trainer {
	return &Trainer{world: w, roller: roller}
}

// ImproveSkill implements domain.Improver. A higher multiplier makes
// improvement rarer. Success gains one point; failure gains 1-3.
func (t *Trainer) ImproveSkill(ch *domain.Character, skill string, success bool, multiplier int) {
	if ch == nil || ch.IsNPC {
		return
	}
	learned := ch.SkillPercent(skill)
	if learned <= 0 || learned >= 100 {
		return
	}
	if multiplier < 1 {
		multiplier = 1
	}
	if t.roller.NumberPercent() > improveChance/multiplier {
		return
	}

	gain := 1
	msg := fmt.Sprintf(MsgImprovedFmt, skill)
	if !success {
		gain = t.roller.NumberRange(1, 3)
		msg = fmt.Sprintf(MsgLearnedFromFailFmt, skill)
	}
	ch.Skills[strings.ToLower(skill)] = min(learned+gain, 100)
	t.world.Send(ch, msg)
}
