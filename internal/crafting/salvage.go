package crafting

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
	"github.com/osse101/mudcraft/internal/metrics"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/internal/utils"
)

// DerivationRule maps material keywords to the single material recovered
// from an item without an explicit salvage list.
type DerivationRule struct {
	Keywords []string
	VNUM     domain.VNUM
}

// RecoveredMaterials names the prototypes salvage derivation produces
type RecoveredMaterials struct {
	TannedLeather domain.VNUM
	IronIngot     domain.VNUM
	BronzeIngot   domain.VNUM
	LinenScraps   domain.VNUM
}

// DerivationRules builds the standard keyword rules. First match wins.
func DerivationRules(m RecoveredMaterials) []DerivationRule {
	return []DerivationRule{
		{Keywords: []string{"leather"}, VNUM: m.TannedLeather},
		{Keywords: []string{"iron", "steel"}, VNUM: m.IronIngot},
		{Keywords: []string{"bronze"}, VNUM: m.BronzeIngot},
		{Keywords: []string{"cloth"}, VNUM: m.LinenScraps},
	}
}

// SalvageSkillFor returns the skill needed to salvage obj, or "" when its
// category has no tracked skill.
func SalvageSkillFor(obj *domain.Object) string {
	switch obj.Type {
	case domain.ItemWeapon:
		return domain.SkillBlacksmithing
	case domain.ItemArmor:
		mat := strings.ToLower(obj.Material)
		switch {
		case strings.Contains(mat, "leather"):
			return domain.SkillLeatherworking
		case strings.Contains(mat, "cloth"):
			return domain.SkillTailoring
		case containsAny(mat, "metal", "iron", "steel", "bronze"):
			return domain.SkillBlacksmithing
		}
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// YieldPercent is the share of materials recovered with a learned skill:
// 25% plus half the skill plus a bonus roll, capped at 100.
func YieldPercent(skillPct, bonus int) int {
	return min(100, BaseYieldPct+skillPct/2+bonus)
}

// SalvageResult is the transient outcome of evaluating a salvage
type SalvageResult struct {
	Item      *domain.Object
	Skill     string // Required skill, "" when none
	Learned   bool   // Skill was required and the actor knows it
	Available int    // Size of the full material list
	Materials []domain.VNUM
}

// Salvager breaks carried items down into base materials
type Salvager struct {
	world    World
	checker  *skillcheck.Checker
	rules    []DerivationRule
	improver domain.Improver
}

// NewSalvager creates a salvager deriving missing lists with rules
func NewSalvager(world World, checker *skillcheck.Checker, rules []DerivationRule, improver domain.Improver) *Salvager {
	return &Salvager{
		world:    world,
		checker:  checker,
		rules:    rules,
		improver: improver,
	}
}

// Materials returns the full salvage list for obj: its explicit list when
// present, otherwise one material derived from its material keyword.
func (s *Salvager) Materials(obj *domain.Object) []domain.VNUM {
	if len(obj.SalvageMats) > 0 {
		return slices.Clone(obj.SalvageMats)
	}
	mat := strings.ToLower(obj.Material)
	if mat == "" {
		return nil
	}
	for _, rule := range s.rules {
		if containsAny(mat, rule.Keywords...) && rule.VNUM != domain.VNUMNone {
			return []domain.VNUM{rule.VNUM}
		}
	}
	return nil
}

// Evaluate computes what salvaging obj would yield without touching the world
func (s *Salvager) Evaluate(ch *domain.Character, obj *domain.Object) (*SalvageResult, error) {
	mats := s.Materials(obj)
	if len(mats) == 0 {
		return nil, domain.Refuse(domain.ErrNothingToDo, fmt.Sprintf(MsgNothingToSalvage, obj.ShortDescr))
	}

	res := &SalvageResult{
		Item:      obj,
		Skill:     SalvageSkillFor(obj),
		Available: len(mats),
	}

	n := len(mats)
	count := n
	if res.Skill != "" {
		pct := ch.SkillPercent(res.Skill)
		if pct == 0 {
			count = max(1, utils.PercentFloor(n, UnskilledYieldPct))
		} else {
			res.Learned = true
			bonus := s.checker.Roller().NumberRange(0, pct/4)
			count = utils.Clamp(utils.PercentCeil(n, YieldPercent(pct, bonus)), 1, n)
		}
	}
	res.Materials = mats[:count]

	for _, vnum := range res.Materials {
		if _, ok := s.world.ObjectPrototype(vnum); !ok {
			return nil, domain.Refuse(domain.ErrInvalidRecipe,
				fmt.Sprintf(MsgBadSalvageMatFmt, vnum, obj.ShortDescr))
		}
	}
	return res, nil
}

// Salvage runs the salvage command for the carried item matching arg
func (s *Salvager) Salvage(ctx context.Context, ch *domain.Character, arg string) (*SalvageResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSalvageCalled, "actor", ch.Name, "target", arg)

	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, domain.Refuse(domain.ErrInvalidInput, MsgSalvageWhat)
	}
	obj := ch.FindCarried(arg)
	if obj == nil {
		return nil, domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNotCarryingFmt, arg))
	}

	res, err := s.Evaluate(ch, obj)
	if err != nil {
		log.Debug(LogMsgSalvageRefused, "actor", ch.Name, "item", obj.ShortDescr, "reason", err)
		return nil, err
	}

	s.world.ExtractObject(obj)
	names := make([]string, 0, len(res.Materials))
	for _, vnum := range res.Materials {
		proto, _ := s.world.ObjectPrototype(vnum)
		mat := s.world.CreateObject(proto, proto.Level)
		names = append(names, mat.ShortDescr)
		s.world.GiveObject(mat, ch)
	}

	if res.Learned && s.improver != nil {
		s.improver.ImproveSkill(ch, res.Skill, true, skillcheck.ImprovementRate(ch.Level, obj.Level))
	}
	metrics.Salvages.WithLabelValues(metrics.ResultSuccess).Inc()

	s.world.Send(ch, fmt.Sprintf(MsgSalvageFmt, obj.ShortDescr, utils.JoinList(names)))
	s.world.ActRoom(ch, utils.Capitalize(fmt.Sprintf(MsgRoomSalvageFmt, ch.Name, obj.ShortDescr)))
	log.Info(LogMsgSalvageDone, "actor", ch.Name, "item", obj.ShortDescr, "recovered", len(res.Materials), "of", res.Available)
	return res, nil
}
