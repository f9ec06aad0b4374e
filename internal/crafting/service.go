// Package crafting resolves recipes, checks their preconditions and moves
// materials in and products out.
package crafting

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
	"github.com/osse101/mudcraft/internal/metrics"
	"github.com/osse101/mudcraft/internal/recipe"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/internal/utils"
)

// World is the slice of the game world the crafting engine touches
type World interface {
	domain.Catalog
	domain.ObjectFactory
	domain.Messenger
}

// CraftResult is the transient outcome of evaluating a craft attempt
type CraftResult struct {
	Recipe    *domain.Recipe
	Product   *domain.ObjectPrototype
	Station   *domain.Object
	Permitted bool // Every precondition passed; materials will be consumed
	Check     skillcheck.Result
	Success   bool
	Quality   skillcheck.QualityTier
}

// Service defines the interface for crafting operations
type Service interface {
	// EvaluateCraft resolves and validates a craft attempt and rolls the skill
	// check. It never mutates the world.
	EvaluateCraft(ctx context.Context, ch *domain.Character, name string) (*CraftResult, error)
	// ConsumeMaterials removes exactly the recipe's ingredients from ch
	ConsumeMaterials(ctx context.Context, ch *domain.Character, r *domain.Recipe) error
	// Craft runs the full command: evaluate, consume, produce
	Craft(ctx context.Context, ch *domain.Character, name string) (*CraftResult, error)
	// ListRecipes returns the recipes ch knows whose name contains filter
	ListRecipes(ctx context.Context, ch *domain.Character, filter string) []*domain.Recipe
}

type service struct {
	store     *recipe.Store
	world     World
	checker   *skillcheck.Checker
	knowledge KnowledgePolicy
	improver  domain.Improver
}

// Option configures the crafting service
type Option func(*service)

// WithKnowledgePolicy replaces the default discovery-based policy
func WithKnowledgePolicy(p KnowledgePolicy) Option {
	return func(s *service) {
		s.knowledge = p
	}
}

// WithImprover wires the external skill-improvement subsystem
func WithImprover(imp domain.Improver) Option {
	return func(s *service) {
		s.improver = imp
	}
}

// NewService creates a new crafting service
func NewService(store *recipe.Store, world World, checker *skillcheck.Checker, opts ...Option) Service {
	s := &service{
		store:     store,
		world:     world,
		checker:   checker,
		knowledge: DiscoveryPolicy{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) knows(ch *domain.Character) func(*domain.Recipe) bool {
	return func(r *domain.Recipe) bool {
		return s.knowledge.Knows(ch, r)
	}
}

func (s *service) EvaluateCraft(ctx context.Context, ch *domain.Character, name string) (*CraftResult, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Refuse(domain.ErrInvalidInput, MsgCraftWhat)
	}

	r, ok := s.store.Resolve(name, s.knows(ch))
	if !ok {
		msg := fmt.Sprintf(MsgUnknownRecipeFmt, name)
		if hint := s.suggest(ch, name); hint != "" {
			msg += fmt.Sprintf(MsgDidYouMeanFmt, hint)
		}
		return nil, domain.Refuse(domain.ErrNotFound, msg)
	}

	if ch.Level < r.MinLevel {
		return nil, domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgLevelTooLowFmt, r.MinLevel, r.Name))
	}

	if r.RequiredSkill != "" {
		pct := ch.SkillPercent(r.RequiredSkill)
		if pct == 0 {
			return nil, domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgSkillUnlearnedFmt, r.RequiredSkill))
		}
		if pct < r.MinSkillPct {
			return nil, domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgSkillTooLowFmt, r.RequiredSkill, r.Name))
		}
	}

	station, ok := HasRequiredWorkstation(ch.Room, r)
	if !ok {
		return nil, domain.Refuse(domain.ErrNotEligible, s.stationMessage(r))
	}

	if ing, missing := MissingMaterial(ch, r); missing {
		return nil, domain.Refuse(domain.ErrNotEligible,
			fmt.Sprintf(MsgMissingMaterialFmt, ing.Quantity, s.describe(ing.VNUM), r.Name))
	}

	// Eligibility checks come first; a dangling product is a data error
	product, ok := s.world.ObjectPrototype(r.ProductVNUM)
	if !ok {
		log.Error("Recipe references missing product", "recipe", r.VNUM, "product", r.ProductVNUM)
		return nil, domain.Refuse(domain.ErrInvalidRecipe, fmt.Sprintf(MsgBadProductFmt, r.VNUM, r.ProductVNUM))
	}

	res := &CraftResult{
		Recipe:    r,
		Product:   product,
		Station:   station,
		Permitted: true,
	}
	if r.RequiredSkill == "" {
		res.Success = true
		res.Quality = skillcheck.QualityNormal
	} else {
		res.Check = s.checker.CraftCheck(ch, r)
		res.Success = res.Check.Success
		if res.Success {
			res.Quality = res.Check.Tier()
		}
	}

	log.Debug(LogMsgCraftEvaluated, "recipe", r.VNUM, "target", res.Check.Target, "roll", res.Check.Roll, "success", res.Success)
	return res, nil
}

func (s *service) ConsumeMaterials(ctx context.Context, ch *domain.Character, r *domain.Recipe) error {
	if err := consumeAll(s.world, ch, r); err != nil {
		logger.FromContext(ctx).Warn("Material consumption failed", "recipe", r.VNUM, "error", err)
		return fmt.Errorf("failed to consume materials for recipe %d: %w", r.VNUM, err)
	}
	return nil
}

func (s *service) Craft(ctx context.Context, ch *domain.Character, name string) (*CraftResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftCalled, "actor", ch.Name, "recipe", name)

	res, err := s.EvaluateCraft(ctx, ch, name)
	if err != nil {
		log.Debug(LogMsgCraftRefused, "actor", ch.Name, "reason", err)
		return nil, err
	}

	// Materials go whether or not the check succeeded
	if err := s.ConsumeMaterials(ctx, ch, res.Recipe); err != nil {
		return nil, err
	}

	r := res.Recipe
	if s.improver != nil && r.RequiredSkill != "" {
		s.improver.ImproveSkill(ch, r.RequiredSkill, res.Success, skillcheck.ImprovementRate(ch.Level, r.MinLevel))
	}

	metrics.CraftAttempts.WithLabelValues(metrics.Outcome(res.Success)).Inc()

	if !res.Success {
		s.world.Send(ch, fmt.Sprintf(MsgCraftFailureFmt, res.Product.ShortDescr))
		s.world.ActRoom(ch, utils.Capitalize(fmt.Sprintf(MsgRoomCraftFailureFmt, ch.Name, res.Product.ShortDescr)))
		log.Info("Craft failed", "actor", ch.Name, "recipe", r.VNUM)
		return res, nil
	}

	for i := 0; i < r.ProductQuantity; i++ {
		obj := s.world.CreateObject(res.Product, res.Product.Level)
		s.world.GiveObject(obj, ch)
	}

	made := res.Product.ShortDescr
	if r.ProductQuantity > 1 {
		made = fmt.Sprintf(MsgMultipleFmt, r.ProductQuantity, made)
	}
	s.world.Send(ch, fmt.Sprintf(MsgCraftSuccessFmt, made, res.Quality))
	s.world.ActRoom(ch, utils.Capitalize(fmt.Sprintf(MsgRoomCraftSuccessFmt, ch.Name, made)))
	log.Info("Craft succeeded", "actor", ch.Name, "recipe", r.VNUM, "quality", res.Quality.String())
	return res, nil
}

func (s *service) ListRecipes(ctx context.Context, ch *domain.Character, filter string) []*domain.Recipe {
	filter = strings.ToLower(strings.TrimSpace(filter))
	var out []*domain.Recipe
	for _, r := range s.store.List() {
		if !s.knowledge.Knows(ch, r) {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(r.Name), filter) {
			continue
		}
		out = append(out, r)
	}
	logger.FromContext(ctx).Debug("Recipes listed", "actor", ch.Name, "filter", filter, "count", len(out))
	return out
}

// suggest returns the closest known recipe name within a small edit distance
func (s *service) suggest(ch *domain.Character, name string) string {
	name = strings.ToLower(name)
	maxDist := len(name) / 3
	if maxDist < 2 {
		maxDist = 2
	}

	best, bestDist := "", maxDist+1
	for _, r := range s.store.List() {
		if !s.knowledge.Knows(ch, r) {
			continue
		}
		d := levenshtein.ComputeDistance(name, strings.ToLower(r.Name))
		if d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	return best
}

func (s *service) stationMessage(r *domain.Recipe) string {
	if r.StationVNUM != domain.VNUMNone {
		return fmt.Sprintf(MsgNoStationObjectFmt, s.describe(r.StationVNUM), r.Name)
	}
	return fmt.Sprintf(MsgNoStationTypeFmt, r.StationType.FlagsString(), r.Name)
}

func (s *service) describe(vnum domain.VNUM) string {
	return describeVNUM(s.world, vnum)
}

// DescribeRecipe renders a one-recipe summary for listings
func DescribeRecipe(catalog domain.Catalog, r *domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (level %d", r.Name, r.MinLevel)
	if r.RequiredSkill != "" {
		fmt.Fprintf(&b, ", %s %d%%", r.RequiredSkill, r.MinSkillPct)
	}
	if r.StationVNUM != domain.VNUMNone {
		fmt.Fprintf(&b, ", at %s", describeVNUM(catalog, r.StationVNUM))
	} else if r.StationType != domain.StationNone {
		fmt.Fprintf(&b, ", at %s", r.StationType.FlagsString())
	}
	b.WriteString(")\n  Needs: ")

	mats := r.RequiredMaterials()
	if len(mats) == 0 {
		b.WriteString("nothing")
	}
	parts := make([]string, 0, len(mats))
	for _, ing := range mats {
		parts = append(parts, fmt.Sprintf("%d x %s", ing.Quantity, describeVNUM(catalog, ing.VNUM)))
	}
	b.WriteString(strings.Join(parts, ", "))
	fmt.Fprintf(&b, "\n  Makes: %d x %s", r.ProductQuantity, describeVNUM(catalog, r.ProductVNUM))
	return b.String()
}

func describeVNUM(catalog domain.Catalog, vnum domain.VNUM) string {
	if p, ok := catalog.ObjectPrototype(vnum); ok {
		return p.ShortDescr
	}
	return fmt.Sprintf("object #%d", vnum)
}
