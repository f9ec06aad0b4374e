package harvest

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
	"github.com/osse101/mudcraft/internal/metrics"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/internal/utils"
)

// Outcome reports a performed extraction attempt
type Outcome struct {
	Result  *Result
	Check   skillcheck.Result
	Success bool
}

// Service defines the skin and butcher commands
type Service interface {
	// Extract runs the skin or butcher command against the corpse named by arg
	Extract(ctx context.Context, ch *domain.Character, kind Kind, arg string) (*Outcome, error)
}

type service struct {
	world    World
	checker  *skillcheck.Checker
	improver domain.Improver
}

// NewService creates a new harvest service. improver may be nil.
func NewService(world World, checker *skillcheck.Checker, improver domain.Improver) Service {
	return &service{
		world:    world,
		checker:  checker,
		improver: improver,
	}
}

func (s *service) Extract(ctx context.Context, ch *domain.Character, kind Kind, arg string) (*Outcome, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgExtractCalled, "actor", ch.Name, "verb", kind.String(), "target", arg)

	out, err := s.extract(ch, kind, strings.TrimSpace(arg))
	if err != nil {
		log.Debug(LogMsgExtractRefused, "actor", ch.Name, "verb", kind.String(), "reason", err)
		return nil, err
	}

	metrics.Extractions.WithLabelValues(kind.String(), metrics.Outcome(out.Success)).Inc()
	log.Info(LogMsgExtractDone, "actor", ch.Name, "verb", kind.String(),
		"success", out.Success, "roll", out.Check.Roll, "target", out.Check.Target)
	return out, nil
}

func (s *service) extract(ch *domain.Character, kind Kind, arg string) (*Outcome, error) {
	verb := kind.String()
	if arg == "" {
		return nil, domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgWhatFmt, utils.Capitalize(verb)))
	}
	if !skillcheck.HasCraftingTool(ch, kind.Tool()) {
		return nil, domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgNeedToolFmt, kind.Tool(), verb))
	}
	if !ch.Knows(kind.Skill()) {
		return nil, domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgSkillUnknownFmt, verb))
	}

	corpse := ch.Room.FindObject(arg)
	if corpse == nil {
		corpse = ch.FindCarried(arg)
	}
	res, err := Evaluate(s.world, corpse, kind)
	if err != nil {
		return nil, err
	}

	check := s.checker.Check(ch, kind.Skill(), corpse.Level)
	// The attempt spends the corpse whether or not it succeeds
	corpse.SetCorpseFlag(kinds[kind].flag)

	if s.improver != nil {
		s.improver.ImproveSkill(ch, kind.Skill(), check.Success, skillcheck.ImprovementRate(ch.Level, corpse.Level))
	}

	if check.Success {
		Apply(s.world, ch, res)
	} else {
		s.world.Send(ch, fmt.Sprintf(MsgFailureFmt, verb, corpse.ShortDescr))
		s.world.ActRoom(ch, utils.Capitalize(fmt.Sprintf(MsgRoomFailureFmt, ch.Name, verb, corpse.ShortDescr)))
	}

	return &Outcome{Result: res, Check: check, Success: check.Success}, nil
}
