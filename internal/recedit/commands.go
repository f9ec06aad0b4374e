package recedit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/utils"
)

type handlerFunc func(ctx context.Context, ch *domain.Character, s *Session, arg string) (string, error)

type subcommand struct {
	name    string
	syntax  string
	mutates bool
	run     handlerFunc
}

// commandTable is searched in order; the first name with the typed prefix wins
func (e *Editor) commandTable() []subcommand {
	return []subcommand{
		{name: "show", syntax: "show", run: e.show},
		{name: "list", syntax: "list", run: e.list},
		{name: "name", syntax: "name <text>", mutates: true, run: e.setName},
		{name: "level", syntax: "level <number>", mutates: true, run: e.setLevel},
		{name: "skill", syntax: "skill <name> [pct] | skill none", mutates: true, run: e.setSkill},
		{name: "station", syntax: "station <type> [vnum] | station none", mutates: true, run: e.setStation},
		{name: "discovery", syntax: "discovery <type>", mutates: true, run: e.setDiscovery},
		{name: "input", syntax: "input <vnum> [qty]", mutates: true, run: e.addInput},
		{name: "rminput", syntax: "rminput <index>", mutates: true, run: e.removeInput},
		{name: "output", syntax: "output <vnum> [qty]", mutates: true, run: e.setOutput},
		{name: "commands", syntax: "commands", run: e.listCommands},
		{name: "?", syntax: "?", run: e.listCommands},
		{name: "done", syntax: "done", run: e.done},
	}
}

func syntaxError(syntax string) error {
	return domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgSyntaxFmt, syntax))
}

func (e *Editor) show(_ context.Context, _ *domain.Character, s *Session, _ string) (string, error) {
	return Describe(e.world, s.Recipe), nil
}

func (e *Editor) list(_ context.Context, _ *domain.Character, _ *Session, _ string) (string, error) {
	return e.listRecipes(), nil
}

func (e *Editor) setName(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	if arg == "" {
		return "", syntaxError("name <text>")
	}
	s.Recipe.Name = arg
	return MsgOK, nil
}

func (e *Editor) setLevel(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", syntaxError("level <number>")
	}
	s.Recipe.MinLevel = utils.Clamp(n, 0, domain.MaxLevel)
	return MsgOK, nil
}

func (e *Editor) setSkill(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return "", syntaxError("skill <name> [pct] | skill none")
	}
	if strings.EqualFold(fields[0], "none") {
		s.Recipe.RequiredSkill = ""
		s.Recipe.MinSkillPct = 0
		return MsgOK, nil
	}

	skill, ok := domain.LookupSkill(fields[0])
	if !ok {
		return "", domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgUnknownSkillFmt, fields[0]))
	}
	pct := 0
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", syntaxError("skill <name> [pct] | skill none")
		}
		pct = utils.Clamp(n, 0, 100)
	}
	s.Recipe.RequiredSkill = skill
	s.Recipe.MinSkillPct = pct
	return MsgOK, nil
}

func (e *Editor) setStation(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return "", syntaxError("station <type> [vnum] | station none")
	}
	if strings.EqualFold(fields[0], "none") {
		s.Recipe.StationType = domain.StationNone
		s.Recipe.StationVNUM = domain.VNUMNone
		return MsgOK, nil
	}

	station, ok := domain.ParseWorkstationType(fields[0])
	if !ok {
		return "", domain.Refuse(domain.ErrInvalidInput,
			fmt.Sprintf(MsgUnknownStationFmt, fields[0], strings.Join(domain.WorkstationTypeNames(), " ")))
	}

	vnum := domain.VNUMNone
	if len(fields) > 1 {
		v, err := parseVNUM(fields[1])
		if err != nil {
			return "", err
		}
		proto, ok := e.world.ObjectPrototype(v)
		if !ok {
			return "", domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoObjectFmt, v))
		}
		if proto.Type != domain.ItemWorkstation {
			return "", domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgNotStationFmt, v))
		}
		vnum = v
	}
	s.Recipe.StationType = station
	s.Recipe.StationVNUM = vnum
	return MsgOK, nil
}

func (e *Editor) setDiscovery(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	if arg == "" {
		return "", syntaxError("discovery <type>")
	}
	// The lenient lookup would turn a typo into "known"
	d, ok := domain.ParseDiscoveryType(arg)
	if !ok {
		return "", domain.Refuse(domain.ErrInvalidInput,
			fmt.Sprintf(MsgUnknownDiscFmt, arg, strings.Join(domain.DiscoveryTypeNames(), " ")))
	}
	s.Recipe.Discovery = d
	return MsgOK, nil
}

// vnumAndQuantity parses "<vnum> [qty]" with qty clamped to the quantity bounds
func vnumAndQuantity(arg, syntax string) (domain.VNUM, int, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return domain.VNUMNone, 0, syntaxError(syntax)
	}
	vnum, err := parseVNUM(fields[0])
	if err != nil {
		return domain.VNUMNone, 0, err
	}
	qty := MinQuantity
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return domain.VNUMNone, 0, syntaxError(syntax)
		}
		qty = utils.Clamp(n, MinQuantity, MaxQuantity)
	}
	return vnum, qty, nil
}

func (e *Editor) addInput(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	vnum, qty, err := vnumAndQuantity(arg, "input <vnum> [qty]")
	if err != nil {
		return "", err
	}
	proto, ok := e.world.ObjectPrototype(vnum)
	if !ok {
		return "", domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoObjectFmt, vnum))
	}
	if proto.Type != domain.ItemMaterial {
		return "", domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgNotMaterialFmt, proto.ShortDescr))
	}
	if err := s.Recipe.AddIngredient(vnum, qty); err != nil {
		if errors.Is(err, domain.ErrTooManyIngredients) {
			return "", domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgTooManyInputs, domain.MaxIngredients))
		}
		return "", err
	}
	return MsgOK, nil
}

func (e *Editor) removeInput(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", syntaxError("rminput <index>")
	}
	if !s.Recipe.RemoveIngredient(n - 1) {
		return "", domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoIngredientFmt, arg))
	}
	return MsgOK, nil
}

func (e *Editor) setOutput(_ context.Context, _ *domain.Character, s *Session, arg string) (string, error) {
	vnum, qty, err := vnumAndQuantity(arg, "output <vnum> [qty]")
	if err != nil {
		return "", err
	}
	if _, ok := e.world.ObjectPrototype(vnum); !ok {
		return "", domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoObjectFmt, vnum))
	}
	s.Recipe.ProductVNUM = vnum
	s.Recipe.ProductQuantity = qty
	return MsgOK, nil
}

func (e *Editor) listCommands(_ context.Context, _ *domain.Character, _ *Session, _ string) (string, error) {
	lines := []string{MsgCommandsHeader}
	for _, cmd := range e.commands {
		lines = append(lines, "  "+cmd.syntax)
	}
	return strings.Join(lines, "\n"), nil
}

func (e *Editor) done(ctx context.Context, ch *domain.Character, _ *Session, _ string) (string, error) {
	e.Close(ctx, ch)
	return MsgDone, nil
}

// Describe renders a recipe for the show sub-command
func Describe(catalog domain.Catalog, r *domain.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe:    [%d] %s\n", r.VNUM, r.Name)
	fmt.Fprintf(&b, "Level:     %d\n", r.MinLevel)
	if r.RequiredSkill == "" {
		b.WriteString("Skill:     none\n")
	} else {
		fmt.Fprintf(&b, "Skill:     %s (%d%%)\n", r.RequiredSkill, r.MinSkillPct)
	}
	fmt.Fprintf(&b, "Station:   %s", r.StationType.FlagsString())
	if r.StationVNUM != domain.VNUMNone {
		fmt.Fprintf(&b, " [%d] %s", r.StationVNUM, shortDescr(catalog, r.StationVNUM))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Discovery: %s\n", r.Discovery)
	b.WriteString("Inputs:\n")
	if len(r.Ingredients) == 0 {
		b.WriteString("  none\n")
	}
	for i, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  %d) %d x [%d] %s\n", i+1, ing.Quantity, ing.VNUM, shortDescr(catalog, ing.VNUM))
	}
	if r.ProductVNUM == domain.VNUMNone {
		b.WriteString("Output:    none")
	} else {
		fmt.Fprintf(&b, "Output:    %d x [%d] %s", r.ProductQuantity, r.ProductVNUM, shortDescr(catalog, r.ProductVNUM))
	}
	return b.String()
}

func shortDescr(catalog domain.Catalog, vnum domain.VNUM) string {
	if p, ok := catalog.ObjectPrototype(vnum); ok {
		return p.ShortDescr
	}
	return "(missing)"
}
