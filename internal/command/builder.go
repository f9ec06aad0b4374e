package command

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
	"github.com/osse101/mudcraft/internal/matlist"
)

// RegisterBuilderCommands adds recedit, salvagemats, corpsemats and materials
func RegisterBuilderCommands(reg *Registry, svc Services) {
	trust := svc.BuilderTrust
	if svc.Editor != nil {
		reg.Register(Command{Name: CmdRecedit, MinTrust: trust, Handler: svc.Editor.Command})
	}
	reg.Register(Command{Name: CmdSalvageMats, MinTrust: trust, Handler: salvageMats(svc)})
	reg.Register(Command{Name: CmdCorpseMats, MinTrust: trust, Handler: corpseMats(svc)})
	reg.Register(Command{Name: CmdMaterials, MinTrust: trust, Handler: materials(svc)})
}

// materialListEdit runs add|remove|show against list, owned by vnum
type materialListEdit struct {
	cmd    string
	header string
	vnum   domain.VNUM
	list   *[]domain.VNUM
}

func salvageMats(svc Services) Handler {
	return func(ctx context.Context, ch *domain.Character, arg string) error {
		vnum, rest, err := splitVNUM(CmdSalvageMats, arg)
		if err != nil {
			return err
		}
		proto, ok := svc.World.ObjectPrototype(vnum)
		if !ok {
			return domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoObjectFmt, vnum))
		}
		return editMaterialList(ctx, svc, ch, materialListEdit{
			cmd:    CmdSalvageMats,
			header: fmt.Sprintf(MsgSalvageHeader, proto.ShortDescr),
			vnum:   vnum,
			list:   &proto.SalvageMats,
		}, rest)
	}
}

func corpseMats(svc Services) Handler {
	return func(ctx context.Context, ch *domain.Character, arg string) error {
		vnum, rest, err := splitVNUM(CmdCorpseMats, arg)
		if err != nil {
			return err
		}
		mob, ok := svc.World.MobPrototype(vnum)
		if !ok {
			return domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoMobFmt, vnum))
		}
		return editMaterialList(ctx, svc, ch, materialListEdit{
			cmd:    CmdCorpseMats,
			header: fmt.Sprintf(MsgCorpseMatsHeader, mob.ShortDescr),
			vnum:   vnum,
			list:   &mob.Materials,
		}, rest)
	}
}

func editMaterialList(ctx context.Context, svc Services, ch *domain.Character, e materialListEdit, arg string) error {
	verb, rest, _ := strings.Cut(strings.TrimSpace(arg), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "", "show":
		filter, err := parseFilter(rest)
		if err != nil {
			return err
		}
		svc.World.Send(ch, e.header+"\n"+matlist.Show(svc.World, *e.list, filter, svc.MaterialListLimit))
		return nil

	case "add":
		if err := authorizeArea(ctx, svc.World, ch, e.cmd, e.vnum); err != nil {
			return err
		}
		mat, err := parseVNUM(rest)
		if err != nil {
			return err
		}
		if err := matlist.Add(svc.World, e.list, mat); err != nil {
			return err
		}
		proto, _ := svc.World.ObjectPrototype(mat)
		svc.World.Send(ch, fmt.Sprintf(MsgAddedFmt, mat, proto.ShortDescr))
		return nil

	case "remove":
		if err := authorizeArea(ctx, svc.World, ch, e.cmd, e.vnum); err != nil {
			return err
		}
		removed, err := matlist.Remove(e.list, rest)
		if err != nil {
			return err
		}
		svc.World.Send(ch, fmt.Sprintf(MsgRemovedFmt, removed))
		return nil

	default:
		return domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgMatUsageFmt, e.cmd))
	}
}

func materials(svc Services) Handler {
	return func(_ context.Context, ch *domain.Character, arg string) error {
		filter, err := parseFilter(arg)
		if err != nil {
			return err
		}
		svc.World.Send(ch, MsgAllMaterials+"\n"+matlist.List(svc.World, filter, svc.MaterialListLimit))
		return nil
	}
}

// authorizeArea requires builder rights over the area owning vnum
func authorizeArea(ctx context.Context, w domain.AreaAuthority, ch *domain.Character, cmd string, vnum domain.VNUM) error {
	area, ok := w.AreaForVNUM(vnum)
	if ok && area.IsBuilder(ch) {
		return nil
	}
	logger.FromContext(ctx).Warn(LogMsgCommandDenied,
		slog.String(logger.AttrKeyActor, ch.Name),
		slog.String(logger.AttrKeyCommand, cmd),
		slog.Int("vnum", int(vnum)))
	return domain.Refuse(domain.ErrPermission, fmt.Sprintf(MsgNotYourAreaFmt, vnum))
}

func parseFilter(arg string) (domain.CraftMatType, error) {
	if arg == "" {
		return domain.MatNone, nil
	}
	t, ok := domain.ParseCraftMatType(arg)
	if !ok {
		return domain.MatNone, domain.Refuse(domain.ErrInvalidInput,
			fmt.Sprintf(MsgUnknownMatFmt, arg, strings.Join(domain.CraftMatTypeNames(), " ")))
	}
	return t, nil
}

func splitVNUM(cmd, arg string) (domain.VNUM, string, error) {
	first, rest, _ := strings.Cut(strings.TrimSpace(arg), " ")
	if first == "" {
		return domain.VNUMNone, "", domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgMatUsageFmt, cmd))
	}
	vnum, err := parseVNUM(first)
	return vnum, rest, err
}

func parseVNUM(arg string) (domain.VNUM, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return domain.VNUMNone, domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgBadVNUMFmt, arg))
	}
	return domain.VNUM(n), nil
}
