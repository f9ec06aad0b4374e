package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/mudcraft/internal/crafting"
	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/harvest"
	"github.com/osse101/mudcraft/internal/recedit"
)

// World is what the command layer reads from the game world
type World interface {
	domain.Catalog
	domain.PrototypeLister
	domain.AreaAuthority
	domain.Messenger
}

// Services bundles the collaborators the crafting commands dispatch to
type Services struct {
	World    World
	Crafting crafting.Service
	Salvager *crafting.Salvager
	Harvest  harvest.Service
	Editor   *recedit.Editor

	// BuilderTrust gates the builder commands
	BuilderTrust int
	// MaterialListLimit caps material listings
	MaterialListLimit int
}

// RegisterPlayerCommands adds skin, butcher, salvage, craft and recipes
func RegisterPlayerCommands(reg *Registry, svc Services) {
	reg.Register(Command{Name: CmdSkin, Handler: extract(svc.Harvest, harvest.KindSkin)})
	reg.Register(Command{Name: CmdButcher, Handler: extract(svc.Harvest, harvest.KindButcher)})
	reg.Register(Command{Name: CmdSalvage, Handler: salvage(svc.Salvager)})
	reg.Register(Command{Name: CmdCraft, Handler: craft(svc.Crafting)})
	reg.Register(Command{Name: CmdRecipes, Handler: recipes(svc.Crafting, svc.World)})
}

func extract(h harvest.Service, kind harvest.Kind) Handler {
	return func(ctx context.Context, ch *domain.Character, arg string) error {
		_, err := h.Extract(ctx, ch, kind, arg)
		return err
	}
}

func salvage(s *crafting.Salvager) Handler {
	return func(ctx context.Context, ch *domain.Character, arg string) error {
		_, err := s.Salvage(ctx, ch, arg)
		return err
	}
}

func craft(c crafting.Service) Handler {
	return func(ctx context.Context, ch *domain.Character, arg string) error {
		_, err := c.Craft(ctx, ch, arg)
		return err
	}
}

func recipes(c crafting.Service, w World) Handler {
	return func(ctx context.Context, ch *domain.Character, arg string) error {
		known := c.ListRecipes(ctx, ch, arg)
		if len(known) == 0 {
			if arg != "" {
				w.Send(ch, fmt.Sprintf(MsgNoRecipesMatch, arg))
			} else {
				w.Send(ch, MsgNoRecipesKnown)
			}
			return nil
		}

		lines := make([]string, 0, len(known)+1)
		lines = append(lines, MsgRecipesHeader)
		for _, r := range known {
			lines = append(lines, crafting.DescribeRecipe(w, r))
		}
		w.Send(ch, strings.Join(lines, "\n"))
		return nil
	}
}
