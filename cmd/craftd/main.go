// Command craftd runs the crafting engine over a demo world. Commands are
// typed on stdin; the recipe catalogue is served over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/mudcraft/internal/bootstrap"
	"github.com/osse101/mudcraft/internal/command"
	"github.com/osse101/mudcraft/internal/config"
	"github.com/osse101/mudcraft/internal/crafting"
	"github.com/osse101/mudcraft/internal/harvest"
	"github.com/osse101/mudcraft/internal/recedit"
	"github.com/osse101/mudcraft/internal/recipe"
	"github.com/osse101/mudcraft/internal/server"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/internal/utils"
	"github.com/osse101/mudcraft/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer logCloser.Close()

	demo := bootstrap.SeedWorld(cfg.Materials)
	store := recipe.NewStore(recipe.WithNameCacheSize(cfg.RecipeCacheSize))
	if err := bootstrap.LoadRecipes(cfg.RecipesFile, store, demo.World); err != nil {
		return err
	}

	interp := newInterpreter(cfg, store, demo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	var httpServer bootstrap.Stopper
	if cfg.HTTPPort > 0 {
		srv := server.NewServer(server.Options{
			Port:           cfg.HTTPPort,
			ServiceName:    cfg.ServiceName,
			Version:        cfg.Version,
			RateLimit:      cfg.RateLimit,
			RateWindow:     cfg.RateWindow,
			TrustedProxies: cfg.TrustedProxies,
		}, store, demo.World)
		httpServer = srv
		g.Go(srv.Start)
	}

	console := newConsole(os.Stdin, os.Stdout, interp, demo)
	demo.World.DiscardTranscript()
	demo.World.SetSink(console.deliver)
	g.Go(func() error { return console.Run(gctx) })

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:  httpServer,
			Recipes: store,
		})
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		slog.Error("craftd stopped with error", "error", err)
		return err
	}
	return nil
}

// newInterpreter wires the crafting services and both command tables
func newInterpreter(cfg *config.Config, store *recipe.Store, demo *bootstrap.Demo) *command.Interpreter {
	roller := utils.NewRoller()
	checker := skillcheck.NewChecker(roller)
	trainer := world.NewTrainer(demo.World, roller)

	rules := crafting.DerivationRules(crafting.RecoveredMaterials{
		TannedLeather: cfg.Materials.TannedLeather,
		IronIngot:     cfg.Materials.IronIngot,
		BronzeIngot:   cfg.Materials.BronzeIngot,
		LinenScraps:   cfg.Materials.LinenScraps,
	})
	editor := recedit.NewEditor(store, demo.World, cfg.ReceditMinTrust)

	svc := command.Services{
		World:             demo.World,
		Crafting:          crafting.NewService(store, demo.World, checker, crafting.WithImprover(trainer)),
		Salvager:          crafting.NewSalvager(demo.World, checker, rules, trainer),
		Harvest:           harvest.NewService(demo.World, checker, trainer),
		Editor:            editor,
		BuilderTrust:      cfg.ReceditMinTrust,
		MaterialListLimit: cfg.MaterialListLimit,
	}

	registry := command.NewRegistry()
	command.RegisterPlayerCommands(registry, svc)
	command.RegisterBuilderCommands(registry, svc)
	return command.NewInterpreter(registry, editor, demo.World)
}
