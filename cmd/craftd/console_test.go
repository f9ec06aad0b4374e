package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/mudcraft/internal/bootstrap"
	"github.com/osse101/mudcraft/internal/config"
	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/recipe"
)

type recordingInterpreter struct {
	calls []string
}

func (r *recordingInterpreter) Interpret(_ context.Context, ch *domain.Character, line string) error {
	r.calls = append(r.calls, ch.Name+":"+line)
	return nil
}

func runConsole(t *testing.T, c *console) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Run(ctx)
}

func TestConsole_MetaCommands(t *testing.T) {
	demo := bootstrap.SeedWorld(config.DefaultMaterialVNUMs())
	interp := &recordingInterpreter{}
	in := strings.NewReader("recipes\n/as builder\nrecedit show 3050\n/as nobody\n/who\n/quit\nrecipes\n")
	var out bytes.Buffer

	err := runConsole(t, newConsole(in, &out, interp, demo))

	assert.ErrorIs(t, err, errQuit)
	assert.Equal(t, []string{"Hero:recipes", "Builder:recedit show 3050"}, interp.calls)
	assert.Contains(t, out.String(), "You are now Builder.")
	assert.Contains(t, out.String(), `Nobody here is called "nobody".`)
	assert.Contains(t, out.String(), "* Builder")
	assert.Contains(t, out.String(), "  Hero (level 20)")
}

func TestConsole_ClosedInputQuits(t *testing.T) {
	demo := bootstrap.SeedWorld(config.DefaultMaterialVNUMs())
	interp := &recordingInterpreter{}
	var out bytes.Buffer

	err := runConsole(t, newConsole(strings.NewReader("\n   \n"), &out, interp, demo))

	assert.ErrorIs(t, err, errQuit)
	assert.Empty(t, interp.calls)
}

func TestConsole_Deliver(t *testing.T) {
	demo := bootstrap.SeedWorld(config.DefaultMaterialVNUMs())
	var out bytes.Buffer
	c := newConsole(strings.NewReader(""), &out, &recordingInterpreter{}, demo)

	c.deliver(demo.Player, "You skin the wolf.\n")
	c.deliver(demo.Builder, "Hero skins the wolf.")

	assert.Equal(t, "You skin the wolf.\n(to Builder) Hero skins the wolf.\n", out.String())
}

func TestConsole_EndToEnd(t *testing.T) {
	cfg := &config.Config{
		ReceditMinTrust:   domain.LevelBuilder,
		RecipeCacheSize:   16,
		MaterialListLimit: 20,
		Materials:         config.DefaultMaterialVNUMs(),
	}
	demo := bootstrap.SeedWorld(cfg.Materials)
	store := recipe.NewStore(recipe.WithNameCacheSize(cfg.RecipeCacheSize))
	require.NoError(t, bootstrap.LoadRecipes("../../configs/recipes.yaml", store, demo.World))

	var out bytes.Buffer
	c := newConsole(strings.NewReader("recipes\ndance\n"), &out, newInterpreter(cfg, store, demo), demo)
	demo.World.DiscardTranscript()
	demo.World.SetSink(c.deliver)

	err := runConsole(t, c)

	assert.ErrorIs(t, err, errQuit)
	assert.Contains(t, out.String(), "You know the following recipes:")
	assert.Contains(t, out.String(), "hearty stew")
	assert.NotContains(t, out.String(), "leather cap (level")
	assert.Contains(t, out.String(), "Huh?")
}
