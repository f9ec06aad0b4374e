// Package recedit implements the modal recipe editor builders use to author
// recipes in place.
package recedit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
	"github.com/osse101/mudcraft/internal/metrics"
	"github.com/osse101/mudcraft/internal/recipe"
)

// World is what the editor needs from the game world
type World interface {
	domain.Catalog
	domain.AreaAuthority
	domain.Messenger
}

// Session is one builder's open editor, holding the recipe being edited
type Session struct {
	ID      string
	Recipe  *domain.Recipe
	Started time.Time
}

// Editor owns the open sessions and the sub-command table
type Editor struct {
	store    *recipe.Store
	world    World
	minTrust int
	sessions map[*domain.Character]*Session
	commands []subcommand
}

// NewEditor creates an editor over store. minTrust gates entry.
func NewEditor(store *recipe.Store, world World, minTrust int) *Editor {
	e := &Editor{
		store:    store,
		world:    world,
		minTrust: minTrust,
		sessions: make(map[*domain.Character]*Session),
	}
	e.commands = e.commandTable()
	return e
}

// Active returns the session attached to ch, if any
func (e *Editor) Active(ch *domain.Character) (*Session, bool) {
	s, ok := e.sessions[ch]
	return s, ok
}

// Close detaches ch from its session
func (e *Editor) Close(ctx context.Context, ch *domain.Character) {
	s, ok := e.sessions[ch]
	if !ok {
		return
	}
	delete(e.sessions, ch)
	metrics.EditorSessions.Set(float64(len(e.sessions)))
	logger.FromContext(ctx).Info("Recipe editor closed", "builder", ch.Name, "session", s.ID, "recipe", s.Recipe.VNUM)
}

// Command runs the recedit entry command: "<vnum>", "create <vnum>" or "list"
func (e *Editor) Command(ctx context.Context, ch *domain.Character, arg string) error {
	log := logger.FromContext(ctx)
	log.Info("Recedit called", "builder", ch.Name, "arg", arg)

	if ch.IsNPC || ch.EffectiveTrust() < e.minTrust {
		return domain.Refuse(domain.ErrPermission, MsgNotAuthorized)
	}

	verb, rest, _ := strings.Cut(strings.TrimSpace(arg), " ")
	switch strings.ToLower(verb) {
	case "":
		return domain.Refuse(domain.ErrInvalidInput, MsgUsage)
	case "list":
		e.world.Send(ch, e.listRecipes())
		return nil
	case "create":
		return e.create(ctx, ch, strings.TrimSpace(rest))
	default:
		return e.edit(ctx, ch, verb)
	}
}

func (e *Editor) create(ctx context.Context, ch *domain.Character, arg string) error {
	vnum, err := parseVNUM(arg)
	if err != nil {
		return err
	}
	if _, exists := e.store.Get(vnum); exists {
		return domain.Refuse(domain.ErrDuplicateVNUM, fmt.Sprintf(MsgRecipeExistsFmt, vnum))
	}
	if err := e.authorize(ch, vnum); err != nil {
		return err
	}

	r := domain.NewRecipe(vnum)
	if err := e.store.Add(r); err != nil {
		return fmt.Errorf("failed to register recipe %d: %w", vnum, err)
	}
	if err := e.store.Touch(vnum); err != nil {
		return fmt.Errorf("failed to mark recipe %d changed: %w", vnum, err)
	}

	e.open(ctx, ch, r)
	e.world.Send(ch, fmt.Sprintf(MsgCreatedFmt, vnum))
	return nil
}

func (e *Editor) edit(ctx context.Context, ch *domain.Character, arg string) error {
	vnum, err := parseVNUM(arg)
	if err != nil {
		return err
	}
	r, ok := e.store.Get(vnum)
	if !ok {
		return domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoRecipeFmt, vnum))
	}
	if err := e.authorize(ch, vnum); err != nil {
		return err
	}

	e.open(ctx, ch, r)
	e.world.Send(ch, fmt.Sprintf(MsgEditingFmt, r.VNUM, r.Name))
	return nil
}

// authorize requires builder access to the area owning vnum
func (e *Editor) authorize(ch *domain.Character, vnum domain.VNUM) error {
	area, ok := e.world.AreaForVNUM(vnum)
	if !ok {
		return domain.Refuse(domain.ErrPermission, fmt.Sprintf(MsgNoAreaFmt, vnum))
	}
	if !area.IsBuilder(ch) {
		return domain.Refuse(domain.ErrPermission, fmt.Sprintf(MsgNotBuilderFmt, area.Name))
	}
	return nil
}

func (e *Editor) open(ctx context.Context, ch *domain.Character, r *domain.Recipe) {
	s := &Session{
		ID:      uuid.NewString(),
		Recipe:  r,
		Started: time.Now(),
	}
	e.sessions[ch] = s
	metrics.EditorSessions.Set(float64(len(e.sessions)))
	logger.FromContext(ctx).Info("Recipe editor opened", "builder", ch.Name, "session", s.ID, "recipe", r.VNUM)
}

// Interpret offers line to ch's open session. It reports false when ch has
// no session or the word is not an editor sub-command, so the caller can
// fall through to the general command table.
func (e *Editor) Interpret(ctx context.Context, ch *domain.Character, line string) (bool, error) {
	s, ok := e.sessions[ch]
	if !ok {
		return false, nil
	}

	word, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	cmd, ok := e.lookup(word)
	if !ok {
		return false, nil
	}

	arg = strings.TrimSpace(arg)
	if !cmd.mutates {
		msg, err := cmd.run(ctx, ch, s, arg)
		if err != nil {
			return true, err
		}
		e.send(ch, msg)
		return true, nil
	}

	var msg string
	err := e.store.Update(s.Recipe.VNUM, func(*domain.Recipe) error {
		var runErr error
		msg, runErr = cmd.run(ctx, ch, s, arg)
		return runErr
	})
	if errors.Is(err, domain.ErrRecipeNotRegistered) {
		// The recipe vanished under the session; nothing left to edit
		e.Close(ctx, ch)
		return true, err
	}
	if err != nil {
		return true, err
	}
	logger.FromContext(ctx).Debug("Recipe edited", "builder", ch.Name, "session", s.ID, "recipe", s.Recipe.VNUM, "command", cmd.name)
	e.send(ch, msg)
	return true, nil
}

func (e *Editor) send(ch *domain.Character, msg string) {
	if msg != "" {
		e.world.Send(ch, msg)
	}
}

func (e *Editor) lookup(word string) (subcommand, bool) {
	word = strings.ToLower(word)
	if word == "" {
		return subcommand{}, false
	}
	for _, cmd := range e.commands {
		if strings.HasPrefix(cmd.name, word) {
			return cmd, true
		}
	}
	return subcommand{}, false
}

func (e *Editor) listRecipes() string {
	recipes := e.store.List()
	if len(recipes) == 0 {
		return MsgNoRecipes
	}
	lines := make([]string, 0, len(recipes))
	for _, r := range recipes {
		lines = append(lines, fmt.Sprintf("[%5d] %s", r.VNUM, r.Name))
	}
	return strings.Join(lines, "\n")
}

func parseVNUM(arg string) (domain.VNUM, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return domain.VNUMNone, domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgBadVNUMFmt, arg))
	}
	return domain.VNUM(n), nil
}
