package command

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
	"github.com/osse101/mudcraft/internal/metrics"
	"github.com/osse101/mudcraft/internal/recedit"
)

// Interpreter routes a line to the actor's editor session or to the
// command table.
type Interpreter struct {
	registry  *Registry
	editor    *recedit.Editor
	messenger domain.Messenger
}

// NewInterpreter creates an interpreter. editor may be nil.
func NewInterpreter(registry *Registry, editor *recedit.Editor, messenger domain.Messenger) *Interpreter {
	return &Interpreter{
		registry:  registry,
		editor:    editor,
		messenger: messenger,
	}
}

// Interpret executes one line typed by ch. Refusals are delivered to ch and
// swallowed; only internal failures are returned.
func (i *Interpreter) Interpret(ctx context.Context, ch *domain.Character, line string) error {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if i.editor != nil {
		handled, err := i.editor.Interpret(ctx, ch, line)
		if handled {
			return i.report(ctx, ch, CmdRecedit, err)
		}
	}

	word, arg, _ := strings.Cut(line, " ")
	cmd, ok := i.registry.Lookup(ch, word)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgUnknownCommand, logger.AttrKeyActor, ch.Name, logger.AttrKeyCommand, word)
		i.messenger.Send(ch, MsgHuh)
		return nil
	}
	return i.report(ctx, ch, cmd.Name, cmd.Handler(ctx, ch, strings.TrimSpace(arg)))
}

func (i *Interpreter) report(ctx context.Context, ch *domain.Character, name string, err error) error {
	if err == nil {
		return nil
	}
	log := logger.FromContext(ctx)
	metrics.Refusals.WithLabelValues(name, domain.RefusalKind(err)).Inc()

	var refusal *domain.Refusal
	if errors.As(err, &refusal) {
		log.Debug(LogMsgCommandRefused, logger.AttrKeyActor, ch.Name, logger.AttrKeyCommand, name, "reason", refusal.Msg)
		i.messenger.Send(ch, refusal.Msg)
		return nil
	}

	log.Error(LogMsgCommandFailed, logger.AttrKeyActor, ch.Name, logger.AttrKeyCommand, name, "error", err)
	i.messenger.Send(ch, MsgInternalError)
	return err
}
