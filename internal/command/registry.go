// Package command dispatches typed input lines to the crafting commands.
package command

import (
	"context"
	"strings"
	"sync"

	"github.com/osse101/mudcraft/internal/domain"
)

// Handler executes one command. A returned domain.Refusal is shown to the
// actor; any other error is an internal failure.
type Handler func(ctx context.Context, ch *domain.Character, arg string) error

// Command is one entry of the command table
type Command struct {
	Name     string
	MinTrust int
	Handler  Handler
}

// Registry is an ordered command table. Commands are registered once at
// startup; lookups may then run from any goroutine.
type Registry struct {
	mu       sync.RWMutex
	commands []Command
}

// NewRegistry creates an empty command table
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends cmd. Registration order decides prefix ties.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd.Name = strings.ToLower(cmd.Name)
	r.commands = append(r.commands, cmd)
}

// Lookup resolves word among the commands ch may use: an exact name first,
// then the first registered name word is a prefix of.
func (r *Registry) Lookup(ch *domain.Character, word string) (Command, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return Command{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	trust := ch.EffectiveTrust()
	for _, cmd := range r.commands {
		if cmd.Name == word && trust >= cmd.MinTrust {
			return cmd, true
		}
	}
	for _, cmd := range r.commands {
		if strings.HasPrefix(cmd.Name, word) && trust >= cmd.MinTrust {
			return cmd, true
		}
	}
	return Command{}, false
}

// Names lists the commands available to ch in table order
func (r *Registry) Names(ch *domain.Character) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trust := ch.EffectiveTrust()
	var names []string
	for _, cmd := range r.commands {
		if trust >= cmd.MinTrust {
			names = append(names, cmd.Name)
		}
	}
	return names
}
