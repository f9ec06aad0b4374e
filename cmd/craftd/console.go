package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/mudcraft/internal/bootstrap"
	"github.com/osse101/mudcraft/internal/domain"
)

// errQuit ends the process without reporting a failure
var errQuit = errors.New("quit")

const (
	prompt = "> "

	metaAs   = "/as"
	metaWho  = "/who"
	metaQuit = "/quit"
)

type lineInterpreter interface {
	Interpret(ctx context.Context, ch *domain.Character, line string) error
}

// console drives the demo world from a line stream. Lines go to the
// interpreter as the current actor; /as switches actors.
type console struct {
	in     io.Reader
	out    io.Writer
	interp lineInterpreter
	demo   *bootstrap.Demo
	actor  *domain.Character
}

func newConsole(in io.Reader, out io.Writer, interp lineInterpreter, demo *bootstrap.Demo) *console {
	return &console{
		in:     in,
		out:    out,
		interp: interp,
		demo:   demo,
		actor:  demo.Player,
	}
}

// Run reads lines until the context ends, the input closes or /quit.
// Closed input and /quit both return errQuit.
func (c *console) Run(ctx context.Context) error {
	lines := make(chan string)
	go c.read(ctx, lines)

	fmt.Fprintf(c.out, "Playing as %s. Meta commands: %s <name>, %s, %s\n", c.actor.Name, metaAs, metaWho, metaQuit)
	fmt.Fprint(c.out, prompt)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := c.handle(ctx, line); err != nil {
				return err
			}
			fmt.Fprint(c.out, prompt)
		}
	}
}

func (c *console) read(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

func (c *console) handle(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	word, arg, _ := strings.Cut(line, " ")
	switch word {
	case "":
		return nil
	case metaQuit:
		return errQuit
	case metaWho:
		for _, ch := range c.demo.Room.People {
			marker := " "
			if ch == c.actor {
				marker = "*"
			}
			fmt.Fprintf(c.out, "%s %s (level %d)\n", marker, ch.Name, ch.Level)
		}
		return nil
	case metaAs:
		ch, ok := c.demo.Character(strings.TrimSpace(arg))
		if !ok {
			fmt.Fprintf(c.out, "Nobody here is called %q.\n", strings.TrimSpace(arg))
			return nil
		}
		c.actor = ch
		fmt.Fprintf(c.out, "You are now %s.\n", ch.Name)
		return nil
	}

	// Internal failures are logged and reported by the interpreter; the
	// console keeps going.
	_ = c.interp.Interpret(ctx, c.actor, line)
	return nil
}

// deliver prints a world message. Lines for other characters are tagged so
// room echoes stay visible.
func (c *console) deliver(ch *domain.Character, text string) {
	text = strings.TrimRight(text, "\n")
	if ch == c.actor {
		fmt.Fprintln(c.out, text)
		return
	}
	fmt.Fprintf(c.out, "(to %s) %s\n", ch.Name, text)
}
