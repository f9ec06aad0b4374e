package world

import (
	"github.com/osse101/mudcraft/internal/domain"
)

// Send implements domain.Messenger
func (w *World) Send(ch *domain.Character, text string) {
	w.deliver(ch, text, false)
}

// ActRoom implements domain.Messenger. Every other occupant of the actor's
// room receives the line.
func (w *World) ActRoom(ch *domain.Character, text string) {
	if ch.Room == nil {
		return
	}
	for _, other := range ch.Room.People {
		if other != ch {
			w.deliver(other, text, true)
		}
	}
}

func (w *World) deliver(to *domain.Character, text string, room bool) {
	if !w.discard {
		w.messages = append(w.messages, Message{To: to, Text: text, Room: room})
	}
	if w.sink != nil {
		w.sink(to, text)
	}
}

// Messages returns the lines delivered to ch, oldest first
func (w *World) Messages(ch *domain.Character) []string {
	var out []string
	for _, m := range w.messages {
		if m.To == ch {
			out = append(out, m.Text)
		}
	}
	return out
}

// LastMessage returns the most recent line delivered to ch
func (w *World) LastMessage(ch *domain.Character) string {
	for i := len(w.messages) - 1; i >= 0; i-- {
		if w.messages[i].To == ch {
			return w.messages[i].Text
		}
	}
	return ""
}

// ClearMessages drops the recorded transcript
func (w *World) ClearMessages() {
	w.messages = nil
}
