// Package world is an in-memory implementation of the collaborator
// interfaces the crafting engine consumes. It backs the demo binary and the
// package tests.
package world

import (
	"sort"

	"github.com/osse101/mudcraft/internal/domain"
)

// Sink receives every message delivered to a character
type Sink func(ch *domain.Character, text string)

// Message is one delivered line, kept for inspection
type Message struct {
	To   *domain.Character
	Text string
	Room bool // true when delivered as a room-visible action line
}

// World holds prototypes, areas and rooms
type World struct {
	objects map[domain.VNUM]*domain.ObjectPrototype
	mobs    map[domain.VNUM]*domain.MobPrototype
	rooms   map[domain.VNUM]*domain.Room
	areas   []*domain.Area

	sink     Sink
	messages []Message
	// discard stops transcript recording for long-running processes
	discard bool
}

// New creates an empty world
func New() *World {
	return &World{
		objects: make(map[domain.VNUM]*domain.ObjectPrototype),
		mobs:    make(map[domain.VNUM]*domain.MobPrototype),
		rooms:   make(map[domain.VNUM]*domain.Room),
	}
}

// SetSink forwards delivered messages to s in addition to recording them
func (w *World) SetSink(s Sink) {
	w.sink = s
}

// DiscardTranscript stops recording delivered lines. The sink still
// receives them.
func (w *World) DiscardTranscript() {
	w.discard = true
	w.messages = nil
}

// AddObjectPrototype registers or replaces an object prototype
func (w *World) AddObjectPrototype(p *domain.ObjectPrototype) {
	w.objects[p.VNUM] = p
}

// AddMobPrototype registers or replaces a mobile prototype
func (w *World) AddMobPrototype(p *domain.MobPrototype) {
	w.mobs[p.VNUM] = p
}

// AddArea registers an area
func (w *World) AddArea(a *domain.Area) {
	w.areas = append(w.areas, a)
}

// AddRoom registers a room
func (w *World) AddRoom(r *domain.Room) {
	w.rooms[r.VNUM] = r
}

// Room returns the room with the given vnum
func (w *World) Room(vnum domain.VNUM) (*domain.Room, bool) {
	r, ok := w.rooms[vnum]
	return r, ok
}

// ObjectPrototype implements domain.Catalog
func (w *World) ObjectPrototype(vnum domain.VNUM) (*domain.ObjectPrototype, bool) {
	p, ok := w.objects[vnum]
	return p, ok
}

// MobPrototype implements domain.Catalog
func (w *World) MobPrototype(vnum domain.VNUM) (*domain.MobPrototype, bool) {
	p, ok := w.mobs[vnum]
	return p, ok
}

// ObjectPrototypes implements domain.PrototypeLister
func (w *World) ObjectPrototypes() []*domain.ObjectPrototype {
	out := make([]*domain.ObjectPrototype, 0, len(w.objects))
	for _, p := range w.objects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VNUM < out[j].VNUM })
	return out
}

// AreaForVNUM implements domain.AreaAuthority
func (w *World) AreaForVNUM(vnum domain.VNUM) (*domain.Area, bool) {
	for _, a := range w.areas {
		if a.Contains(vnum) {
			return a, true
		}
	}
	return nil, false
}
