package domain

import "strings"

// FormFlags describe a creature's body form; used to derive corpse materials
type FormFlags uint32

const (
	FormEdible FormFlags = 1 << iota
	FormMammal
	FormBird
	FormReptile
	FormFish
	FormInsect
	FormUndead
)

// Has reports whether every bit of want is set
func (f FormFlags) Has(want FormFlags) bool {
	return f&want == want
}

// MobPrototype is the template creatures are spawned from
type MobPrototype struct {
	VNUM       VNUM      `json:"vnum"`
	Name       string    `json:"name"`
	ShortDescr string    `json:"short_descr"`
	Level      int       `json:"level"`
	Form       FormFlags `json:"form"`
	Materials  []VNUM    `json:"materials,omitempty"` // Explicit corpse materials; overrides derivation
}

// Character is a player or mobile acting in the world
type Character struct {
	Name     string
	Level    int
	Trust    int
	IsNPC    bool
	Skills   map[string]int // Learned percentage by skill name; absent or 0 means never learned
	Carrying []*Object
	Wielded  *Object
	Room     *Room
}

// SkillPercent returns the learned percentage for a skill, 0 if unlearned
func (c *Character) SkillPercent(skill string) int {
	if skill == "" || c.Skills == nil {
		return 0
	}
	return c.Skills[strings.ToLower(skill)]
}

// Knows reports whether the character has ever learned the skill
func (c *Character) Knows(skill string) bool {
	return c.SkillPercent(skill) > 0
}

// EffectiveTrust returns the trust level used for authorization checks
func (c *Character) EffectiveTrust() int {
	if c.Trust > c.Level {
		return c.Trust
	}
	return c.Level
}

// FindCarried returns the first carried object matching name
func (c *Character) FindCarried(name string) *Object {
	return FindObject(c.Carrying, name)
}

// Room is a location holding objects and characters
type Room struct {
	VNUM     VNUM
	Name     string
	Contents []*Object
	People   []*Character
}

// FindObject returns the first object lying in the room matching name
func (r *Room) FindObject(name string) *Object {
	if r == nil {
		return nil
	}
	return FindObject(r.Contents, name)
}

// Area owns a contiguous VNUM range and the list of builders allowed to edit it
type Area struct {
	Name     string
	MinVNUM  VNUM
	MaxVNUM  VNUM
	Builders []string // Character names, or "All"
}

// Contains reports whether vnum lies inside the area's range
func (a *Area) Contains(vnum VNUM) bool {
	return vnum >= a.MinVNUM && vnum <= a.MaxVNUM
}

// IsBuilder reports whether ch may edit content owned by the area
func (a *Area) IsBuilder(ch *Character) bool {
	if ch == nil || ch.IsNPC {
		return false
	}
	if ch.EffectiveTrust() >= MaxLevel {
		return true
	}
	for _, b := range a.Builders {
		if strings.EqualFold(b, ch.Name) || strings.EqualFold(b, "all") {
			return true
		}
	}
	return false
}
