package domain

// The engine never owns world state. These are the collaborator contracts it
// consumes; internal/world provides an in-memory implementation.

// Catalog resolves prototypes by vnum
type Catalog interface {
	ObjectPrototype(vnum VNUM) (*ObjectPrototype, bool)
	MobPrototype(vnum VNUM) (*MobPrototype, bool)
}

// PrototypeLister enumerates object prototypes in vnum order
type PrototypeLister interface {
	ObjectPrototypes() []*ObjectPrototype
}

// ObjectFactory instantiates, moves and destroys objects
type ObjectFactory interface {
	CreateObject(proto *ObjectPrototype, level int) *Object
	ExtractObject(obj *Object)
	GiveObject(obj *Object, ch *Character)
}

// Messenger delivers text to an actor and to the other occupants of its room
type Messenger interface {
	Send(ch *Character, text string)
	ActRoom(ch *Character, text string)
}

// AreaAuthority maps vnums to their owning area
type AreaAuthority interface {
	AreaForVNUM(vnum VNUM) (*Area, bool)
}

// Roller is the random source for skill checks
type Roller interface {
	// NumberPercent returns a value in [1, 100]
	NumberPercent() int
	// NumberRange returns a value in [lo, hi]
	NumberRange(lo, hi int) int
}

// Improver is the external skill-improvement subsystem. multiplier is the
// improvement rate selected by the skill-check evaluator.
type Improver interface {
	ImproveSkill(ch *Character, skill string, success bool, multiplier int)
}
