package domain

import "strings"

// VNUM is a stable integer identifier for a world prototype (object, mobile, recipe)
type VNUM int

// VNUMNone marks an unset reference
const VNUMNone VNUM = 0

// ItemType is the category of an object
type ItemType int

const (
	ItemTrash ItemType = iota
	ItemWeapon
	ItemArmor
	ItemFood
	ItemMaterial
	ItemWorkstation
	ItemTool
	ItemContainer
	ItemCorpseNPC
	ItemCorpsePC
)

var itemTypeNames = map[ItemType]string{
	ItemTrash:       "trash",
	ItemWeapon:      "weapon",
	ItemArmor:       "armor",
	ItemFood:        "food",
	ItemMaterial:    "material",
	ItemWorkstation: "workstation",
	ItemTool:        "tool",
	ItemContainer:   "container",
	ItemCorpseNPC:   "npc_corpse",
	ItemCorpsePC:    "pc_corpse",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsCorpse reports whether the type is either corpse kind
func (t ItemType) IsCorpse() bool {
	return t == ItemCorpseNPC || t == ItemCorpsePC
}

// ToolType is the crafting tool category of a wieldable object
type ToolType int

const (
	ToolNone ToolType = iota
	ToolKnife
	ToolCleaver
	ToolHammer
	ToolNeedle
	ToolSaw
	ToolTongs
)

var toolNames = map[ToolType]string{
	ToolNone:    "none",
	ToolKnife:   "knife",
	ToolCleaver: "cleaver",
	ToolHammer:  "hammer",
	ToolNeedle:  "needle",
	ToolSaw:     "saw",
	ToolTongs:   "tongs",
}

func (t ToolType) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "none"
}

// CorpseFlags records which extraction verbs have already been applied to a corpse.
// Bits are only ever set, never cleared.
type CorpseFlags uint8

const (
	CorpseSkinned CorpseFlags = 1 << iota
	CorpseButchered
)

// ObjectPrototype is the template objects are instantiated from
type ObjectPrototype struct {
	VNUM         VNUM            `json:"vnum"`
	Keywords     string          `json:"keywords"`
	ShortDescr   string          `json:"short_descr"`
	Type         ItemType        `json:"type"`
	Material     string          `json:"material,omitempty"`
	Level        int             `json:"level"`
	Stackable    bool            `json:"stackable,omitempty"`
	MatType      CraftMatType    `json:"mat_type,omitempty"`
	StationFlags WorkstationType `json:"station_flags,omitempty"`
	Tool         ToolType        `json:"tool,omitempty"`
	SalvageMats  []VNUM          `json:"salvage_mats,omitempty"` // Explicit salvage yield; overrides derivation
}

// Object is a live instance in the world
type Object struct {
	ID           string
	ProtoVNUM    VNUM
	Keywords     string
	ShortDescr   string
	Type         ItemType
	Material     string
	Level        int
	Quantity     int // Stack size for stackable materials; 0 means a discrete object
	MatType      CraftMatType
	StationFlags WorkstationType
	Tool         ToolType
	SalvageMats  []VNUM
	CorpseMats   []VNUM // Materials available for extraction (corpses only)
	CorpseFlags  CorpseFlags

	CarriedBy *Character
	InRoom    *Room
}

// Count is how many units this object represents for material sufficiency
func (o *Object) Count() int {
	if o.Quantity > 0 {
		return o.Quantity
	}
	return 1
}

// IsStack reports whether the object is a stack of more than one unit
func (o *Object) IsStack() bool {
	return o.Quantity > 1
}

// HasCorpseFlag reports whether the given extraction bit is set
func (o *Object) HasCorpseFlag(f CorpseFlags) bool {
	return o.CorpseFlags&f != 0
}

// SetCorpseFlag sets an extraction bit
func (o *Object) SetCorpseFlag(f CorpseFlags) {
	o.CorpseFlags |= f
}

// MatchesName reports whether every word of name is a prefix of one of the
// object's keywords.
func (o *Object) MatchesName(name string) bool {
	return matchKeywords(o.Keywords, name)
}

func matchKeywords(keywords, name string) bool {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return false
	}
	kws := strings.Fields(strings.ToLower(keywords))
	for _, w := range words {
		found := false
		for _, kw := range kws {
			if strings.HasPrefix(kw, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FindObject returns the first object in list matching name
func FindObject(list []*Object, name string) *Object {
	for _, obj := range list {
		if obj.MatchesName(name) {
			return obj
		}
	}
	return nil
}
