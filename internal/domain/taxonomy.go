package domain

import "strings"

// CraftMatType classifies a crafting material prototype
type CraftMatType int

const (
	MatNone CraftMatType = iota
	MatHide
	MatLeather
	MatFur
	MatScale
	MatMeat
	MatBone
	MatOre
	MatIngot
	MatCloth
	MatWood
	MatGem
	MatHerb
	MatStone
)

// WorkstationType is a bit set of crafting capabilities granted by a placed object
type WorkstationType uint32

const (
	StationNone      WorkstationType = 0
	StationForge     WorkstationType = 1 << 0
	StationAnvil     WorkstationType = 1 << 1
	StationTannery   WorkstationType = 1 << 2
	StationLoom      WorkstationType = 1 << 3
	StationSmelter   WorkstationType = 1 << 4
	StationWorkbench WorkstationType = 1 << 5
	StationAlchemy   WorkstationType = 1 << 6
	StationCampfire  WorkstationType = 1 << 7
)

// DiscoveryType is the mechanism by which a recipe becomes available to a player.
// Only DiscoveryKnown is satisfiable today; the rest are placeholders.
type DiscoveryType int

const (
	DiscoveryKnown DiscoveryType = iota
	DiscoveryTrainer
	DiscoveryScroll
	DiscoveryQuest
)

type craftMatEntry struct {
	name  string
	value CraftMatType
}

type stationEntry struct {
	name  string
	value WorkstationType
}

type discoveryEntry struct {
	name  string
	value DiscoveryType
}

// Table order is significant: lookups return the first prefix match and
// FlagsString renders bits in this order.
var craftMatTable = []craftMatEntry{
	{"none", MatNone},
	{"hide", MatHide},
	{"leather", MatLeather},
	{"fur", MatFur},
	{"scale", MatScale},
	{"meat", MatMeat},
	{"bone", MatBone},
	{"ore", MatOre},
	{"ingot", MatIngot},
	{"cloth", MatCloth},
	{"wood", MatWood},
	{"gem", MatGem},
	{"herb", MatHerb},
	{"stone", MatStone},
}

var stationTable = []stationEntry{
	{"forge", StationForge},
	{"anvil", StationAnvil},
	{"tannery", StationTannery},
	{"loom", StationLoom},
	{"smelter", StationSmelter},
	{"workbench", StationWorkbench},
	{"alchemy", StationAlchemy},
	{"campfire", StationCampfire},
}

var discoveryTable = []discoveryEntry{
	{"known", DiscoveryKnown},
	{"trainer", DiscoveryTrainer},
	{"scroll", DiscoveryScroll},
	{"quest", DiscoveryQuest},
}

// hasPrefixFold reports whether input is a case-insensitive prefix of entry.
func hasPrefixFold(entry, input string) bool {
	return len(input) <= len(entry) && strings.EqualFold(entry[:len(input)], input)
}

func (t CraftMatType) String() string {
	for _, e := range craftMatTable {
		if e.value == t {
			return e.name
		}
	}
	return "none"
}

// ParseCraftMatType resolves a material type name by case-insensitive prefix.
func ParseCraftMatType(name string) (CraftMatType, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MatNone, false
	}
	for _, e := range craftMatTable {
		if hasPrefixFold(e.name, name) {
			return e.value, true
		}
	}
	return MatNone, false
}

// LookupCraftMatType is the lenient form of ParseCraftMatType: unmatched
// input yields MatNone.
func LookupCraftMatType(name string) CraftMatType {
	t, _ := ParseCraftMatType(name)
	return t
}

// CraftMatTypeNames returns every material type name in table order.
func CraftMatTypeNames() []string {
	names := make([]string, 0, len(craftMatTable))
	for _, e := range craftMatTable {
		names = append(names, e.name)
	}
	return names
}

// String returns the name of a single capability bit. Multi-bit values
// should use FlagsString.
func (w WorkstationType) String() string {
	if w == StationNone {
		return "none"
	}
	for _, e := range stationTable {
		if e.value == w {
			return e.name
		}
	}
	return w.FlagsString()
}

// FlagsString renders every set bit's name in table order, or "none".
func (w WorkstationType) FlagsString() string {
	var parts []string
	for _, e := range stationTable {
		if w&e.value != 0 {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Has reports whether every bit of want is set.
func (w WorkstationType) Has(want WorkstationType) bool {
	return w&want == want
}

// ParseWorkstationType resolves a single capability name by prefix.
// "none" is accepted and yields StationNone.
func ParseWorkstationType(name string) (WorkstationType, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return StationNone, false
	}
	for _, e := range stationTable {
		if hasPrefixFold(e.name, name) {
			return e.value, true
		}
	}
	if strings.EqualFold(name, "none") {
		return StationNone, true
	}
	return StationNone, false
}

// LookupWorkstationType returns StationNone for unmatched input.
func LookupWorkstationType(name string) WorkstationType {
	t, _ := ParseWorkstationType(name)
	return t
}

// ParseWorkstationFlags combines several space separated capability names.
// Unknown words are reported through ok=false; known bits are still returned.
func ParseWorkstationFlags(names string) (WorkstationType, bool) {
	var flags WorkstationType
	ok := true
	for _, word := range strings.Fields(names) {
		bit, found := ParseWorkstationType(word)
		if !found {
			ok = false
			continue
		}
		flags |= bit
	}
	return flags, ok
}

// WorkstationTypeNames returns every capability name in table order.
func WorkstationTypeNames() []string {
	names := make([]string, 0, len(stationTable))
	for _, e := range stationTable {
		names = append(names, e.name)
	}
	return names
}

func (d DiscoveryType) String() string {
	for _, e := range discoveryTable {
		if e.value == d {
			return e.name
		}
	}
	return "unknown"
}

// ParseDiscoveryType resolves a discovery name by prefix and reports
// unmatched input explicitly.
func ParseDiscoveryType(name string) (DiscoveryType, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DiscoveryKnown, false
	}
	for _, e := range discoveryTable {
		if hasPrefixFold(e.name, name) {
			return e.value, true
		}
	}
	return DiscoveryKnown, false
}

// LookupDiscoveryType silently falls back to DiscoveryKnown for unmatched
// input. Kept for callers that rely on the lenient behaviour; editors should
// use ParseDiscoveryType.
func LookupDiscoveryType(name string) DiscoveryType {
	d, _ := ParseDiscoveryType(name)
	return d
}

// DiscoveryTypeNames returns every discovery name in table order.
func DiscoveryTypeNames() []string {
	names := make([]string, 0, len(discoveryTable))
	for _, e := range discoveryTable {
		names = append(names, e.name)
	}
	return names
}
