// Package matlist provides add, remove and listing operations on material
// vnum lists attached to prototypes (salvage yields, corpse materials).
package matlist

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/mudcraft/internal/domain"
)

// DefaultLimit caps listings when the caller does not choose a limit
const DefaultLimit = 50

// Messages
const (
	MsgNoSuchObjectFmt = "No object with vnum %d exists."
	MsgNotMaterialFmt  = "%s is not a crafting material."
	MsgDuplicateFmt    = "%s is already in the list."
	MsgBadArgumentFmt  = "'%s' is not an index or vnum."
	MsgNotInListFmt    = "Vnum %d is not in the list."
	MsgEmpty           = "No materials."
	MsgMoreFmt         = "... and %d more."
)

// Add appends vnum to list after checking it names a material prototype not
// already present.
func Add(catalog domain.Catalog, list *[]domain.VNUM, vnum domain.VNUM) error {
	proto, ok := catalog.ObjectPrototype(vnum)
	if !ok {
		return domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNoSuchObjectFmt, vnum))
	}
	if proto.Type != domain.ItemMaterial {
		return domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgNotMaterialFmt, proto.ShortDescr))
	}
	if slices.Contains(*list, vnum) {
		return domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgDuplicateFmt, proto.ShortDescr))
	}
	*list = append(*list, vnum)
	return nil
}

// Remove deletes one entry and returns its vnum. A number between 1 and the
// list length is a 1-based index; anything else is a literal vnum. The list
// becomes nil once emptied.
func Remove(list *[]domain.VNUM, arg string) (domain.VNUM, error) {
	arg = strings.TrimSpace(arg)
	n, err := strconv.Atoi(arg)
	if err != nil {
		return domain.VNUMNone, domain.Refuse(domain.ErrInvalidInput, fmt.Sprintf(MsgBadArgumentFmt, arg))
	}

	var idx int
	if n >= 1 && n <= len(*list) {
		idx = n - 1
	} else {
		idx = slices.Index(*list, domain.VNUM(n))
	}
	if idx < 0 {
		return domain.VNUMNone, domain.Refuse(domain.ErrNotFound, fmt.Sprintf(MsgNotInListFmt, n))
	}

	removed := (*list)[idx]
	*list = slices.Delete(*list, idx, idx+1)
	if len(*list) == 0 {
		*list = nil
	}
	return removed, nil
}

// Show renders list, one numbered line per entry, keeping only entries of
// the filter type (MatNone keeps all) and at most limit lines.
func Show(catalog domain.Catalog, list []domain.VNUM, filter domain.CraftMatType, limit int) string {
	var lines []string
	for i, vnum := range list {
		proto, ok := catalog.ObjectPrototype(vnum)
		if filter != domain.MatNone && (!ok || proto.MatType != filter) {
			continue
		}
		if !ok {
			lines = append(lines, fmt.Sprintf("%2d) [%5d] (missing prototype)", i+1, vnum))
			continue
		}
		lines = append(lines, fmt.Sprintf("%2d) [%5d] %s (%s)", i+1, vnum, proto.ShortDescr, proto.MatType))
	}
	return render(lines, limit)
}

// List renders every material prototype in the world, filtered and capped
// like Show.
func List(lister domain.PrototypeLister, filter domain.CraftMatType, limit int) string {
	var lines []string
	for _, proto := range lister.ObjectPrototypes() {
		if proto.Type != domain.ItemMaterial {
			continue
		}
		if filter != domain.MatNone && proto.MatType != filter {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%5d] %-30s %s", proto.VNUM, proto.ShortDescr, proto.MatType))
	}
	return render(lines, limit)
}

func render(lines []string, limit int) string {
	if len(lines) == 0 {
		return MsgEmpty
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	var b strings.Builder
	for i, line := range lines {
		if i == limit {
			fmt.Fprintf(&b, MsgMoreFmt, len(lines)-limit)
			return b.String()
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
