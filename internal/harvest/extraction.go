// Package harvest implements skinning and butchering of corpses.
package harvest

import (
	"fmt"
	"slices"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/utils"
)

// Kind is an extraction verb
type Kind int

const (
	KindSkin Kind = iota
	KindButcher
)

type kindSpec struct {
	verb   string // "skin"
	past   string // "skinned"
	third  string // "skins"
	skill  string
	tool   domain.ToolType
	flag   domain.CorpseFlags
	filter []domain.CraftMatType
}

var kinds = map[Kind]kindSpec{
	KindSkin: {
		verb:   "skin",
		past:   "skinned",
		third:  "skins",
		skill:  domain.SkillSkinning,
		tool:   domain.ToolKnife,
		flag:   domain.CorpseSkinned,
		filter: []domain.CraftMatType{domain.MatHide, domain.MatLeather, domain.MatFur, domain.MatScale},
	},
	KindButcher: {
		verb:   "butcher",
		past:   "butchered",
		third:  "butchers",
		skill:  domain.SkillButchering,
		tool:   domain.ToolCleaver,
		flag:   domain.CorpseButchered,
		filter: []domain.CraftMatType{domain.MatMeat, domain.MatBone},
	},
}

func (k Kind) String() string {
	return kinds[k].verb
}

// Skill returns the skill the verb trains
func (k Kind) Skill() string {
	return kinds[k].skill
}

// Tool returns the tool the verb requires wielded
func (k Kind) Tool() domain.ToolType {
	return kinds[k].tool
}

// Accepts reports whether a material type is extracted by the verb
func (k Kind) Accepts(mat domain.CraftMatType) bool {
	return slices.Contains(kinds[k].filter, mat)
}

// Result is the transient outcome of evaluating an extraction
type Result struct {
	Kind      Kind
	Corpse    *domain.Object
	Materials []domain.VNUM
}

// Evaluate validates an extraction without side effects and collects every
// corpse material the verb accepts.
func Evaluate(catalog domain.Catalog, corpse *domain.Object, kind Kind) (*Result, error) {
	spec := kinds[kind]
	if corpse == nil {
		return nil, domain.Refuse(domain.ErrNotFound, MsgTargetNotHere)
	}
	if !corpse.Type.IsCorpse() {
		return nil, domain.Refuse(domain.ErrNotEligible, fmt.Sprintf(MsgNotCorpseFmt, spec.verb))
	}
	if corpse.HasCorpseFlag(spec.flag) {
		return nil, domain.Refuse(domain.ErrAlreadyDone, fmt.Sprintf(MsgAlreadyDoneFmt, spec.past))
	}

	var collected []domain.VNUM
	for _, vnum := range corpse.CorpseMats {
		proto, ok := catalog.ObjectPrototype(vnum)
		if ok && kind.Accepts(proto.MatType) {
			collected = append(collected, vnum)
		}
	}
	if len(collected) == 0 {
		return nil, domain.Refuse(domain.ErrNothingToDo, fmt.Sprintf(MsgNothingToFmt, spec.verb))
	}
	return &Result{Kind: kind, Corpse: corpse, Materials: collected}, nil
}

// EvaluateSkin is Evaluate for the skin verb
func EvaluateSkin(catalog domain.Catalog, corpse *domain.Object) (*Result, error) {
	return Evaluate(catalog, corpse, KindSkin)
}

// EvaluateButcher is Evaluate for the butcher verb
func EvaluateButcher(catalog domain.Catalog, corpse *domain.Object) (*Result, error) {
	return Evaluate(catalog, corpse, KindButcher)
}

// World is the slice of the game world extraction touches
type World interface {
	domain.Catalog
	domain.ObjectFactory
	domain.Messenger
}

// Apply performs a successful extraction: flags the corpse, gives the actor
// one unit per collected material and announces it.
func Apply(w World, ch *domain.Character, res *Result) {
	spec := kinds[res.Kind]
	res.Corpse.SetCorpseFlag(spec.flag)

	names := make([]string, 0, len(res.Materials))
	for _, vnum := range res.Materials {
		proto, ok := w.ObjectPrototype(vnum)
		if !ok {
			continue
		}
		obj := w.CreateObject(proto, res.Corpse.Level)
		names = append(names, obj.ShortDescr)
		w.GiveObject(obj, ch)
	}

	w.Send(ch, fmt.Sprintf(MsgSuccessFmt, spec.verb, res.Corpse.ShortDescr, utils.JoinList(names)))
	w.ActRoom(ch, utils.Capitalize(fmt.Sprintf(MsgRoomFmt, ch.Name, spec.third, res.Corpse.ShortDescr)))
}
