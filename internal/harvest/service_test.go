package harvest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/skillcheck"
	"github.com/osse101/mudcraft/internal/world"
	"github.com/osse101/mudcraft/mocks"
)

type scene struct {
	world  *world.World
	room   *domain.Room
	actor  *domain.Character
	corpse *domain.Object
}

func newScene(t *testing.T) *scene {
	t.Helper()
	w := newCatalog()
	room := &domain.Room{VNUM: 1}
	w.AddRoom(room)

	actor := &domain.Character{
		Name:   "Bob",
		Level:  10,
		Skills: map[string]int{domain.SkillSkinning: 60, domain.SkillButchering: 40},
	}
	w.PlaceCharacter(actor, room)

	knife, _ := w.ObjectPrototype(vnumKnife)
	obj := w.CreateObject(knife, 1)
	w.GiveObject(obj, actor)
	actor.Wielded = obj

	deer := &domain.MobPrototype{VNUM: 7000, Name: "deer", ShortDescr: "a deer", Level: 5, Form: domain.FormEdible | domain.FormMammal}
	corpse := w.MakeCorpse(deer, CorpseMaterials(deer, CorpseDefaults{Hide: vnumHide, Meat: vnumMeat}), room)

	return &scene{world: w, room: room, actor: actor, corpse: corpse}
}

func (s *scene) carried(vnum domain.VNUM) int {
	n := 0
	for _, obj := range s.actor.Carrying {
		if obj.ProtoVNUM == vnum {
			n += obj.Count()
		}
	}
	return n
}

func TestExtract_SkinSuccess(t *testing.T) {
	s := newScene(t)
	roller := mocks.NewMockRoller(t)
	roller.On("NumberPercent").Return(10).Once()
	svc := NewService(s.world, skillcheck.NewChecker(roller), nil)

	out, err := svc.Extract(context.Background(), s.actor, KindSkin, "corpse")
	require.NoError(t, err)
	assert.True(t, out.Success)
	// 60 + 2*(10-5)
	assert.Equal(t, 70, out.Check.Target)
	assert.True(t, s.corpse.HasCorpseFlag(domain.CorpseSkinned))
	assert.Equal(t, 1, s.carried(vnumHide))
	assert.Equal(t, 0, s.carried(vnumMeat))
}

func TestExtract_FailedCheckStillFlagsCorpse(t *testing.T) {
	s := newScene(t)
	roller := mocks.NewMockRoller(t)
	roller.On("NumberPercent").Return(100).Once()
	svc := NewService(s.world, skillcheck.NewChecker(roller), nil)

	out, err := svc.Extract(context.Background(), s.actor, KindSkin, "deer")
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.True(t, s.corpse.HasCorpseFlag(domain.CorpseSkinned))
	assert.Equal(t, 0, s.carried(vnumHide))
	assert.Equal(t, "You try to skin the corpse of a deer but ruin it.", s.world.LastMessage(s.actor))

	_, err = svc.Extract(context.Background(), s.actor, KindSkin, "deer")
	assert.ErrorIs(t, err, domain.ErrAlreadyDone)
}

func TestExtract_ImproverReceivesOutcome(t *testing.T) {
	s := newScene(t)
	roller := mocks.NewMockRoller(t)
	roller.On("NumberPercent").Return(100).Once()
	imp := mocks.NewMockImprover(t)
	imp.On("ImproveSkill", s.actor, domain.SkillSkinning, false, mock.AnythingOfType("int")).Once()

	svc := NewService(s.world, skillcheck.NewChecker(roller), imp)
	_, err := svc.Extract(context.Background(), s.actor, KindSkin, "corpse")
	require.NoError(t, err)
}

func TestExtract_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *scene)
		kind    Kind
		arg     string
		errKind error
		message string
	}{
		{"no argument", func(s *scene) {}, KindSkin, "", domain.ErrInvalidInput, "Skin what?"},
		{"wrong tool", func(s *scene) {}, KindButcher, "corpse", domain.ErrNotEligible, "You need to wield a cleaver to butcher."},
		{"no tool", func(s *scene) { s.actor.Wielded = nil }, KindSkin, "corpse", domain.ErrNotEligible, "You need to wield a knife to skin."},
		{"never learned", func(s *scene) { delete(s.actor.Skills, domain.SkillSkinning) }, KindSkin, "corpse", domain.ErrNotEligible, "You don't know how to skin."},
		{"missing target", func(s *scene) {}, KindSkin, "dragon", domain.ErrNotFound, MsgTargetNotHere},
		{"already skinned", func(s *scene) { s.corpse.SetCorpseFlag(domain.CorpseSkinned) }, KindSkin, "corpse", domain.ErrAlreadyDone, "That corpse has already been skinned."},
		{"nothing to skin", func(s *scene) { s.corpse.CorpseMats = []domain.VNUM{vnumMeat} }, KindSkin, "corpse", domain.ErrNothingToDo, "There is nothing to skin on that corpse."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene(t)
			tt.setup(s)
			// No expectations: a refusal must never roll
			roller := mocks.NewMockRoller(t)
			svc := NewService(s.world, skillcheck.NewChecker(roller), nil)
			flags := s.corpse.CorpseFlags

			out, err := svc.Extract(context.Background(), s.actor, tt.kind, tt.arg)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.errKind)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, flags, s.corpse.CorpseFlags, "refusal leaves the corpse untouched")
		})
	}
}

func TestCorpseMaterials(t *testing.T) {
	defaults := CorpseDefaults{Hide: vnumHide, Meat: vnumMeat}

	tests := []struct {
		name     string
		mob      domain.MobPrototype
		expected []domain.VNUM
	}{
		{"mammal", domain.MobPrototype{Form: domain.FormEdible | domain.FormMammal}, []domain.VNUM{vnumHide, vnumMeat}},
		{"bird", domain.MobPrototype{Form: domain.FormEdible | domain.FormBird}, []domain.VNUM{vnumMeat}},
		{"reptile", domain.MobPrototype{Form: domain.FormEdible | domain.FormReptile}, []domain.VNUM{vnumMeat}},
		{"edible only", domain.MobPrototype{Form: domain.FormEdible}, []domain.VNUM{vnumMeat}},
		{"inedible mammal", domain.MobPrototype{Form: domain.FormMammal}, nil},
		{"undead", domain.MobPrototype{Form: domain.FormUndead}, nil},
		{"explicit overrides", domain.MobPrototype{Form: domain.FormEdible | domain.FormMammal, Materials: []domain.VNUM{vnumScale}}, []domain.VNUM{vnumScale}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CorpseMaterials(&tt.mob, defaults))
		})
	}
}
