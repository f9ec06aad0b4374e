package matlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/world"
)

func newWorld() *world.World {
	w := world.New()
	w.AddObjectPrototype(&domain.ObjectPrototype{VNUM: 3100, ShortDescr: "a raw hide", Type: domain.ItemMaterial, MatType: domain.MatHide})
	w.AddObjectPrototype(&domain.ObjectPrototype{VNUM: 3101, ShortDescr: "a slab of meat", Type: domain.ItemMaterial, MatType: domain.MatMeat})
	w.AddObjectPrototype(&domain.ObjectPrototype{VNUM: 3111, ShortDescr: "an iron ingot", Type: domain.ItemMaterial, MatType: domain.MatIngot})
	w.AddObjectPrototype(&domain.ObjectPrototype{VNUM: 4000, ShortDescr: "an iron sword", Type: domain.ItemWeapon})
	return w
}

func TestAdd(t *testing.T) {
	w := newWorld()
	var list []domain.VNUM

	require.NoError(t, Add(w, &list, 3100))
	require.NoError(t, Add(w, &list, 3101))
	assert.Equal(t, []domain.VNUM{3100, 3101}, list)

	err := Add(w, &list, 3100)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "a raw hide is already in the list.", err.Error())

	err = Add(w, &list, 4000)
	assert.ErrorIs(t, err, domain.ErrNotEligible)

	err = Add(w, &list, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, list, 2, "failed adds leave the list alone")
}

func TestRemove_IndexOrVNUM(t *testing.T) {
	list := []domain.VNUM{3100, 3101, 3111}

	v, err := Remove(&list, "2")
	require.NoError(t, err)
	assert.Equal(t, domain.VNUM(3101), v)
	assert.Equal(t, []domain.VNUM{3100, 3111}, list)

	v, err = Remove(&list, "3111")
	require.NoError(t, err)
	assert.Equal(t, domain.VNUM(3111), v)
	assert.Equal(t, []domain.VNUM{3100}, list)

	_, err = Remove(&list, "77")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = Remove(&list, "hide")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Remove(&list, "1")
	require.NoError(t, err)
	assert.Nil(t, list, "emptied list is released")
}

func TestShow(t *testing.T) {
	w := newWorld()
	list := []domain.VNUM{3100, 3101, 3111, 8888}

	out := Show(w, list, domain.MatNone, 0)
	assert.Equal(t, 4, len(strings.Split(out, "\n")))
	assert.Contains(t, out, " 1) [ 3100] a raw hide (hide)")
	assert.Contains(t, out, "(missing prototype)")

	out = Show(w, list, domain.MatMeat, 0)
	assert.Equal(t, " 2) [ 3101] a slab of meat (meat)", out)

	out = Show(w, list, domain.MatNone, 2)
	assert.True(t, strings.HasSuffix(out, "... and 2 more."), out)

	assert.Equal(t, MsgEmpty, Show(w, nil, domain.MatNone, 0))
}

func TestList(t *testing.T) {
	w := newWorld()

	out := List(w, domain.MatNone, 0)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3, "only material prototypes are listed")
	assert.True(t, strings.HasPrefix(lines[0], "[ 3100]"))
	assert.NotContains(t, out, "sword")

	out = List(w, domain.MatIngot, 0)
	assert.Contains(t, out, "an iron ingot")
	assert.NotContains(t, out, "hide")

	assert.Equal(t, MsgEmpty, List(w, domain.MatGem, 0))
}
