package crafting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/mudcraft/internal/domain"
)

func TestHasRequiredWorkstation_MultiCapability(t *testing.T) {
	f := newFixture(t)
	forge := f.place(t, vnumForge)

	tests := []struct {
		name    string
		station domain.WorkstationType
		want    bool
	}{
		{"forge alone", domain.StationForge, true},
		{"smelter alone", domain.StationSmelter, true},
		{"both", domain.StationForge | domain.StationSmelter, true},
		{"tannery", domain.StationTannery, false},
		{"forge and tannery", domain.StationForge | domain.StationTannery, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewRecipe(1)
			r.StationType = tt.station
			obj, ok := HasRequiredWorkstation(f.room, r)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Same(t, forge, obj)
			} else {
				assert.Nil(t, obj)
			}
		})
	}
}

func TestHasRequiredWorkstation_VNUMTakesPrecedence(t *testing.T) {
	f := newFixture(t)
	f.place(t, vnumForge)

	r := domain.NewRecipe(1)
	r.StationType = domain.StationForge
	r.StationVNUM = vnumTanningRack

	_, ok := HasRequiredWorkstation(f.room, r)
	assert.False(t, ok, "a forge does not satisfy a specific tanning rack")

	rack := f.place(t, vnumTanningRack)
	obj, ok := HasRequiredWorkstation(f.room, r)
	assert.True(t, ok)
	assert.Same(t, rack, obj)
}

func TestHasRequiredWorkstation_NoRequirement(t *testing.T) {
	obj, ok := HasRequiredWorkstation(nil, domain.NewRecipe(1))
	assert.True(t, ok)
	assert.Nil(t, obj)
}

func TestFindWorkstation_IgnoresNonWorkstations(t *testing.T) {
	room := &domain.Room{Contents: []*domain.Object{
		{Type: domain.ItemTrash, StationFlags: domain.StationForge, ProtoVNUM: vnumForge},
	}}
	assert.Nil(t, FindWorkstation(room, domain.StationForge))
	assert.Nil(t, FindWorkstationByVNUM(room, vnumForge))
}
