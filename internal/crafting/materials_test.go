package crafting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/mudcraft/internal/domain"
)

func TestCountMaterial_StacksAndDiscrete(t *testing.T) {
	f := newFixture(t)
	f.give(t, vnumIronIngot, 5)
	f.give(t, vnumHilt, 2)

	assert.Equal(t, 5, CountMaterial(f.actor, vnumIronIngot))
	assert.Equal(t, 2, CountMaterial(f.actor, vnumHilt))
	assert.Equal(t, 0, CountMaterial(f.actor, vnumBronzeIngot))
}

func TestConsumeMaterials_DecrementsStackBeforeRemoving(t *testing.T) {
	f := newFixture(t)
	f.give(t, vnumIronIngot, 5)
	f.give(t, vnumHilt, 3)
	svc := f.service(&fixedRoller{percent: 1})

	r, _ := f.store.Get(100)
	require.NoError(t, svc.ConsumeMaterials(context.Background(), f.actor, r))

	assert.Equal(t, 2, CountMaterial(f.actor, vnumIronIngot))
	assert.Equal(t, 2, CountMaterial(f.actor, vnumHilt))
	// The ingot stack shrank in place rather than being replaced
	assert.Len(t, f.actor.Carrying, 3)
}

func TestConsumeMaterials_SpansSeveralStacks(t *testing.T) {
	f := newFixture(t)
	f.give(t, vnumIronIngot, 2)
	f.give(t, vnumIronIngot, 5)
	f.give(t, vnumHilt, 1)
	svc := f.service(&fixedRoller{percent: 1})

	r, _ := f.store.Get(100)
	require.NoError(t, svc.ConsumeMaterials(context.Background(), f.actor, r))

	assert.Equal(t, 4, CountMaterial(f.actor, vnumIronIngot), "exactly 3 of 7 removed")
	assert.Equal(t, 0, CountMaterial(f.actor, vnumHilt))
	assert.Len(t, f.actor.Carrying, 1)
}

func TestConsumeMaterials_MergedIngredients(t *testing.T) {
	f := newFixture(t)
	f.give(t, vnumTannedLeather, 4)
	svc := f.service(&fixedRoller{percent: 1})

	r := domain.NewRecipe(500)
	r.Ingredients = []domain.Ingredient{{VNUM: vnumTannedLeather, Quantity: 1}, {VNUM: vnumTannedLeather, Quantity: 2}}

	require.NoError(t, svc.ConsumeMaterials(context.Background(), f.actor, r))
	assert.Equal(t, 1, CountMaterial(f.actor, vnumTannedLeather))
}

func TestConsumeMaterials_InsufficientLeavesInventory(t *testing.T) {
	f := newFixture(t)
	f.give(t, vnumIronIngot, 5)
	svc := f.service(&fixedRoller{percent: 1})

	r, _ := f.store.Get(100)
	err := svc.ConsumeMaterials(context.Background(), f.actor, r)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
	assert.Equal(t, 5, CountMaterial(f.actor, vnumIronIngot))
}
