package itemdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
)

func TestCreateItem_Rock(t *testing.T) {
	got, err := CreateItem(domain.MaterialStone, func(it *Item) {
		require.NoError(t, it.Set(FieldAmount, 4))
		require.NoError(t, it.Set(FieldDisplayName, "Rock"))
	})
	require.NoError(t, err)

	want := domain.NewItemStack(domain.MaterialStone, 4)
	want.Meta.DisplayName = "Rock"
	assert.Equal(t, want, got)
}

func TestCopyItem_Enchant(t *testing.T) {
	sword := diamondSword()
	original := sword.Clone()

	got, err := CopyItem(sword, func(it *Item) {
		it.Enchantment(domain.EnchantmentSharpness, 3)
	})
	require.NoError(t, err)

	want := original.Clone()
	want.Meta.Enchants = domain.Enchantments{domain.EnchantmentSharpness: 3}
	assert.Equal(t, want, got)

	assert.Empty(t, sword.Enchantments())
	assert.Equal(t, original, sword)
}

func TestCopyItem_NoEdits(t *testing.T) {
	stone := domain.NewItemStack(domain.MaterialStone, 3)
	stone.Meta.DisplayName = "R&D"
	stone.Meta.Lore = []string{"Fish &a Chips"}

	got, err := CopyItem(stone, nil)
	require.NoError(t, err)

	assert.Equal(t, stone, got)
	assert.NotSame(t, stone, got)
}

func TestMutateItem_Damage(t *testing.T) {
	sword := diamondSword()

	got, err := MutateItem(sword, func(it *Item) {
		require.NoError(t, it.Set(FieldDamage, 10))
	})
	require.NoError(t, err)

	assert.Equal(t, 10, sword.Damage())
	assert.Same(t, sword, got)
}

func TestFreeFunctions_Errors(t *testing.T) {
	_, err := CreateItem("", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = CopyItem(nil, func(*Item) { t.Fatal("block must not run") })
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = MutateItem(nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCreateItem_NilBlock(t *testing.T) {
	got, err := CreateItem(domain.MaterialDirt, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.NewItemStack(domain.MaterialDirt, 1), got)
}
