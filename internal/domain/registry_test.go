package domain

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		input string
		want  Material
	}{
		{"STONE", MaterialStone},
		{"stone", MaterialStone},
		{" diamond sword ", MaterialDiamondSword},
		{"player-head", MaterialPlayerHead},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMaterial(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMaterial("bedrock sword")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestMaterial_Properties(t *testing.T) {
	assert.True(t, MaterialAir.IsAir())
	assert.Equal(t, 64, MaterialStone.MaxStackSize())
	assert.Equal(t, 16, MaterialEnderPearl.MaxStackSize())
	assert.Equal(t, 1561, MaterialDiamondSword.MaxDurability())
	assert.Zero(t, MaterialStone.MaxDurability())
	assert.Equal(t, "Diamond Sword", MaterialDiamondSword.Title())
	assert.False(t, Material("NOPE").Valid())

	all := Materials()
	assert.Contains(t, all, MaterialTotemOfUndying)
	assert.True(t, slices.IsSorted(all))
}

func TestItemFlags(t *testing.T) {
	set := FlagSet(FlagHideDye, FlagHideEnchants)
	assert.True(t, set.Has(FlagHideDye))
	assert.False(t, set.Has(FlagHideAttributes))
	assert.Equal(t, []ItemFlag{FlagHideEnchants, FlagHideDye}, set.List())
	assert.Equal(t, 1, set.Without(FlagHideDye).Len())
	assert.Equal(t, set, set.With(FlagHideDye), "adding twice is a no-op")

	f, err := ParseItemFlag("hide_enchants")
	require.NoError(t, err)
	assert.Equal(t, FlagHideEnchants, f)

	_, err = ParseItemFlag("HIDE_EVERYTHING")
	assert.ErrorIs(t, err, ErrUnknownFlag)
}

func TestItemFlags_JSON(t *testing.T) {
	data, err := json.Marshal(FlagSet(FlagHideDye, FlagHideEnchants))
	require.NoError(t, err)
	assert.JSONEq(t, `["HIDE_ENCHANTS","HIDE_DYE"]`, string(data))

	var got ItemFlags
	require.NoError(t, json.Unmarshal([]byte(`["hide_dye"]`), &got))
	assert.Equal(t, FlagSet(FlagHideDye), got)

	assert.ErrorIs(t, json.Unmarshal([]byte(`["HIDE_NOTHING"]`), &got), ErrUnknownFlag)

	data, err = json.Marshal(ItemFlags(0))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestParseEnchantment(t *testing.T) {
	e, err := ParseEnchantment("sharpness")
	require.NoError(t, err)
	assert.Equal(t, EnchantmentSharpness, e)
	assert.Equal(t, 5, e.MaxLevel())

	_, err = ParseEnchantment("WISDOM")
	assert.ErrorIs(t, err, ErrUnknownEnchantment)

	var nilMap Enchantments
	assert.Nil(t, nilMap.Clone())
}

func TestParseAttributeValues(t *testing.T) {
	a, err := ParseAttribute("attack_damage")
	require.NoError(t, err)
	assert.Equal(t, AttributeAttackDamage, a)

	a, err = ParseAttribute("GENERIC_ARMOR")
	require.NoError(t, err)
	assert.Equal(t, AttributeArmor, a)

	_, err = ParseAttribute("MANA")
	assert.ErrorIs(t, err, ErrUnknownAttribute)

	op, err := ParseOperation("")
	require.NoError(t, err)
	assert.Equal(t, OperationAddNumber, op)

	_, err = ParseOperation("DIVIDE")
	assert.ErrorIs(t, err, ErrUnknownOperation)

	slot, err := ParseEquipmentSlot("off_hand")
	require.NoError(t, err)
	assert.Equal(t, SlotOffHand, slot)

	_, err = ParseEquipmentSlot("TAIL")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestAttributeModifiers_Multimap(t *testing.T) {
	a := NewAttributeModifier("a", 1, OperationAddNumber, SlotAny)
	b := NewAttributeModifier("b", 2, OperationAddNumber, SlotAny)
	assert.NotEqual(t, a.ID, b.ID)

	var mods AttributeModifiers
	mods.Put(AttributeArmor)
	assert.Nil(t, mods, "empty put does not allocate")

	mods.Put(AttributeArmor, a)
	mods.PutAll(AttributeModifiers{AttributeArmor: {b}, AttributeLuck: {a}})

	assert.Equal(t, []AttributeModifier{a, b}, mods.Get(AttributeArmor))
	assert.Equal(t, 3, mods.Len())

	assert.Nil(t, AttributeModifiers{AttributeArmor: nil}.Clone())
}

func TestPlayerProfile(t *testing.T) {
	assert.False(t, PlayerProfile{Name: "Steve"}.HasID())
	assert.False(t, PlayerProfile{Name: "Steve"}.Complete())

	p := OfflinePlayer{Name: "Steve"}
	assert.Equal(t, PlayerProfile{Name: "Steve"}, p.Profile())
}
