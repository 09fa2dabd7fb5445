package itemdsl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
)

func TestLookupField(t *testing.T) {
	for _, f := range Fields() {
		got, ok := LookupField(f.Name())
		require.True(t, ok, f.Name())
		assert.Equal(t, f, got)
	}

	_, ok := LookupField("colour")
	assert.False(t, ok)
}

func TestField_Tags(t *testing.T) {
	assert.Equal(t, TagDisplayName, FieldDisplayName.Tag())
	assert.Equal(t, TagLocalizedName, FieldLocalizedName.Tag())
	assert.Equal(t, TagLore, FieldLore.Tag())
	assert.Equal(t, TagFlags, FieldFlags.Tag())
	assert.Equal(t, TagCustomModelData, FieldCustomModelData.Tag())
	assert.Equal(t, TagRepairCost, FieldRepairCost.Tag())
	assert.Equal(t, TagDamage, FieldDamage.Tag())
	assert.Equal(t, TagAmount, FieldAmount.Tag())
	assert.Equal(t, TagNone, FieldEnchantments.Tag())
	assert.Equal(t, "repair-cost", TagRepairCost.String())
}

// Assigning a field and calling the matching setter must build the same stack
func TestSet_MatchesSetter(t *testing.T) {
	mod := domain.NewAttributeModifier("speed", 0.1, domain.OperationAddScalar, domain.SlotFeet)
	mods := domain.AttributeModifiers{domain.AttributeMovementSpeed: {mod}}
	profile := domain.NewProfile(uuid.New(), "Alex")
	owner := domain.OfflinePlayer{ID: uuid.New(), Name: "Steve"}
	ownerID := uuid.New()

	meta := domain.NewItemMeta(domain.MetaKindSkull)
	meta.DisplayName = "From meta"
	stack := domain.NewItemStack(domain.MaterialSkeletonSkull, 3)

	tests := []struct {
		field  Field
		value  any
		setter func(*Item)
	}{
		{FieldMaterial, domain.MaterialZombieHead, func(i *Item) { i.Material(domain.MaterialZombieHead) }},
		{FieldItem, stack, func(i *Item) { i.Stack(stack) }},
		{FieldMeta, meta, func(i *Item) { i.Meta(meta) }},
		{FieldDisplayName, "&6Gold", func(i *Item) { i.DisplayName("&6Gold") }},
		{FieldLocalizedName, "head.gold", func(i *Item) { i.LocalizedName("head.gold") }},
		{FieldLore, []string{"one", "two"}, func(i *Item) { i.Lore("one", "two") }},
		{FieldFlags, []domain.ItemFlag{domain.FlagHideDye}, func(i *Item) { i.Flags(domain.FlagHideDye) }},
		{FieldEnchantments, domain.Enchantments{domain.EnchantmentThorns: 2}, func(i *Item) {
			i.Enchantments(domain.Enchantments{domain.EnchantmentThorns: 2})
		}},
		{FieldEnchantments, map[domain.Enchantment]int{domain.EnchantmentThorns: 2}, func(i *Item) {
			i.Enchantments(domain.Enchantments{domain.EnchantmentThorns: 2})
		}},
		{FieldAttributeModifiers, mods, func(i *Item) { i.AttributeModifiers(mods) }},
		{FieldPlayerProfile, profile, func(i *Item) { i.PlayerProfile(profile) }},
		{FieldOwningPlayer, owner, func(i *Item) { i.OwningPlayer(owner) }},
		{FieldSkullOwner, ownerID, func(i *Item) { i.SkullOwnerID(ownerID) }},
		{FieldCustomModelData, 42, func(i *Item) { i.CustomModelData(42) }},
		{FieldUnbreakable, true, func(i *Item) { i.Unbreakable(true) }},
		{FieldRepairCost, 5, func(i *Item) { i.RepairCost(5) }},
		{FieldDamage, 5, func(i *Item) { i.Damage(5) }},
		{FieldAmount, 5, func(i *Item) { i.Amount(5) }},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name(), func(t *testing.T) {
			for _, material := range []domain.Material{domain.MaterialPlayerHead, domain.MaterialDiamondSword} {
				viaField, err := Create(material)
				require.NoError(t, err)
				viaSetter, err := Create(material)
				require.NoError(t, err)

				require.NoError(t, viaField.Set(tt.field, tt.value))
				tt.setter(viaSetter)

				assert.Equal(t, viaSetter.Build(), viaField.Build(), material)
			}
		})
	}
}

func TestSet_TieBreakByTag(t *testing.T) {
	it, err := Create(domain.MaterialIronSword)
	require.NoError(t, err)

	require.NoError(t, it.Set(FieldCustomModelData, 1))
	require.NoError(t, it.Set(FieldRepairCost, 2))
	require.NoError(t, it.Set(FieldDamage, 3))
	require.NoError(t, it.Set(FieldAmount, 4))
	require.NoError(t, it.Set(FieldDisplayName, "display"))
	require.NoError(t, it.Set(FieldLocalizedName, "localized"))

	got := it.Build()
	assert.Equal(t, 1, *got.Meta.CustomModelData)
	assert.Equal(t, 2, got.Meta.RepairCost)
	assert.Equal(t, 3, got.Damage())
	assert.Equal(t, 4, got.Amount)
	assert.Equal(t, "display", got.Meta.DisplayName)
	assert.Equal(t, "localized", got.Meta.LocalizedName)
}

func TestSet_RejectsWrongShape(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value any
	}{
		{"string into int field", FieldAmount, "four"},
		{"int into string field", FieldDisplayName, 4},
		{"flags into lore", FieldLore, []domain.ItemFlag{domain.FlagHideDye}},
		{"strings into flags", FieldFlags, []string{"HIDE_DYE"}},
		{"unsupported type", FieldDamage, 1.5},
		{"nil", FieldMeta, nil},
		{"material name as string", FieldMaterial, "STONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := Create(domain.MaterialStone)
			require.NoError(t, err)

			err = it.Set(tt.field, tt.value)
			assert.ErrorIs(t, err, ErrFieldType)
			assert.Contains(t, err.Error(), tt.field.Name())
		})
	}
}

func TestSet_UnmatchedTag(t *testing.T) {
	it, err := Create(domain.MaterialStone)
	require.NoError(t, err)

	undeclared := Field{name: "mystery", tag: TagNone, shape: shapeInt}
	err = it.Set(undeclared, 3)
	assert.ErrorIs(t, err, ErrUnmatchedField)

	undeclaredList := Field{name: "mystery_list", tag: TagAmount, shape: shapeList}
	err = it.Set(undeclaredList, []string{"x"})
	assert.ErrorIs(t, err, ErrUnmatchedField)

	assert.Equal(t, domain.NewItemStack(domain.MaterialStone, 1), it.Build(), "failed assignment leaves the builder alone")
}

func TestGet_AlwaysUnsupported(t *testing.T) {
	it, err := Create(domain.MaterialStone)
	require.NoError(t, err)

	for _, f := range Fields() {
		_, err := it.Get(f)
		assert.ErrorIs(t, err, domain.ErrUnsupportedOperation, f.Name())
	}

	require.NoError(t, it.Set(FieldAmount, 4))
	v, err := it.Get(FieldAmount)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation, "assigned fields stay write-only")
}

func TestApply(t *testing.T) {
	it, err := Create(domain.MaterialStone)
	require.NoError(t, err)

	err = it.Apply(
		Assignment{FieldAmount, 4},
		Assignment{FieldDisplayName, "Rock"},
	)
	require.NoError(t, err)
	got := it.Build()
	assert.Equal(t, 4, got.Amount)
	assert.Equal(t, "Rock", got.Meta.DisplayName)

	err = it.Apply(
		Assignment{FieldAmount, 8},
		Assignment{FieldDamage, "broken"},
		Assignment{FieldAmount, 16},
	)
	assert.ErrorIs(t, err, ErrFieldType)
	assert.Contains(t, err.Error(), "assignment 1 (damage)")
	assert.Equal(t, 8, it.Build().Amount, "assignments stop at the first failure")
}
