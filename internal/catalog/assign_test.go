package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/itemdsl"
	"github.com/osse101/itemforge/internal/player"
)

func fieldsOf(assigns []itemdsl.Assignment) []itemdsl.Field {
	out := make([]itemdsl.Field, len(assigns))
	for i, a := range assigns {
		out[i] = a.Field
	}
	return out
}

func TestAssignments_Order(t *testing.T) {
	id := uuid.New()
	def := item.Def{
		Name:               "everything",
		Material:           "PLAYER_HEAD",
		Amount:             ptr(2),
		DisplayName:        ptr("d"),
		LocalizedName:      ptr("l"),
		Lore:               []string{"x"},
		Flags:              []string{"HIDE_DYE"},
		Enchantments:       map[string]int{"MENDING": 1},
		AttributeModifiers: []item.ModifierDef{{Attribute: "ARMOR", Amount: 1}},
		CustomModelData:    ptr(3),
		Unbreakable:        ptr(true),
		RepairCost:         ptr(4),
		Damage:             ptr(5),
		SkullOwner:         id.String(),
		SkullOwnerName:     "Steve",
	}

	assigns, err := assignments(&def, player.NewOfflineDirectory(), true)
	require.NoError(t, err)

	assert.Equal(t, []itemdsl.Field{
		itemdsl.FieldMaterial,
		itemdsl.FieldAmount,
		itemdsl.FieldDisplayName,
		itemdsl.FieldLocalizedName,
		itemdsl.FieldLore,
		itemdsl.FieldFlags,
		itemdsl.FieldEnchantments,
		itemdsl.FieldAttributeModifiers,
		itemdsl.FieldCustomModelData,
		itemdsl.FieldUnbreakable,
		itemdsl.FieldRepairCost,
		itemdsl.FieldDamage,
		itemdsl.FieldSkullOwner,
		itemdsl.FieldOwningPlayer,
	}, fieldsOf(assigns))

	assert.Equal(t, id, assigns[12].Value)
	assert.Equal(t, player.NewOfflineDirectory().ByName("Steve"), assigns[13].Value)
}

func TestAssignments_UnsetFieldsAreSkipped(t *testing.T) {
	def := item.Def{Name: "bare", Material: "STONE"}

	assigns, err := assignments(&def, player.NewOfflineDirectory(), false)
	require.NoError(t, err)
	assert.Empty(t, assigns)
}

func TestAssignments_AllFlagsWins(t *testing.T) {
	def := item.Def{Name: "f", Material: "STONE", Flags: []string{"HIDE_DYE"}, AllFlags: true}

	assigns, err := assignments(&def, player.NewOfflineDirectory(), false)
	require.NoError(t, err)
	require.Len(t, assigns, 1)
	assert.Equal(t, domain.AllItemFlags(), assigns[0].Value)
}

func TestAssignments_BadValues(t *testing.T) {
	dir := player.NewOfflineDirectory()
	tests := []struct {
		name string
		def  item.Def
		want error
	}{
		{"material", item.Def{Material: "UNOBTAINIUM"}, domain.ErrUnknownMaterial},
		{"flag", item.Def{Flags: []string{"HIDE_NOTHING"}}, domain.ErrUnknownFlag},
		{"enchantment", item.Def{Enchantments: map[string]int{"WISDOM": 1}}, domain.ErrUnknownEnchantment},
		{"attribute", item.Def{AttributeModifiers: []item.ModifierDef{{Attribute: "MANA"}}}, domain.ErrUnknownAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := assignments(&tt.def, dir, true)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := assignments(&item.Def{SkullOwner: "not-a-uuid"}, dir, false)
	assert.Error(t, err)
}
