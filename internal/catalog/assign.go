package catalog

import (
	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/itemdsl"
	"github.com/osse101/itemforge/internal/player"
)

// assignments converts a definition into facade field assignments, in the
// order they are applied. Unset definition fields produce no assignment.
// The material is assigned only when withMaterial is set; in create mode it
// is the construction argument instead.
func assignments(def *item.Def, dir player.Directory, withMaterial bool) ([]itemdsl.Assignment, error) {
	var out []itemdsl.Assignment
	add := func(f itemdsl.Field, v any) {
		out = append(out, itemdsl.Assignment{Field: f, Value: v})
	}

	if withMaterial && def.Material != "" {
		m, err := domain.ParseMaterial(def.Material)
		if err != nil {
			return nil, err
		}
		add(itemdsl.FieldMaterial, m)
	}

	if def.Amount != nil {
		add(itemdsl.FieldAmount, *def.Amount)
	}
	if def.DisplayName != nil {
		add(itemdsl.FieldDisplayName, *def.DisplayName)
	}
	if def.LocalizedName != nil {
		add(itemdsl.FieldLocalizedName, *def.LocalizedName)
	}
	if def.Lore != nil {
		add(itemdsl.FieldLore, def.Lore)
	}

	switch {
	case def.AllFlags:
		add(itemdsl.FieldFlags, domain.AllItemFlags())
	case def.Flags != nil:
		flags := make([]domain.ItemFlag, 0, len(def.Flags))
		for _, name := range def.Flags {
			f, err := domain.ParseItemFlag(name)
			if err != nil {
				return nil, err
			}
			flags = append(flags, f)
		}
		add(itemdsl.FieldFlags, flags)
	}

	if def.Enchantments != nil {
		enchants := make(domain.Enchantments, len(def.Enchantments))
		for name, level := range def.Enchantments {
			e, err := domain.ParseEnchantment(name)
			if err != nil {
				return nil, err
			}
			enchants[e] = level
		}
		add(itemdsl.FieldEnchantments, enchants)
	}

	if def.AttributeModifiers != nil {
		var mods domain.AttributeModifiers
		for _, md := range def.AttributeModifiers {
			attr, mod, err := md.Modifier()
			if err != nil {
				return nil, err
			}
			mods.Put(attr, mod)
		}
		add(itemdsl.FieldAttributeModifiers, mods)
	}

	if def.CustomModelData != nil {
		add(itemdsl.FieldCustomModelData, *def.CustomModelData)
	}
	if def.Unbreakable != nil {
		add(itemdsl.FieldUnbreakable, *def.Unbreakable)
	}
	if def.RepairCost != nil {
		add(itemdsl.FieldRepairCost, *def.RepairCost)
	}
	if def.Damage != nil {
		add(itemdsl.FieldDamage, *def.Damage)
	}

	if def.SkullOwner != "" {
		id, err := uuid.Parse(def.SkullOwner)
		if err != nil {
			return nil, err
		}
		add(itemdsl.FieldSkullOwner, id)
	}
	if def.SkullOwnerName != "" {
		add(itemdsl.FieldOwningPlayer, dir.ByName(def.SkullOwnerName))
	}

	return out, nil
}
