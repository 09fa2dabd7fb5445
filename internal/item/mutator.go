package item

import (
	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/text"
)

// mutator edits a stack and its meta directly. Changes are visible on the
// stack as soon as each setter returns; Build hands back the same stack.
type mutator struct {
	opts options
	item *domain.ItemStack
}

var _ Builder = (*mutator)(nil)

func newMutator(stack *domain.ItemStack, opts options) *mutator {
	return &mutator{opts: opts, item: stack}
}

// meta returns the live meta, nil for stacks that carry none
func (m *mutator) meta() *domain.ItemMeta {
	return m.item.Meta
}

func (m *mutator) Meta(meta *domain.ItemMeta) Builder {
	m.item.SetItemMeta(meta)
	return m
}

// Stack switches to editing stack, carrying the current meta over to it
func (m *mutator) Stack(stack *domain.ItemStack) Builder {
	if stack == nil {
		return m
	}
	old := m.item
	m.item = stack
	return m.Meta(old.ItemMeta())
}

func (m *mutator) Material(material domain.Material) Builder {
	m.item.SetType(material)
	return m
}

func (m *mutator) DisplayName(name string) Builder {
	if meta := m.meta(); meta != nil {
		meta.DisplayName = text.Colorize(text.Reset + name)
	}
	return m
}

func (m *mutator) LocalizedName(name string) Builder {
	if meta := m.meta(); meta != nil {
		meta.LocalizedName = name
	}
	return m
}

func (m *mutator) Lore(lines ...string) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetLore(text.ColorizeAll(text.ResetEach(lines)))
	}
	return m
}

func (m *mutator) AddLore(lines ...string) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetLore(append(meta.Lore, text.ColorizeAll(text.ResetEach(lines))...))
	}
	return m
}

func (m *mutator) AllFlags() Builder {
	if meta := m.meta(); meta != nil {
		meta.AddItemFlags(domain.AllItemFlags()...)
	}
	return m
}

// Flags replaces every flag on the meta
func (m *mutator) Flags(flags ...domain.ItemFlag) Builder {
	if meta := m.meta(); meta != nil {
		meta.RemoveItemFlags(domain.AllItemFlags()...)
		meta.AddItemFlags(flags...)
	}
	return m
}

func (m *mutator) Flag(flag domain.ItemFlag) Builder {
	if meta := m.meta(); meta != nil {
		meta.AddItemFlags(flag)
	}
	return m
}

// Enchantments adds to the stack's existing enchantments
func (m *mutator) Enchantments(enchants domain.Enchantments) Builder {
	m.item.AddUnsafeEnchantments(enchants)
	return m
}

func (m *mutator) Enchantment(enchant domain.Enchantment, level int) Builder {
	m.item.AddUnsafeEnchantment(enchant, level)
	return m
}

func (m *mutator) AttributeModifiers(mods domain.AttributeModifiers) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetAttributeModifiers(mods)
	}
	return m
}

func (m *mutator) AddAttributeModifiers(attr domain.Attribute, mods ...domain.AttributeModifier) Builder {
	if meta := m.meta(); meta != nil {
		meta.AddAttributeModifier(attr, mods...)
	}
	return m
}

func (m *mutator) AttributeModifier(attr domain.Attribute, mod domain.AttributeModifier) Builder {
	return m.AddAttributeModifiers(attr, mod)
}

func (m *mutator) CustomModelData(data int) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetCustomModelData(&data)
	}
	return m
}

func (m *mutator) Unbreakable(unbreakable bool) Builder {
	if meta := m.meta(); meta != nil {
		meta.Unbreakable = unbreakable
	}
	return m
}

func (m *mutator) RepairCost(cost int) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetRepairCost(cost)
	}
	return m
}

func (m *mutator) SkullProfile(profile domain.PlayerProfile) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetOwner(&profile)
	}
	return m
}

func (m *mutator) SkullOwner(owner domain.OfflinePlayer) Builder {
	return m.SkullProfile(owner.Profile())
}

func (m *mutator) SkullOwnerID(id uuid.UUID) Builder {
	return m.SkullOwner(m.opts.directory.ByID(id))
}

func (m *mutator) SkullOwnerName(name string) Builder {
	return m.SkullProfile(domain.PlayerProfile{Name: name})
}

func (m *mutator) Damage(damage int) Builder {
	if meta := m.meta(); meta != nil {
		meta.SetDamage(damage)
	}
	return m
}

func (m *mutator) Amount(amount int) Builder {
	m.item.Amount = amount
	return m
}

func (m *mutator) EditMeta(fn func(meta *domain.ItemMeta)) Builder {
	m.item.EditMeta(fn)
	return m
}

func (m *mutator) Build() *domain.ItemStack {
	return m.item
}
