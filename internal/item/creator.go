package item

import (
	"slices"

	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/text"
)

// creator holds every value separately and assembles a new stack on Build.
// It backs both Create and Copy.
type creator struct {
	opts options

	material        domain.Material
	amount          int
	damage          int
	displayName     string
	localizedName   string
	lore            []string
	flags           domain.ItemFlags
	enchantments    domain.Enchantments
	modifiers       domain.AttributeModifiers
	profile         *domain.PlayerProfile
	customModelData *int
	unbreakable     bool
	repairCost      int
}

var _ Builder = (*creator)(nil)

func newCreator(material domain.Material, opts options) *creator {
	return &creator{
		opts:     opts,
		material: material,
		amount:   1,
	}
}

// Meta copies every value present on meta. Flags and unbreakable are always copied.
// Text is taken as already rendered and is not colourised again.
func (c *creator) Meta(meta *domain.ItemMeta) Builder {
	if meta == nil {
		return c
	}

	if meta.HasDisplayName() {
		c.displayName = meta.DisplayName
	}
	if meta.HasLocalizedName() {
		c.localizedName = meta.LocalizedName
	}
	if meta.HasLore() {
		c.lore = slices.Clone(meta.Lore)
	}
	c.flags = meta.Flags
	if meta.HasEnchants() {
		c.enchantments = meta.Enchants.Clone()
	}
	if meta.HasAttributeModifiers() {
		c.modifiers = meta.AttributeModifiers.Clone()
	}
	if meta.HasCustomModelData() {
		c.CustomModelData(*meta.CustomModelData)
	}
	c.unbreakable = meta.Unbreakable

	if meta.IsRepairable() && meta.HasRepairCost() {
		c.repairCost = meta.RepairCost
	}
	if meta.IsDamageable() {
		c.damage = meta.Damage
	}
	if meta.IsSkull() && meta.HasOwner() {
		c.SkullProfile(*meta.Owner)
	}
	return c
}

// Stack re-seeds material, amount and meta from stack; nil is a no-op
func (c *creator) Stack(stack *domain.ItemStack) Builder {
	if stack == nil {
		return c
	}
	c.material = stack.Type
	c.amount = stack.Amount
	return c.Meta(stack.ItemMeta())
}

// seed replaces every meta-backed value with meta's, clearing what meta lacks
func (c *creator) seed(meta *domain.ItemMeta) {
	c.displayName = meta.DisplayName
	c.localizedName = meta.LocalizedName
	c.lore = slices.Clone(meta.Lore)
	c.flags = meta.Flags
	c.enchantments = meta.Enchants.Clone()
	c.modifiers = meta.AttributeModifiers.Clone()
	c.customModelData = nil
	if meta.HasCustomModelData() {
		c.CustomModelData(*meta.CustomModelData)
	}
	c.unbreakable = meta.Unbreakable
	c.repairCost = meta.RepairCost
	c.damage = meta.Damage
	c.profile = nil
	if meta.HasOwner() {
		c.SkullProfile(*meta.Owner)
	}
}

func (c *creator) Material(material domain.Material) Builder {
	c.material = material
	return c
}

func (c *creator) DisplayName(name string) Builder {
	c.displayName = text.Colorize(name)
	return c
}

func (c *creator) LocalizedName(name string) Builder {
	c.localizedName = name
	return c
}

func (c *creator) Lore(lines ...string) Builder {
	c.lore = text.ColorizeAll(slices.Clone(lines))
	return c
}

func (c *creator) AddLore(lines ...string) Builder {
	c.lore = append(c.lore, text.ColorizeAll(lines)...)
	return c
}

func (c *creator) AllFlags() Builder {
	return c.Flags(domain.AllItemFlags()...)
}

func (c *creator) Flags(flags ...domain.ItemFlag) Builder {
	c.flags = domain.FlagSet(flags...)
	return c
}

func (c *creator) Flag(flag domain.ItemFlag) Builder {
	c.flags = c.flags.With(flag)
	return c
}

func (c *creator) Enchantments(enchants domain.Enchantments) Builder {
	c.enchantments = enchants.Clone()
	return c
}

func (c *creator) Enchantment(enchant domain.Enchantment, level int) Builder {
	if c.enchantments == nil {
		c.enchantments = make(domain.Enchantments)
	}
	c.enchantments[enchant] = level
	return c
}

func (c *creator) AttributeModifiers(mods domain.AttributeModifiers) Builder {
	c.modifiers = mods.Clone()
	return c
}

func (c *creator) AddAttributeModifiers(attr domain.Attribute, mods ...domain.AttributeModifier) Builder {
	c.modifiers.Put(attr, mods...)
	return c
}

func (c *creator) AttributeModifier(attr domain.Attribute, mod domain.AttributeModifier) Builder {
	return c.AddAttributeModifiers(attr, mod)
}

func (c *creator) CustomModelData(data int) Builder {
	c.customModelData = &data
	return c
}

func (c *creator) Unbreakable(unbreakable bool) Builder {
	c.unbreakable = unbreakable
	return c
}

func (c *creator) RepairCost(cost int) Builder {
	c.repairCost = cost
	return c
}

func (c *creator) SkullProfile(profile domain.PlayerProfile) Builder {
	c.profile = &profile
	return c
}

func (c *creator) SkullOwner(owner domain.OfflinePlayer) Builder {
	return c.SkullProfile(owner.Profile())
}

func (c *creator) SkullOwnerID(id uuid.UUID) Builder {
	return c.SkullOwner(c.opts.directory.ByID(id))
}

func (c *creator) SkullOwnerName(name string) Builder {
	return c.SkullProfile(domain.PlayerProfile{Name: name})
}

func (c *creator) Damage(damage int) Builder {
	c.damage = damage
	return c
}

func (c *creator) Amount(amount int) Builder {
	c.amount = amount
	return c
}

// EditMeta builds the current state, lets fn edit its meta and re-seeds from
// the result. Values fn clears are cleared on the builder too.
func (c *creator) EditMeta(fn func(meta *domain.ItemMeta)) Builder {
	stack := c.Build()
	if !stack.EditMeta(fn) {
		return c
	}
	c.seed(stack.Meta)
	return c
}

func (c *creator) Build() *domain.ItemStack {
	stack := domain.NewItemStack(c.material, c.amount)
	meta := stack.Meta
	if meta == nil {
		return stack
	}

	meta.DisplayName = c.displayName
	meta.LocalizedName = c.localizedName
	meta.SetLore(c.lore)
	meta.Flags = c.flags
	meta.SetAttributeModifiers(c.modifiers)
	meta.SetCustomModelData(c.customModelData)
	meta.Unbreakable = c.unbreakable

	meta.SetRepairCost(c.repairCost)
	meta.SetDamage(c.damage)
	meta.SetOwner(c.profile)

	stack.AddUnsafeEnchantments(c.enchantments)
	return stack
}
