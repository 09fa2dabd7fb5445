package item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/player"
)

// Builder accumulates changes to an item stack. Every setter returns the
// receiver so calls can be chained; Build produces the resulting stack.
type Builder interface {
	// Meta updates all available values from meta
	Meta(meta *domain.ItemMeta) Builder
	// Stack replaces the working stack, keeping its material, amount and meta
	Stack(stack *domain.ItemStack) Builder
	Material(material domain.Material) Builder

	DisplayName(name string) Builder
	LocalizedName(name string) Builder
	Lore(lines ...string) Builder
	AddLore(lines ...string) Builder

	AllFlags() Builder
	Flags(flags ...domain.ItemFlag) Builder
	Flag(flag domain.ItemFlag) Builder

	Enchantments(enchants domain.Enchantments) Builder
	Enchantment(enchant domain.Enchantment, level int) Builder

	AttributeModifiers(mods domain.AttributeModifiers) Builder
	AddAttributeModifiers(attr domain.Attribute, mods ...domain.AttributeModifier) Builder
	AttributeModifier(attr domain.Attribute, mod domain.AttributeModifier) Builder

	CustomModelData(data int) Builder
	Unbreakable(unbreakable bool) Builder
	RepairCost(cost int) Builder

	SkullProfile(profile domain.PlayerProfile) Builder
	SkullOwner(owner domain.OfflinePlayer) Builder
	// Deprecated: use SkullOwner or SkullProfile. The id is resolved through the player directory.
	SkullOwnerID(id uuid.UUID) Builder
	// Deprecated: use SkullOwner or SkullProfile. Sets a name-only profile.
	SkullOwnerName(name string) Builder

	Damage(damage int) Builder
	Amount(amount int) Builder

	// EditMeta hands the current meta to fn and commits the result
	EditMeta(fn func(meta *domain.ItemMeta)) Builder

	// Build returns a stack reflecting every change made so far
	Build() *domain.ItemStack
}

// Option configures a builder
type Option func(*options)

type options struct {
	directory player.Directory
}

// WithDirectory sets the player directory used to resolve skull owner ids
func WithDirectory(dir player.Directory) Option {
	return func(o *options) {
		if dir != nil {
			o.directory = dir
		}
	}
}

func newOptions(opts []Option) options {
	o := options{directory: player.NewOfflineDirectory()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Create returns a builder for a new stack of material.
// Build returns a fresh stack every call.
func Create(material domain.Material, opts ...Option) (Builder, error) {
	if !material.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", domain.ErrInvalidArgument, domain.ErrUnknownMaterial, material)
	}
	return newCreator(material, newOptions(opts)), nil
}

// Copy returns a builder seeded from a deep copy of stack.
// The source stack is never modified.
func Copy(stack *domain.ItemStack, opts ...Option) (Builder, error) {
	if stack == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilStack)
	}
	c := newCreator(stack.Type, newOptions(opts))
	c.Stack(stack)
	return c, nil
}

// Mutate returns a builder that edits stack and its meta in place.
// Build returns stack itself.
func Mutate(stack *domain.ItemStack, opts ...Option) (Builder, error) {
	if stack == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilStack)
	}
	return newMutator(stack, newOptions(opts)), nil
}
