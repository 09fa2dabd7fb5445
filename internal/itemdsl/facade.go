// Package itemdsl wraps an item.Builder in a chainable facade whose values can
// also be assigned by field, for callers that only know a field name and a value.
package itemdsl

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/player"
)

// Options selects how the wrapped builder is created. Exactly one of
// Material and Item must be set.
type Options struct {
	Material domain.Material
	Item     *domain.ItemStack
	// Mutate edits Item in place instead of copying it
	Mutate bool
	// Directory resolves skull owner ids. Defaults to the offline directory.
	Directory player.Directory
}

// Item is a chainable facade over an item.Builder. Every setter forwards to
// the wrapped builder and returns the same *Item.
//
// An Item is owned by one caller and is not safe for concurrent use.
type Item struct {
	builder   item.Builder
	directory player.Directory
}

// New creates a facade for a new stack (Material), a copy of a stack (Item)
// or an in-place edit of a stack (Item with Mutate).
func New(opts Options) (*Item, error) {
	hasMaterial := opts.Material != ""
	hasItem := opts.Item != nil

	switch {
	case hasMaterial && hasItem:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgBothSources)
	case !hasMaterial && !hasItem:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNoSource)
	}

	dir := opts.Directory
	if dir == nil {
		dir = player.NewOfflineDirectory()
	}
	withDir := item.WithDirectory(dir)

	var (
		b   item.Builder
		err error
	)
	switch {
	case hasMaterial:
		b, err = item.Create(opts.Material, withDir)
	case opts.Mutate:
		b, err = item.Mutate(opts.Item, withDir)
	default:
		b, err = item.Copy(opts.Item, withDir)
	}
	if err != nil {
		return nil, err
	}

	return &Item{builder: b, directory: dir}, nil
}

// Create starts a new stack of material
func Create(material domain.Material) (*Item, error) {
	return New(Options{Material: material})
}

// Copy starts from a deep copy of stack; stack itself is never modified
func Copy(stack *domain.ItemStack) (*Item, error) {
	return New(Options{Item: stack})
}

// MutateStack edits stack directly. Changes are visible on stack before Build.
func MutateStack(stack *domain.ItemStack) (*Item, error) {
	return New(Options{Item: stack, Mutate: true})
}

func (i *Item) Meta(meta *domain.ItemMeta) *Item {
	i.builder.Meta(meta)
	return i
}

// Stack replaces the whole working stack
func (i *Item) Stack(stack *domain.ItemStack) *Item {
	i.builder.Stack(stack)
	return i
}

func (i *Item) Material(material domain.Material) *Item {
	i.builder.Material(material)
	return i
}

func (i *Item) DisplayName(name string) *Item {
	i.builder.DisplayName(name)
	return i
}

func (i *Item) LocalizedName(name string) *Item {
	i.builder.LocalizedName(name)
	return i
}

func (i *Item) Lore(lines ...string) *Item {
	i.builder.Lore(lines...)
	return i
}

func (i *Item) AddLore(lines ...string) *Item {
	i.builder.AddLore(lines...)
	return i
}

func (i *Item) AllFlags() *Item {
	i.builder.AllFlags()
	return i
}

func (i *Item) Flags(flags ...domain.ItemFlag) *Item {
	i.builder.Flags(flags...)
	return i
}

func (i *Item) Flag(flag domain.ItemFlag) *Item {
	i.builder.Flag(flag)
	return i
}

func (i *Item) Enchantments(enchants domain.Enchantments) *Item {
	i.builder.Enchantments(enchants)
	return i
}

func (i *Item) Enchantment(enchant domain.Enchantment, level int) *Item {
	i.builder.Enchantment(enchant, level)
	return i
}

func (i *Item) AttributeModifiers(mods domain.AttributeModifiers) *Item {
	i.builder.AttributeModifiers(mods)
	return i
}

func (i *Item) AddAttributeModifiers(attr domain.Attribute, mods ...domain.AttributeModifier) *Item {
	i.builder.AddAttributeModifiers(attr, mods...)
	return i
}

func (i *Item) AttributeModifier(attr domain.Attribute, mod domain.AttributeModifier) *Item {
	i.builder.AttributeModifier(attr, mod)
	return i
}

func (i *Item) CustomModelData(data int) *Item {
	i.builder.CustomModelData(data)
	return i
}

func (i *Item) Unbreakable(unbreakable bool) *Item {
	i.builder.Unbreakable(unbreakable)
	return i
}

func (i *Item) RepairCost(cost int) *Item {
	i.builder.RepairCost(cost)
	return i
}

// PlayerProfile sets the skull owner from a profile
func (i *Item) PlayerProfile(profile domain.PlayerProfile) *Item {
	i.builder.SkullProfile(profile)
	return i
}

// OwningPlayer sets the skull owner from a known player
func (i *Item) OwningPlayer(owner domain.OfflinePlayer) *Item {
	i.builder.SkullOwner(owner)
	return i
}

// SkullOwnerID looks the id up in the player directory and sets the result as owning player.
//
// Deprecated: use OwningPlayer or PlayerProfile.
func (i *Item) SkullOwnerID(id uuid.UUID) *Item {
	return i.OwningPlayer(i.directory.ByID(id))
}

// SkullOwnerName sets a profile carrying only a name.
//
// Deprecated: use OwningPlayer or PlayerProfile.
func (i *Item) SkullOwnerName(name string) *Item {
	return i.PlayerProfile(domain.PlayerProfile{Name: name})
}

func (i *Item) Damage(damage int) *Item {
	i.builder.Damage(damage)
	return i
}

func (i *Item) Amount(amount int) *Item {
	i.builder.Amount(amount)
	return i
}

// EditMeta passes the current meta to fn and commits whatever fn leaves in it
func (i *Item) EditMeta(fn func(meta *domain.ItemMeta)) *Item {
	i.builder.EditMeta(fn)
	return i
}

// Build returns the stack produced by the wrapped builder
func (i *Item) Build() *domain.ItemStack {
	return i.builder.Build()
}
