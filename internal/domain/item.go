package domain

import "slices"

// ItemMeta holds the metadata of an item stack. The capabilities a meta
// supports (damage, repair cost, skull owner) depend on its Kind.
type ItemMeta struct {
	Kind               MetaKind           `json:"kind"`
	DisplayName        string             `json:"display_name,omitempty"`
	LocalizedName      string             `json:"localized_name,omitempty"`
	Lore               []string           `json:"lore,omitempty"`
	Flags              ItemFlags          `json:"flags"`
	Enchants           Enchantments       `json:"enchants,omitempty"`
	AttributeModifiers AttributeModifiers `json:"attribute_modifiers,omitempty"`
	CustomModelData    *int               `json:"custom_model_data,omitempty"`
	Unbreakable        bool               `json:"unbreakable,omitempty"`
	RepairCost         int                `json:"repair_cost,omitempty"`
	Damage             int                `json:"damage,omitempty"`
	Owner              *PlayerProfile     `json:"owner,omitempty"`
}

// NewItemMeta returns an empty meta of the given kind
func NewItemMeta(kind MetaKind) *ItemMeta {
	return &ItemMeta{Kind: kind}
}

func (m *ItemMeta) HasDisplayName() bool        { return m.DisplayName != "" }
func (m *ItemMeta) HasLocalizedName() bool      { return m.LocalizedName != "" }
func (m *ItemMeta) HasLore() bool               { return len(m.Lore) > 0 }
func (m *ItemMeta) HasEnchants() bool           { return len(m.Enchants) > 0 }
func (m *ItemMeta) HasAttributeModifiers() bool { return m.AttributeModifiers.Len() > 0 }
func (m *ItemMeta) HasCustomModelData() bool    { return m.CustomModelData != nil }
func (m *ItemMeta) HasRepairCost() bool         { return m.RepairCost > 0 }
func (m *ItemMeta) HasOwner() bool              { return m.Owner != nil }

func (m *ItemMeta) IsDamageable() bool { return m.Kind == MetaKindDamageable }

// IsRepairable reports whether the meta accepts a repair cost.
// Every damageable item can be repaired.
func (m *ItemMeta) IsRepairable() bool { return m.Kind == MetaKindDamageable }

func (m *ItemMeta) IsSkull() bool { return m.Kind == MetaKindSkull }

// SetLore replaces the lore; an empty list clears it
func (m *ItemMeta) SetLore(lines []string) {
	if len(lines) == 0 {
		m.Lore = nil
		return
	}
	m.Lore = slices.Clone(lines)
}

func (m *ItemMeta) AddItemFlags(flags ...ItemFlag) {
	m.Flags = m.Flags.With(flags...)
}

func (m *ItemMeta) RemoveItemFlags(flags ...ItemFlag) {
	m.Flags = m.Flags.Without(flags...)
}

// AddEnchant sets an enchantment level without checking its vanilla maximum
func (m *ItemMeta) AddEnchant(e Enchantment, level int) {
	if m.Enchants == nil {
		m.Enchants = make(Enchantments)
	}
	m.Enchants[e] = level
}

// SetAttributeModifiers replaces the modifiers with a copy of mods
func (m *ItemMeta) SetAttributeModifiers(mods AttributeModifiers) {
	m.AttributeModifiers = mods.Clone()
}

// AddAttributeModifier appends modifiers for attr
func (m *ItemMeta) AddAttributeModifier(attr Attribute, mods ...AttributeModifier) {
	m.AttributeModifiers.Put(attr, mods...)
}

// SetCustomModelData sets the model override; nil clears it
func (m *ItemMeta) SetCustomModelData(data *int) {
	if data == nil {
		m.CustomModelData = nil
		return
	}
	v := *data
	m.CustomModelData = &v
}

// SetDamage is ignored unless the meta is damageable
func (m *ItemMeta) SetDamage(damage int) bool {
	if !m.IsDamageable() {
		return false
	}
	m.Damage = damage
	return true
}

// SetRepairCost is ignored unless the meta is repairable
func (m *ItemMeta) SetRepairCost(cost int) bool {
	if !m.IsRepairable() {
		return false
	}
	m.RepairCost = cost
	return true
}

// SetOwner is ignored unless the meta is a skull. Nil clears the owner.
func (m *ItemMeta) SetOwner(profile *PlayerProfile) bool {
	if !m.IsSkull() {
		return false
	}
	if profile == nil {
		m.Owner = nil
		return true
	}
	p := *profile
	m.Owner = &p
	return true
}

// Clone deep-copies the meta, keeping nil collections nil
func (m *ItemMeta) Clone() *ItemMeta {
	if m == nil {
		return nil
	}
	out := *m
	out.Lore = slices.Clone(m.Lore)
	out.Enchants = m.Enchants.Clone()
	out.AttributeModifiers = m.AttributeModifiers.Clone()
	if m.CustomModelData != nil {
		v := *m.CustomModelData
		out.CustomModelData = &v
	}
	if m.Owner != nil {
		p := *m.Owner
		out.Owner = &p
	}
	return &out
}

// As returns a copy of the meta converted to kind, dropping values the
// new kind cannot hold
func (m *ItemMeta) As(kind MetaKind) *ItemMeta {
	out := m.Clone()
	out.Kind = kind
	if kind != MetaKindDamageable {
		out.Damage = 0
		out.RepairCost = 0
	}
	if kind != MetaKindSkull {
		out.Owner = nil
	}
	return out
}

// ItemStack is a quantity of one material with its metadata.
// Air stacks carry no meta.
type ItemStack struct {
	Type   Material  `json:"type"`
	Amount int       `json:"amount"`
	Meta   *ItemMeta `json:"meta,omitempty"`
}

// NewItemStack creates a stack of the material with empty meta
func NewItemStack(material Material, amount int) *ItemStack {
	s := &ItemStack{Type: material, Amount: amount}
	if kind := material.MetaKind(); kind != MetaKindNone {
		s.Meta = NewItemMeta(kind)
	}
	return s
}

// ItemMeta returns a copy of the stack's meta, nil for air
func (s *ItemStack) ItemMeta() *ItemMeta {
	return s.Meta.Clone()
}

// SetItemMeta stores a copy of meta converted to the stack's material.
// A nil meta resets the stack to empty meta.
func (s *ItemStack) SetItemMeta(meta *ItemMeta) {
	kind := s.Type.MetaKind()
	switch {
	case kind == MetaKindNone:
		s.Meta = nil
	case meta == nil:
		s.Meta = NewItemMeta(kind)
	default:
		s.Meta = meta.As(kind)
	}
}

// SetType changes the material, converting the meta to the new material's kind
func (s *ItemStack) SetType(material Material) {
	s.Type = material
	s.SetItemMeta(s.Meta)
}

// EditMeta applies fn to a copy of the meta and stores the result.
// It returns false for stacks without meta.
func (s *ItemStack) EditMeta(fn func(*ItemMeta)) bool {
	meta := s.ItemMeta()
	if meta == nil {
		return false
	}
	fn(meta)
	s.SetItemMeta(meta)
	return true
}

// AddUnsafeEnchantment enchants the stack ignoring level limits and material
func (s *ItemStack) AddUnsafeEnchantment(e Enchantment, level int) {
	if s.Meta == nil {
		return
	}
	s.Meta.AddEnchant(e, level)
}

func (s *ItemStack) AddUnsafeEnchantments(enchants Enchantments) {
	for e, level := range enchants {
		s.AddUnsafeEnchantment(e, level)
	}
}

// Enchantments returns a copy of the stack's enchantments
func (s *ItemStack) Enchantments() Enchantments {
	if s.Meta == nil {
		return nil
	}
	return s.Meta.Enchants.Clone()
}

// Damage returns the damage taken by a damageable stack
func (s *ItemStack) Damage() int {
	if s.Meta == nil {
		return 0
	}
	return s.Meta.Damage
}

// Clone deep-copies the stack
func (s *ItemStack) Clone() *ItemStack {
	if s == nil {
		return nil
	}
	return &ItemStack{
		Type:   s.Type,
		Amount: s.Amount,
		Meta:   s.Meta.Clone(),
	}
}
