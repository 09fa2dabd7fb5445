package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Attribute is an entity attribute that an item can modify while equipped
type Attribute string

const (
	AttributeMaxHealth           Attribute = "GENERIC_MAX_HEALTH"
	AttributeKnockbackResistance Attribute = "GENERIC_KNOCKBACK_RESISTANCE"
	AttributeMovementSpeed       Attribute = "GENERIC_MOVEMENT_SPEED"
	AttributeAttackDamage        Attribute = "GENERIC_ATTACK_DAMAGE"
	AttributeAttackKnockback     Attribute = "GENERIC_ATTACK_KNOCKBACK"
	AttributeAttackSpeed         Attribute = "GENERIC_ATTACK_SPEED"
	AttributeArmor               Attribute = "GENERIC_ARMOR"
	AttributeArmorToughness      Attribute = "GENERIC_ARMOR_TOUGHNESS"
	AttributeLuck                Attribute = "GENERIC_LUCK"
)

var attributes = []Attribute{
	AttributeMaxHealth,
	AttributeKnockbackResistance,
	AttributeMovementSpeed,
	AttributeAttackDamage,
	AttributeAttackKnockback,
	AttributeAttackSpeed,
	AttributeArmor,
	AttributeArmorToughness,
	AttributeLuck,
}

// ParseAttribute resolves an attribute by name, case-insensitively.
// The "GENERIC_" prefix may be omitted.
func ParseAttribute(name string) (Attribute, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(upper, "GENERIC_") {
		upper = "GENERIC_" + upper
	}
	a := Attribute(upper)
	if !slices.Contains(attributes, a) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return a, nil
}

// Operation defines how a modifier amount is applied
type Operation string

const (
	OperationAddNumber       Operation = "ADD_NUMBER"
	OperationAddScalar       Operation = "ADD_SCALAR"
	OperationMultiplyScalar1 Operation = "MULTIPLY_SCALAR_1"
)

func ParseOperation(name string) (Operation, error) {
	switch op := Operation(strings.ToUpper(strings.TrimSpace(name))); op {
	case OperationAddNumber, OperationAddScalar, OperationMultiplyScalar1:
		return op, nil
	case "":
		return OperationAddNumber, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

// EquipmentSlot restricts a modifier to one slot. The zero value applies to any slot.
type EquipmentSlot string

const (
	SlotAny     EquipmentSlot = ""
	SlotHand    EquipmentSlot = "HAND"
	SlotOffHand EquipmentSlot = "OFF_HAND"
	SlotHead    EquipmentSlot = "HEAD"
	SlotChest   EquipmentSlot = "CHEST"
	SlotLegs    EquipmentSlot = "LEGS"
	SlotFeet    EquipmentSlot = "FEET"
)

func ParseEquipmentSlot(name string) (EquipmentSlot, error) {
	switch s := EquipmentSlot(strings.ToUpper(strings.TrimSpace(name))); s {
	case SlotAny, SlotHand, SlotOffHand, SlotHead, SlotChest, SlotLegs, SlotFeet:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
}

// AttributeModifier changes an attribute by Amount using Operation
type AttributeModifier struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Amount    float64       `json:"amount"`
	Operation Operation     `json:"operation"`
	Slot      EquipmentSlot `json:"slot,omitempty"`
}

// NewAttributeModifier creates a modifier with a random id
func NewAttributeModifier(name string, amount float64, op Operation, slot EquipmentSlot) AttributeModifier {
	return AttributeModifier{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		Operation: op,
		Slot:      slot,
	}
}

// AttributeModifiers is a multimap from attribute to its modifiers
type AttributeModifiers map[Attribute][]AttributeModifier

// Put appends modifiers for an attribute, allocating the map when needed
func (m *AttributeModifiers) Put(attr Attribute, mods ...AttributeModifier) {
	if len(mods) == 0 {
		return
	}
	if *m == nil {
		*m = make(AttributeModifiers)
	}
	(*m)[attr] = append((*m)[attr], mods...)
}

// PutAll appends every entry of other
func (m *AttributeModifiers) PutAll(other AttributeModifiers) {
	for attr, mods := range other {
		m.Put(attr, mods...)
	}
}

// Get returns the modifiers of an attribute
func (m AttributeModifiers) Get(attr Attribute) []AttributeModifier {
	return m[attr]
}

// Len returns the number of modifiers across all attributes
func (m AttributeModifiers) Len() int {
	n := 0
	for _, mods := range m {
		n += len(mods)
	}
	return n
}

// Clone deep-copies the multimap. Empty multimaps clone to nil.
func (m AttributeModifiers) Clone() AttributeModifiers {
	var out AttributeModifiers
	out.PutAll(m)
	return out
}
