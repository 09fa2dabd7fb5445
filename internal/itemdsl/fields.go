package itemdsl

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
)

var (
	// ErrFieldType is returned when a value's shape does not fit the field
	ErrFieldType = errors.New("value type not accepted by field")

	// ErrUnmatchedField is returned when a field's tag has no setter for the value's shape.
	// No declared field reaches it.
	ErrUnmatchedField = errors.New("no setter matches field")
)

// Tag tells apart fields that accept the same value shape
type Tag uint8

const (
	TagNone Tag = iota
	TagDisplayName
	TagLocalizedName
	TagLore
	TagFlags
	TagCustomModelData
	TagRepairCost
	TagDamage
	TagAmount
)

var tagNames = [...]string{
	TagNone:            "none",
	TagDisplayName:     "display-name",
	TagLocalizedName:   "localized-name",
	TagLore:            "lore-list",
	TagFlags:           "flags-list",
	TagCustomModelData: "custom-model-data",
	TagRepairCost:      "repair-cost",
	TagDamage:          "damage",
	TagAmount:          "amount",
}

func (t Tag) String() string {
	if int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return tagNames[t]
}

// shape is the runtime kind of an assigned value
type shape uint8

const (
	shapeUnknown shape = iota
	shapeMaterial
	shapeItem
	shapeMeta
	shapeString
	shapeList
	shapeEnchantments
	shapeModifiers
	shapeProfile
	shapeOfflinePlayer
	shapeUUID
	shapeInt
	shapeBool
)

func shapeOf(value any) shape {
	switch value.(type) {
	case domain.Material:
		return shapeMaterial
	case *domain.ItemStack:
		return shapeItem
	case *domain.ItemMeta:
		return shapeMeta
	case string:
		return shapeString
	case []string, []domain.ItemFlag:
		return shapeList
	case domain.Enchantments, map[domain.Enchantment]int:
		return shapeEnchantments
	case domain.AttributeModifiers, map[domain.Attribute][]domain.AttributeModifier:
		return shapeModifiers
	case domain.PlayerProfile:
		return shapeProfile
	case domain.OfflinePlayer:
		return shapeOfflinePlayer
	case uuid.UUID:
		return shapeUUID
	case int:
		return shapeInt
	case bool:
		return shapeBool
	default:
		return shapeUnknown
	}
}

// Field is a write-only facade property. Assigning it performs the same
// call as the matching chainable setter.
type Field struct {
	name  string
	tag   Tag
	shape shape
}

func (f Field) Name() string { return f.name }
func (f Field) Tag() Tag     { return f.tag }

func (f Field) String() string { return f.name }

var (
	FieldMaterial           = Field{"material", TagNone, shapeMaterial}
	FieldItem               = Field{"item", TagNone, shapeItem}
	FieldMeta               = Field{"meta", TagNone, shapeMeta}
	FieldDisplayName        = Field{"display_name", TagDisplayName, shapeString}
	FieldLocalizedName      = Field{"localized_name", TagLocalizedName, shapeString}
	FieldLore               = Field{"lore", TagLore, shapeList}
	FieldFlags              = Field{"flags", TagFlags, shapeList}
	FieldEnchantments       = Field{"enchantments", TagNone, shapeEnchantments}
	FieldAttributeModifiers = Field{"attribute_modifiers", TagNone, shapeModifiers}
	FieldPlayerProfile      = Field{"player_profile", TagNone, shapeProfile}
	FieldOwningPlayer       = Field{"owning_player", TagNone, shapeOfflinePlayer}
	// Deprecated: assign FieldOwningPlayer or FieldPlayerProfile.
	FieldSkullOwner      = Field{"skull_owner", TagNone, shapeUUID}
	FieldCustomModelData = Field{"custom_model_data", TagCustomModelData, shapeInt}
	FieldUnbreakable     = Field{"unbreakable", TagNone, shapeBool}
	FieldRepairCost      = Field{"repair_cost", TagRepairCost, shapeInt}
	FieldDamage          = Field{"damage", TagDamage, shapeInt}
	FieldAmount          = Field{"amount", TagAmount, shapeInt}
)

var fields = []Field{
	FieldMaterial,
	FieldItem,
	FieldMeta,
	FieldDisplayName,
	FieldLocalizedName,
	FieldLore,
	FieldFlags,
	FieldEnchantments,
	FieldAttributeModifiers,
	FieldPlayerProfile,
	FieldOwningPlayer,
	FieldSkullOwner,
	FieldCustomModelData,
	FieldUnbreakable,
	FieldRepairCost,
	FieldDamage,
	FieldAmount,
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.name] = f
	}
	return m
}()

// Fields returns every declared field
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// LookupField resolves a field by its name (e.g. "display_name")
func LookupField(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// Assignment is one field assignment, applied in order by Apply
type Assignment struct {
	Field Field
	Value any
}

// Set assigns value to field, forwarding to the setter whose parameter
// shape matches the value. Fields sharing a shape are told apart by tag.
func (i *Item) Set(field Field, value any) error {
	s := shapeOf(value)
	if s == shapeUnknown || s != field.shape {
		return fmt.Errorf(ErrFmtFieldType, ErrFieldType, field.name, value)
	}

	switch s {
	case shapeMaterial:
		i.Material(value.(domain.Material))
		return nil
	case shapeItem:
		i.Stack(value.(*domain.ItemStack))
		return nil
	case shapeMeta:
		i.Meta(value.(*domain.ItemMeta))
		return nil
	case shapeString:
		switch field.tag {
		case TagDisplayName:
			i.DisplayName(value.(string))
			return nil
		case TagLocalizedName:
			i.LocalizedName(value.(string))
			return nil
		}
	case shapeList:
		return i.setList(field, value)
	case shapeEnchantments:
		switch v := value.(type) {
		case domain.Enchantments:
			i.Enchantments(v)
		case map[domain.Enchantment]int:
			i.Enchantments(v)
		}
		return nil
	case shapeModifiers:
		switch v := value.(type) {
		case domain.AttributeModifiers:
			i.AttributeModifiers(v)
		case map[domain.Attribute][]domain.AttributeModifier:
			i.AttributeModifiers(v)
		}
		return nil
	case shapeProfile:
		i.PlayerProfile(value.(domain.PlayerProfile))
		return nil
	case shapeOfflinePlayer:
		i.OwningPlayer(value.(domain.OfflinePlayer))
		return nil
	case shapeUUID:
		i.SkullOwnerID(value.(uuid.UUID))
		return nil
	case shapeInt:
		v := value.(int)
		switch field.tag {
		case TagCustomModelData:
			i.CustomModelData(v)
			return nil
		case TagRepairCost:
			i.RepairCost(v)
			return nil
		case TagDamage:
			i.Damage(v)
			return nil
		case TagAmount:
			i.Amount(v)
			return nil
		}
	case shapeBool:
		i.Unbreakable(value.(bool))
		return nil
	}

	return fmt.Errorf(ErrFmtUnmatchedField, ErrUnmatchedField, field.name, field.tag)
}

// setList handles the two list fields; the element type must match the tag
func (i *Item) setList(field Field, value any) error {
	switch field.tag {
	case TagLore:
		lines, ok := value.([]string)
		if !ok {
			return fmt.Errorf(ErrFmtFieldType, ErrFieldType, field.name, value)
		}
		i.Lore(lines...)
		return nil
	case TagFlags:
		flags, ok := value.([]domain.ItemFlag)
		if !ok {
			return fmt.Errorf(ErrFmtFieldType, ErrFieldType, field.name, value)
		}
		i.Flags(flags...)
		return nil
	}
	return fmt.Errorf(ErrFmtUnmatchedField, ErrUnmatchedField, field.name, field.tag)
}

// Get always fails: fields are write-only
func (i *Item) Get(field Field) (any, error) {
	return nil, fmt.Errorf(ErrFmtFieldRead, domain.ErrUnsupportedOperation, field.name)
}

// Apply performs the assignments in order, stopping at the first failure
func (i *Item) Apply(assignments ...Assignment) error {
	for n, a := range assignments {
		if err := i.Set(a.Field, a.Value); err != nil {
			return fmt.Errorf(ErrFmtAssignment, n, a.Field.name, err)
		}
	}
	return nil
}
