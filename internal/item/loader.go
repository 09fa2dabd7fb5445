package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/itemforge/configs"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateName = errors.New("duplicate item name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON item catalog
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def describes one item. Unset fields leave the builder's value untouched,
// so a definition with Base only overrides what it names.
type Def struct {
	Name string `json:"name" validate:"required"`
	// Base names an earlier definition to copy from
	Base     string `json:"base,omitempty"`
	Material string `json:"material,omitempty" validate:"required_without=Base"`
	// Amount is further capped by the material's max stack size
	Amount *int `json:"amount,omitempty" validate:"omitnil,min=1"`

	DisplayName   *string  `json:"display_name,omitempty"`
	LocalizedName *string  `json:"localized_name,omitempty"`
	Lore          []string `json:"lore,omitempty"`

	Flags    []string `json:"flags,omitempty"`
	AllFlags bool     `json:"all_flags,omitempty"`

	Enchantments       map[string]int `json:"enchantments,omitempty" validate:"omitempty,dive,min=1,max=255"`
	AttributeModifiers []ModifierDef  `json:"attribute_modifiers,omitempty" validate:"omitempty,dive"`

	CustomModelData *int  `json:"custom_model_data,omitempty"`
	Unbreakable     *bool `json:"unbreakable,omitempty"`
	RepairCost      *int  `json:"repair_cost,omitempty" validate:"omitnil,min=0"`
	Damage          *int  `json:"damage,omitempty" validate:"omitnil,min=0"`

	// SkullOwner is a player id resolved through the player directory
	SkullOwner     string `json:"skull_owner,omitempty" validate:"omitempty,uuid"`
	SkullOwnerName string `json:"skull_owner_name,omitempty"`
}

// ModifierDef describes one attribute modifier
type ModifierDef struct {
	Attribute string  `json:"attribute" validate:"required"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Operation string  `json:"operation,omitempty"`
	Slot      string  `json:"slot,omitempty"`
}

// Loader handles loading and validating item catalogs
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
	ValidateDef(def *Def) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(configs.Schemas),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads, schema-checks and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	config, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	slog.Debug(LogMsgConfigLoaded, "path", path, "items", len(config.Items))
	return config, nil
}

// Parse schema-checks and decodes catalog bytes
func (l *itemLoader) Parse(data []byte) (*Config, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, errors.New("malformed JSON"))
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, ConfigFileName, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the whole catalog: every definition, duplicate names,
// and that bases refer to earlier definitions
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))

	for i := range config.Items {
		def := &config.Items[i]

		if def.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, i)
		}

		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
		}

		if def.Base != "" && !names[def.Base] {
			return fmt.Errorf(ErrFmtItemUnknownBase, ErrInvalidConfig, def.Name, def.Base)
		}
		names[def.Name] = true

		if err := l.ValidateDef(def); err != nil {
			return err
		}
	}

	slog.Debug(LogMsgConfigValidated, "items", len(config.Items))
	return nil
}

// ValidateDef checks one definition's struct rules and registry names
func (l *itemLoader) ValidateDef(def *Def) error {
	if err := l.validate.Struct(def); err != nil {
		return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, def.Name, formatValidationError(err))
	}

	if def.Material != "" {
		material, err := domain.ParseMaterial(def.Material)
		if err != nil {
			return fmt.Errorf(ErrFmtItemValue, ErrInvalidConfig, def.Name, err)
		}
		if def.Amount != nil && *def.Amount > material.MaxStackSize() {
			return fmt.Errorf(ErrFmtItemAmountTooLarge, ErrInvalidConfig, def.Name, *def.Amount, material, material.MaxStackSize())
		}
		if def.Damage != nil && material.MaxDurability() > 0 && *def.Damage > material.MaxDurability() {
			return fmt.Errorf(ErrFmtItemDamageTooLarge, ErrInvalidConfig, def.Name, *def.Damage, material, material.MaxDurability())
		}
	}

	for _, name := range def.Flags {
		if _, err := domain.ParseItemFlag(name); err != nil {
			return fmt.Errorf(ErrFmtItemValue, ErrInvalidConfig, def.Name, err)
		}
	}

	for name, level := range def.Enchantments {
		enchant, err := domain.ParseEnchantment(name)
		if err != nil {
			return fmt.Errorf(ErrFmtItemValue, ErrInvalidConfig, def.Name, err)
		}
		if level > enchant.MaxLevel() {
			slog.Debug(LogMsgUnsafeEnchantment, "item", def.Name, "enchantment", enchant, "level", level, "max", enchant.MaxLevel())
		}
	}

	for _, mod := range def.AttributeModifiers {
		if _, _, err := mod.Modifier(); err != nil {
			return fmt.Errorf(ErrFmtItemValue, ErrInvalidConfig, def.Name, err)
		}
	}

	if def.SkullOwner != "" {
		if _, err := uuid.Parse(def.SkullOwner); err != nil {
			return fmt.Errorf(ErrFmtItemSkullOwnerBadID, ErrInvalidConfig, def.Name, def.SkullOwner)
		}
	}

	return nil
}

// Modifier converts the definition into an attribute and a modifier with a fresh id
func (d ModifierDef) Modifier() (domain.Attribute, domain.AttributeModifier, error) {
	attr, err := domain.ParseAttribute(d.Attribute)
	if err != nil {
		return "", domain.AttributeModifier{}, err
	}
	op, err := domain.ParseOperation(d.Operation)
	if err != nil {
		return "", domain.AttributeModifier{}, err
	}
	slot, err := domain.ParseEquipmentSlot(d.Slot)
	if err != nil {
		return "", domain.AttributeModifier{}, err
	}
	return attr, domain.NewAttributeModifier(d.Name, d.Amount, op, slot), nil
}

// formatValidationError joins struct validation failures as "field:tag" pairs
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, fmt.Sprintf("%s:%s", strings.ToLower(e.Field()), e.Tag()))
	}
	return strings.Join(parts, ", ")
}
