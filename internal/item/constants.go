package item

// ==================== Configuration File Names ====================

const (
	// ConfigFileName is the default name of the item catalog file
	ConfigFileName = "items.json"

	// ItemsSchemaPath locates the catalog schema inside configs.Schemas
	ItemsSchemaPath = "schemas/items.schema.json"
)

// ==================== Error Messages ====================

// Builder error messages
const (
	ErrMsgNilStack = "item stack is nil"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigLoaded    = "Items config loaded"
	LogMsgConfigValidated = "Items config validated"

	// Levels above the natural maximum are applied unsafely
	LogMsgUnsafeEnchantment = "Enchantment above natural max level"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty    = "%w: item at index %d has empty name"
	ErrFmtItemInvalid         = "%w: item '%s': %s"
	ErrFmtItemUnknownBase     = "%w: item '%s' has unknown base '%s'"
	ErrFmtItemValue           = "%w: item '%s': %w"
	ErrFmtItemSkullOwnerBadID = "%w: item '%s' has invalid skull_owner '%s'"
	ErrFmtItemAmountTooLarge  = "%w: item '%s' amount %d exceeds the max stack size of %s (%d)"
	ErrFmtItemDamageTooLarge  = "%w: item '%s' damage %d exceeds the durability of %s (%d)"
)
