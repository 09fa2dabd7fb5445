package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Construction errors
	ErrMsgInvalidArgument = "invalid argument"

	// Write-only field access
	ErrMsgUnsupportedOperation = "unsupported operation"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Registry lookups
	ErrMsgUnknownMaterial    = "unknown material"
	ErrMsgUnknownFlag        = "unknown item flag"
	ErrMsgUnknownEnchantment = "unknown enchantment"
	ErrMsgUnknownAttribute   = "unknown attribute"
	ErrMsgUnknownOperation   = "unknown attribute operation"
	ErrMsgUnknownSlot        = "unknown equipment slot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidArgument is returned when a builder is constructed with neither
	// or both of a material and a source item.
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// ErrUnsupportedOperation is returned when reading a write-only builder field.
	ErrUnsupportedOperation = errors.New(ErrMsgUnsupportedOperation)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrUnknownMaterial    = errors.New(ErrMsgUnknownMaterial)
	ErrUnknownFlag        = errors.New(ErrMsgUnknownFlag)
	ErrUnknownEnchantment = errors.New(ErrMsgUnknownEnchantment)
	ErrUnknownAttribute   = errors.New(ErrMsgUnknownAttribute)
	ErrUnknownOperation   = errors.New(ErrMsgUnknownOperation)
	ErrUnknownSlot        = errors.New(ErrMsgUnknownSlot)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
