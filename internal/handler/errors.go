package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Catalog error messages
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgInvalidItemError    = "Invalid item definition"
	ErrMsgInvalidStackError   = "Invalid item stack"
	ErrMsgUnknownValueError   = "Unknown item value"
	ErrMsgBuildFailed         = "Failed to build item"
	ErrMsgEditFailed          = "Failed to edit item"
	ErrMsgReloadConfigFailed  = "Failed to reload item catalog"
	ErrMsgInvalidMaterialName = "Unknown material '%s'"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// Success messages for API responses
const (
	MsgConfigReloadedSuccess = "Item catalog reloaded successfully"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgCatalogFailed  = "item catalog unavailable"
)
