package catalog

// Error messages
const (
	ErrMsgEditWithBase  = "edit definitions cannot name a base"
	ErrMsgNilStack      = "stack is nil"
	ErrMsgBaseChainDeep = "base chain too deep"
	ErrMsgCatalogEmpty  = "no catalog loaded"
)

// Error format strings
const (
	ErrFmtItemNotFound = "%w: %s"
	ErrFmtBaseNotFound = "%w: base '%s' of '%s'"
	ErrFmtBuildFailed  = "build '%s': %w"
)

// Log messages
const (
	LogMsgCatalogLoaded     = "Item catalog loaded"
	LogMsgCatalogReloadFail = "Item catalog reload failed"
	LogMsgItemBuilt         = "Item built"
	LogMsgItemEdited        = "Item edited"
	LogMsgBuildFailed       = "Item build failed"
	LogMsgOwnerRecorded     = "Skull owner recorded"
)

// editName stands in for the name of an edit definition, which has none
const editName = "(edit)"

// maxBaseDepth bounds base inheritance; catalogs are validated acyclic
const maxBaseDepth = 32
