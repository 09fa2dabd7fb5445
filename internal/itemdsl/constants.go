package itemdsl

// Construction error messages
const (
	ErrMsgBothSources = "either material or item must be supplied, not both"
	ErrMsgNoSource    = "either material or item must be supplied"
)

// Field dispatch error formats
const (
	ErrFmtFieldType      = "%w: field %s does not accept %T"
	ErrFmtUnmatchedField = "%w: field %s (tag %s)"
	ErrFmtFieldRead      = "%w: field %s is write-only"
	ErrFmtAssignment     = "assignment %d (%s): %w"
)
