// Package configs embeds the JSON schemas and default item catalog shipped with the service.
package configs

import "embed"

// Schemas holds every file under schemas/
//
//go:embed schemas/*.json
var Schemas embed.FS

// DefaultItems is the catalog served when ITEMS_PATH is set but empty
//
//go:embed items.json
var DefaultItems []byte
