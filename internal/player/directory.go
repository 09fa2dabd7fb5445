package player

import (
	"crypto/md5"

	"github.com/google/uuid"

	"github.com/osse101/itemforge/internal/domain"
)

// OfflinePrefix is hashed together with a name to derive offline-mode ids
const OfflinePrefix = "OfflinePlayer:"

// Directory looks up players that may not be online.
// Lookups never fail: unknown players are synthesized.
type Directory interface {
	// ByID returns the player with the given id; the name may be empty
	ByID(id uuid.UUID) domain.OfflinePlayer

	// ByName returns the player with the given name
	ByName(name string) domain.OfflinePlayer
}

type offlineDirectory struct{}

// NewOfflineDirectory returns a directory that knows no players and
// derives offline-mode ids for names
func NewOfflineDirectory() Directory {
	return offlineDirectory{}
}

func (offlineDirectory) ByID(id uuid.UUID) domain.OfflinePlayer {
	return domain.OfflinePlayer{ID: id}
}

func (offlineDirectory) ByName(name string) domain.OfflinePlayer {
	return domain.OfflinePlayer{ID: OfflineID(name), Name: name}
}

// OfflineID derives the id an offline-mode server assigns to a name:
// a version 3 uuid over the MD5 of OfflinePrefix+name, without namespace.
func OfflineID(name string) uuid.UUID {
	sum := md5.Sum([]byte(OfflinePrefix + name))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.UUID(sum)
}
