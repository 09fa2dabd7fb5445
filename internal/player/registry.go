package player

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/itemforge/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedPlayerEntry wraps a player with version metadata for cache invalidation
type cachedPlayerEntry struct {
	Version  string               `json:"version"`
	Player   domain.OfflinePlayer `json:"player"`
	CachedAt time.Time            `json:"cached_at"`
}

// Registry is a Directory of recently seen players, held in expiring LRU
// caches keyed by id and by lower-cased name. Misses fall through to the
// offline directory; names resolved that way are remembered.
type Registry struct {
	byID     *expirable.LRU[uuid.UUID, *cachedPlayerEntry]
	byName   *expirable.LRU[string, *cachedPlayerEntry]
	fallback Directory
}

var _ Directory = (*Registry)(nil)

// NewRegistry creates a registry holding up to size players for ttl
func NewRegistry(size int, ttl time.Duration) *Registry {
	return &Registry{
		byID:     expirable.NewLRU[uuid.UUID, *cachedPlayerEntry](size, nil, ttl),
		byName:   expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
		fallback: NewOfflineDirectory(),
	}
}

// Remember records a player so later lookups by id or name resolve to it
func (r *Registry) Remember(p domain.OfflinePlayer) {
	entry := &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   p,
		CachedAt: time.Now(),
	}
	r.byID.Add(p.ID, entry)
	if p.Name != "" {
		r.byName.Add(nameKey(p.Name), entry)
	}
}

// Observe remembers the owner of a profile seen on an item. Profiles
// missing an id or a name are ignored; it reports whether one was recorded.
func (r *Registry) Observe(profile domain.PlayerProfile) bool {
	if !profile.Complete() {
		return false
	}
	r.Remember(domain.OfflinePlayer{ID: profile.ID, Name: profile.Name})
	return true
}

// Forget removes a player from both indexes
func (r *Registry) Forget(id uuid.UUID) {
	entry, ok := r.byID.Peek(id)
	if !ok {
		return
	}
	r.byID.Remove(id)
	if entry.Player.Name != "" {
		r.byName.Remove(nameKey(entry.Player.Name))
	}
}

func (r *Registry) ByID(id uuid.UUID) domain.OfflinePlayer {
	entry, found := r.byID.Get(id)
	if !found {
		return r.fallback.ByID(id)
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		r.byID.Remove(id)
		return r.fallback.ByID(id)
	}
	return entry.Player
}

func (r *Registry) ByName(name string) domain.OfflinePlayer {
	key := nameKey(name)
	entry, found := r.byName.Get(key)
	if found && entry.Version == CacheSchemaVersion {
		return entry.Player
	}
	if found {
		r.byName.Remove(key)
	}

	// Resolved names are kept so the id maps back to the name
	p := r.fallback.ByName(name)
	r.Observe(p.Profile())
	return p
}

// Len returns the number of players known by id
func (r *Registry) Len() int {
	return r.byID.Len()
}

// Clear removes all entries from the cache.
func (r *Registry) Clear() {
	r.byID.Purge()
	r.byName.Purge()
}

func nameKey(name string) string {
	return strings.ToLower(name)
}
