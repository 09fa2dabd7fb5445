package player

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/itemforge/internal/domain"
)

func TestOfflineID(t *testing.T) {
	id := OfflineID("Steve")

	assert.Equal(t, uuid.Version(3), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
	assert.Equal(t, id, OfflineID("Steve"), "derivation must be deterministic")
	assert.NotEqual(t, id, OfflineID("Alex"))
	assert.NotEqual(t, id, OfflineID("steve"), "names are case sensitive")
}

func TestOfflineDirectory(t *testing.T) {
	dir := NewOfflineDirectory()

	id := uuid.New()
	assert.Equal(t, domain.OfflinePlayer{ID: id}, dir.ByID(id))

	p := dir.ByName("Steve")
	assert.Equal(t, "Steve", p.Name)
	assert.Equal(t, OfflineID("Steve"), p.ID)
}

func TestRegistry(t *testing.T) {
	steve := domain.OfflinePlayer{ID: uuid.New(), Name: "Steve"}

	t.Run("remembered player resolves by id and name", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		r.Remember(steve)

		assert.Equal(t, steve, r.ByID(steve.ID))
		assert.Equal(t, steve, r.ByName("steve"), "name lookups ignore case")
		assert.Equal(t, 1, r.Len())
	})

	t.Run("unknown player falls back to offline directory", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)

		id := uuid.New()
		assert.Equal(t, domain.OfflinePlayer{ID: id}, r.ByID(id))
		assert.Equal(t, OfflineID("Alex"), r.ByName("Alex").ID)
	})

	t.Run("forget removes both indexes", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		r.Remember(steve)
		r.Forget(steve.ID)

		assert.Empty(t, r.ByID(steve.ID).Name)
		assert.Equal(t, OfflineID("Steve"), r.ByName("Steve").ID)
	})

	t.Run("resolved name is remembered", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		alex := r.ByName("Alex")

		assert.Equal(t, 1, r.Len())
		assert.Equal(t, alex, r.ByID(alex.ID), "id lookups now carry the name")
	})

	t.Run("observed profile overrides the offline id", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		assert.True(t, r.Observe(steve.Profile()))

		assert.Equal(t, steve, r.ByName("Steve"))
		assert.NotEqual(t, OfflineID("Steve"), r.ByName("Steve").ID)
	})

	t.Run("incomplete profiles are ignored", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)

		assert.False(t, r.Observe(domain.PlayerProfile{ID: steve.ID}))
		assert.False(t, r.Observe(domain.PlayerProfile{Name: "Steve"}))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("stale name entry falls back", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		r.byName.Add("steve", &cachedPlayerEntry{Version: "0.1", Player: steve})

		assert.Equal(t, OfflineID("Steve"), r.ByName("Steve").ID)
	})

	t.Run("stale schema version is invalidated", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		r.byID.Add(steve.ID, &cachedPlayerEntry{Version: "0.1", Player: steve})

		assert.Empty(t, r.ByID(steve.ID).Name)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("entries expire", func(t *testing.T) {
		r := NewRegistry(10, 20*time.Millisecond)
		r.Remember(steve)
		time.Sleep(60 * time.Millisecond)

		assert.Empty(t, r.ByID(steve.ID).Name)
	})

	t.Run("clear", func(t *testing.T) {
		r := NewRegistry(10, time.Minute)
		r.Remember(steve)
		r.Clear()

		assert.Equal(t, 0, r.Len())
	})
}
