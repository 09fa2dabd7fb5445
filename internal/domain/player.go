package domain

import "github.com/google/uuid"

// PlayerProfile identifies a skull owner. Either field may be unset.
type PlayerProfile struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// NewProfile creates a profile with both id and name
func NewProfile(id uuid.UUID, name string) PlayerProfile {
	return PlayerProfile{ID: id, Name: name}
}

func (p PlayerProfile) HasID() bool {
	return p.ID != uuid.Nil
}

// Complete reports whether both the id and the name are known
func (p PlayerProfile) Complete() bool {
	return p.HasID() && p.Name != ""
}

// OfflinePlayer is a player known to the server, online or not
type OfflinePlayer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// Profile returns the player's profile
func (p OfflinePlayer) Profile() PlayerProfile {
	return NewProfile(p.ID, p.Name)
}
