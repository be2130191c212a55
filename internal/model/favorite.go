package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links an owner to a catalog pokemon by id. The pokemon itself is
// never copied into the row; it is fetched live when needed. Duplicate
// (owner, pokemon) pairs are allowed.
type Favorite struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:char(36);index;not null"`
	PokemonID int       `json:"pokemon_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
