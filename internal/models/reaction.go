package models

import (
	"time"

	"github.com/google/uuid"
)

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// MovieReaction records one user's like or dislike of a movie. The composite
// primary key guarantees a user holds at most one reaction per movie, which
// is what makes the toggle's mutual exclusion hold under concurrent writes.
type MovieReaction struct {
	MovieID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"movie_id"`
	UserID    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Kind      ReactionKind `gorm:"not null" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

func (MovieReaction) TableName() string {
	return "movie_reactions"
}

type SerieReaction struct {
	SerieID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"serie_id"`
	UserID    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Kind      ReactionKind `gorm:"not null" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

func (SerieReaction) TableName() string {
	return "serie_reactions"
}
