package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"streamhub-backend/internal/utils"
)

// ImageAsset holds the media-host identifier and public URL of an uploaded
// image. The identifier is opaque to this service.
type ImageAsset struct {
	ID  string `gorm:"column:id" json:"id"`
	URL string `gorm:"column:url" json:"url"`
}

type Movie struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null;index" json:"title" example:"The Matrix"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug" example:"the-matrix"`
	Plot        string     `gorm:"type:text" json:"plot"`
	ReleaseDate time.Time  `gorm:"index" json:"releaseDate"`
	Runtime     int        `json:"runtime" example:"136"`
	Country     string     `json:"country" example:"USA"`
	Poster      ImageAsset `gorm:"embedded;embeddedPrefix:poster_" json:"poster"`
	Backdrop    ImageAsset `gorm:"embedded;embeddedPrefix:backdrop_" json:"backdrop"`
	Trailer     string     `json:"trailer,omitempty"`
	Genres      []Genre    `gorm:"many2many:movie_genres" json:"genres,omitempty"`

	// Reaction membership lives in movie_reactions and is filled in by the
	// repository after load.
	Likes    []uuid.UUID `gorm:"-" json:"likes"`
	Dislikes []uuid.UUID `gorm:"-" json:"dislikes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// BeforeCreate derives the slug from the title once. Updates never touch the
// slug, so a renamed movie keeps its original URL.
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Slug == "" {
		m.Slug = utils.Slugify(m.Title)
	}
	return nil
}
