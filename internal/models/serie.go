package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"streamhub-backend/internal/utils"
)

type Serie struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"not null;index" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Plot        string     `gorm:"type:text" json:"plot"`
	ReleaseDate time.Time  `gorm:"index" json:"releaseDate"`
	Country     string     `json:"country"`
	Poster      ImageAsset `gorm:"embedded;embeddedPrefix:poster_" json:"poster"`
	Backdrop    ImageAsset `gorm:"embedded;embeddedPrefix:backdrop_" json:"backdrop"`
	Trailer     string     `json:"trailer,omitempty"`
	Genres      []Genre    `gorm:"many2many:serie_genres" json:"genres,omitempty"`
	Seasons     []Season   `gorm:"foreignKey:SerieID" json:"seasons,omitempty"`

	Likes    []uuid.UUID `gorm:"-" json:"likes"`
	Dislikes []uuid.UUID `gorm:"-" json:"dislikes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Serie) TableName() string {
	return "series"
}

func (s *Serie) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Slug == "" {
		s.Slug = utils.Slugify(s.Title)
	}
	return nil
}
