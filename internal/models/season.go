package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"streamhub-backend/internal/utils"
)

type Season struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `json:"title"`
	Slug        string    `gorm:"not null;uniqueIndex:idx_serie_season_slug" json:"slug" example:"season-2"`
	Number      int       `gorm:"not null" json:"number"`
	ReleaseDate time.Time `json:"releaseDate"`
	SerieID     uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_serie_season_slug" json:"serie"`
	Episodes    []Episode `gorm:"foreignKey:SeasonID" json:"episodes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Season) TableName() string {
	return "seasons"
}

// BeforeCreate derives the slug from the season number, never the title.
func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Slug == "" {
		s.Slug = utils.SeasonSlug(s.Number)
	}
	return nil
}
