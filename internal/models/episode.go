package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"streamhub-backend/internal/utils"
)

type Episode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"not null;uniqueIndex:idx_season_episode_slug" json:"slug"`
	Plot      string    `gorm:"type:text" json:"plot"`
	Number    int       `gorm:"not null" json:"number"`
	VideoURL  string    `json:"videoURL,omitempty"`
	SeasonID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_season_episode_slug" json:"season"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Episode) TableName() string {
	return "episodes"
}

func (e *Episode) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Slug == "" {
		e.Slug = utils.Slugify(e.Title)
	}
	return nil
}
