package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre membership is kept in the movie_genres / serie_genres join tables,
// so the movie and serie lists here are resolved at query time instead of
// being maintained as hand-written back-reference lists.
type Genre struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name" example:"Drama"`
	Movies    []Movie   `gorm:"many2many:movie_genres" json:"movies,omitempty"`
	Series    []Serie   `gorm:"many2many:serie_genres" json:"series,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Genre) TableName() string {
	return "genres"
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
