package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentType tags a collection item as referencing either a movie or a
// serie. Resolution happens in the collection service, which looks the item
// up in the matching store.
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeSerie ContentType = "serie"
)

func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeSerie
}

// Collection is a curated, ordered list of mixed movie/serie references.
type Collection struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string           `gorm:"not null" json:"name" example:"Staff Picks"`
	Items     []CollectionItem `gorm:"foreignKey:CollectionID" json:"items,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}

func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CollectionItem struct {
	CollectionID uuid.UUID   `gorm:"type:uuid;primaryKey" json:"-"`
	Position     int         `gorm:"primaryKey;autoIncrement:false" json:"position"`
	ContentID    uuid.UUID   `gorm:"type:uuid;not null" json:"contentId"`
	ContentType  ContentType `gorm:"not null" json:"contentType"`
}

func (CollectionItem) TableName() string {
	return "collection_items"
}
