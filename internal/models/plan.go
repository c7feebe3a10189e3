package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan mirrors a billing-provider price. StripePlanID is an opaque foreign
// key into Stripe.
type Plan struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StripePlanID string    `gorm:"not null;index" json:"stripePlanId"`
	Name         string    `gorm:"not null" json:"name" example:"Premium"`
	Price        float64   `gorm:"not null" json:"price" example:"9.99"`
	Interval     string    `gorm:"not null" json:"interval" example:"month"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}

func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
