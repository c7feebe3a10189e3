package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
)

// Subscription mirrors the provider-side subscription for one user. The
// stripe ids are opaque foreign keys into Stripe.
type Subscription struct {
	ID                       uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   uuid.UUID          `gorm:"type:uuid;index;not null" json:"userId"`
	PlanID                   uuid.UUID          `gorm:"type:uuid;not null" json:"planId"`
	Plan                     *Plan              `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	StripeSubscriptionID     string             `gorm:"not null" json:"stripeSubscriptionId"`
	StripeSubscriptionItemID string             `json:"stripeSubscriptionItemId,omitempty"`
	Status                   SubscriptionStatus `gorm:"default:active" json:"status"`
	StartDate                time.Time          `json:"startDate"`
	EndDate                  time.Time          `json:"endDate"`
	CreatedAt                time.Time          `json:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
