package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Avatar         string        `gorm:"type:text" json:"avatar,omitempty"`
	Username       string        `gorm:"not null" json:"username"`
	Email          string        `gorm:"uniqueIndex;not null" json:"email"`
	Password       string        `gorm:"not null" json:"-"`
	IsSubscribed   bool          `json:"isSubscribed"`
	SubscriptionID *uuid.UUID    `gorm:"type:uuid" json:"subscription,omitempty"`
	Subscription   *Subscription `gorm:"foreignKey:SubscriptionID" json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
