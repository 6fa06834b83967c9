package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventGroup struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GroupName         string         `gorm:"not null" json:"groupName"`
	Slug              string         `gorm:"unique;not null" json:"slug"`
	LockToSingleEvent bool           `gorm:"not null;default:false" json:"lockToSingleEvent"`
	Events            []Event        `gorm:"foreignKey:GroupID" json:"events,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (group *EventGroup) BeforeCreate(tx *gorm.DB) (err error) {
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	return
}
