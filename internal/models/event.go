package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	GroupID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"groupId"`
	Group     *EventGroup    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Slug      string         `gorm:"unique;not null" json:"slug"`
	Title     string         `gorm:"not null" json:"title"`
	StartAt   *time.Time     `json:"startAt"`
	EndAt     *time.Time     `json:"endAt"`
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

// RegistrationWindow reports whether an event accepts registrations at a
// given moment. An event with no StartAt is always started; an event with
// no EndAt never ends. EndAt is inclusive: the window closes strictly
// after EndAt passes.
type RegistrationWindow struct {
	IsStarted bool `json:"isStarted"`
	IsEnded   bool `json:"isEnded"`
	IsActive  bool `json:"isActive"`
}

func (event *Event) Window(now time.Time) RegistrationWindow {
	isStarted := event.StartAt == nil || !now.Before(*event.StartAt)
	isEnded := event.EndAt != nil && now.After(*event.EndAt)

	return RegistrationWindow{
		IsStarted: isStarted,
		IsEnded:   isEnded,
		IsActive:  event.IsActive && isStarted && !isEnded,
	}
}
