package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is an authenticated attendee. The ID is the subject asserted by
// the external auth provider, so there is no BeforeCreate hook here.
type Customer struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Email         string              `gorm:"not null;index" json:"email"`
	FullName      string              `json:"fullName"`
	PhoneNumber   string              `json:"phoneNumber"`
	Registrations []EventRegistration `gorm:"foreignKey:CustomerID" json:"registrations,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`
}
