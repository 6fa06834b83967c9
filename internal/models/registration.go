package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RegistrationStatusActive = "active"

// EventRegistration holds one customer's registration for one event. The
// unique index on (customer_id, event_id) is what makes concurrent
// submissions collapse into a single row; QRCodeData is minted once at
// creation and must never change afterwards, since it identifies the
// attendee at check-in.
type EventRegistration struct {
	ID             uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_customer_event" json:"customerId"`
	Customer       *Customer             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	EventID        uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_customer_event" json:"eventId"`
	Event          *Event                `gorm:"foreignKey:EventID" json:"event,omitempty"`
	ClaimSeatValue string                `json:"claimSeatValue"`
	QRCodeData     string                `gorm:"not null" json:"qrCodeData"`
	Status         string                `gorm:"not null;default:'active'" json:"status"`
	Answers        []QuestionnaireAnswer `gorm:"foreignKey:RegistrationID" json:"answers,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func (registration *EventRegistration) BeforeCreate(tx *gorm.DB) (err error) {
	if registration.ID == uuid.Nil {
		registration.ID = uuid.New()
	}
	return
}

// QuestionnaireAnswer rows are hard-deleted and rewritten as a set on every
// resubmission, so they carry no soft-delete marker.
type QuestionnaireAnswer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RegistrationID uuid.UUID `gorm:"type:uuid;not null;index" json:"registrationId"`
	QuestionID     uuid.UUID `gorm:"type:uuid;not null" json:"questionId"`
	AnswerValue    string    `json:"answerValue"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (answer *QuestionnaireAnswer) BeforeCreate(tx *gorm.DB) (err error) {
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	return
}
