package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StepTypeClaimSeat     = "claim_seat"
	StepTypeQuestionnaire = "questionnaire"
)

type RegistrationStep struct {
	ID            uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	EventID       uuid.UUID               `gorm:"type:uuid;not null;index" json:"eventId"`
	Title         string                  `gorm:"not null" json:"title"`
	Description   string                  `json:"description"`
	StepType      string                  `gorm:"not null" json:"stepType"`
	OrderPriority int                     `gorm:"not null;default:0" json:"orderPriority"`
	Questions     []QuestionnaireQuestion `gorm:"foreignKey:StepID" json:"questions"`
	SeatConfigs   []ClaimSeatConfig       `gorm:"foreignKey:StepID" json:"seatConfigs"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt          `gorm:"index" json:"-"`
}

func (step *RegistrationStep) BeforeCreate(tx *gorm.DB) (err error) {
	if step.ID == uuid.Nil {
		step.ID = uuid.New()
	}
	return
}

// ClaimSeatConfig describes one structured input of a claim_seat step.
// Options holds a JSON-encoded array of choices for select inputs.
type ClaimSeatConfig struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StepID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"stepId"`
	Label       string         `gorm:"not null" json:"label"`
	InputType   string         `gorm:"not null" json:"inputType"`
	Options     string         `json:"options"`
	Placeholder string         `json:"placeholder"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (config *ClaimSeatConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if config.ID == uuid.Nil {
		config.ID = uuid.New()
	}
	return
}

type QuestionnaireQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StepID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"stepId"`
	Label         string         `gorm:"not null" json:"label"`
	InputType     string         `gorm:"not null" json:"inputType"`
	IsRequired    bool           `gorm:"not null;default:false" json:"isRequired"`
	OrderPriority int            `gorm:"not null;default:0" json:"orderPriority"`
	Description   string         `json:"description"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (question *QuestionnaireQuestion) BeforeCreate(tx *gorm.DB) (err error) {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	return
}
