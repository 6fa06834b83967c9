package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mhafidzn/daftarin/internal/helpers"
	"github.com/mhafidzn/daftarin/internal/models"
)

type QuestionnaireAnswerInput struct {
	QuestionID  uuid.UUID   `json:"questionId" binding:"required"`
	AnswerValue interface{} `json:"answerValue"`
}

type RegisterRequest struct {
	EventID              uuid.UUID                  `json:"eventId" binding:"required"`
	ClaimSeatValue       string                     `json:"claimSeatValue"`
	QuestionnaireAnswers []QuestionnaireAnswerInput `json:"questionnaireAnswers"`
}

// RegisterForEvent creates or updates the caller's registration for an
// event. The row is keyed by (customer_id, event_id): a resubmission
// updates the seat claim and status in place and keeps the original
// QRCodeData. Supplied answers fully replace the previous set; the upsert
// and the replace run in one transaction so a failed insert cannot leave
// the registration half-written.
func RegisterForEvent(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event ID is required.")
		return
	}

	customerID, exists := c.Get("customer_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	checkInCode, err := helpers.GenerateCheckInCode()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate check-in code.")
		return
	}

	var registration models.EventRegistration
	err = gormDB.Transaction(func(tx *gorm.DB) error {
		// The conflict target is the (customer_id, event_id) unique index,
		// so two concurrent submissions resolve to one row. QRCodeData is
		// deliberately absent from the update assignments.
		candidate := models.EventRegistration{
			CustomerID:     customerID.(uuid.UUID),
			EventID:        req.EventID,
			ClaimSeatValue: req.ClaimSeatValue,
			QRCodeData:     checkInCode,
			Status:         models.RegistrationStatusActive,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}, {Name: "event_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"claim_seat_value": req.ClaimSeatValue,
				"status":           models.RegistrationStatusActive,
				"updated_at":       time.Now(),
			}),
		}).Create(&candidate).Error
		if err != nil {
			return err
		}

		if err := tx.
			Where("customer_id = ? AND event_id = ?", customerID, req.EventID).
			First(&registration).Error; err != nil {
			return err
		}

		if req.QuestionnaireAnswers == nil {
			return nil
		}

		if err := tx.
			Where("registration_id = ?", registration.ID).
			Delete(&models.QuestionnaireAnswer{}).Error; err != nil {
			return err
		}

		if len(req.QuestionnaireAnswers) == 0 {
			return nil
		}

		answers := make([]models.QuestionnaireAnswer, 0, len(req.QuestionnaireAnswers))
		for _, input := range req.QuestionnaireAnswers {
			answers = append(answers, models.QuestionnaireAnswer{
				RegistrationID: registration.ID,
				QuestionID:     input.QuestionID,
				AnswerValue:    fmt.Sprint(input.AnswerValue),
			})
		}
		return tx.Create(&answers).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save registration.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"registration": registration,
	})
}

func GetRegistration(c *gin.Context) {
	customerID, exists := c.Get("customer_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in token.")
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var registration models.EventRegistration
	err = gormDB.
		Preload("Answers").
		Where("customer_id = ? AND event_id = ?", customerID, eventID).
		First(&registration).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Registration not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving registration.")
		return
	}

	c.JSON(http.StatusOK, registration)
}

// GetRegistrationQR renders the caller's stable check-in code as a PNG for
// the event-day gate scanner.
func GetRegistrationQR(c *gin.Context) {
	customerID, exists := c.Get("customer_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in token.")
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var registration models.EventRegistration
	err = gormDB.
		Where("customer_id = ? AND event_id = ?", customerID, eventID).
		First(&registration).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Registration not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving registration.")
		return
	}

	qrImage, err := qrcode.Encode(registration.QRCodeData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
