package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhafidzn/daftarin/internal/helpers"
	"github.com/mhafidzn/daftarin/internal/models"
)

// ListRegistrationSteps returns the ordered form definition for an event:
// every live step with its live questions and seat configs. An event with
// no steps yields an empty list, not an error.
func ListRegistrationSteps(c *gin.Context) {
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

	steps := []models.RegistrationStep{}
	err = gormDB.
		Where("event_id = ?", eventID).
		Order("order_priority ASC, created_at ASC").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_priority ASC, created_at ASC")
		}).
		Preload("SeatConfigs").
		Find(&steps).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving registration steps.")
		return
	}

	c.JSON(http.StatusOK, steps)
}
