package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mhafidzn/daftarin/internal/helpers"
	"github.com/mhafidzn/daftarin/internal/models"
)

type LoginCheckRequest struct {
	Slug       string    `json:"slug" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	FullName   string    `json:"fullName"`
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
}

// LoginCheck is called right after the client finishes external
// authentication. It upserts the customer profile, resolves the event the
// client is visiting and returns everything the client needs to pick a
// screen: the registration window, whether this customer already holds a
// registration, and a session token for the protected endpoints.
func LoginCheck(c *gin.Context) {
	var req LoginCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields: slug, email, or customerId.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var customer models.Customer
	err := gormDB.Where("id = ?", req.CustomerID).First(&customer).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		customer = models.Customer{
			ID:       req.CustomerID,
			Email:    req.Email,
			FullName: req.FullName,
		}
		if err := gormDB.Create(&customer).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer.")
			return
		}
	case err != nil:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving customer.")
		return
	default:
		customer.Email = req.Email
		if req.FullName != "" {
			customer.FullName = req.FullName
		}
		if err := gormDB.Save(&customer).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer.")
			return
		}
	}

	var event models.Event
	if err := gormDB.Preload("Group").Where("slug = ?", req.Slug).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	var registration models.EventRegistration
	isRegistered := gormDB.
		Where("customer_id = ? AND event_id = ?", customer.ID, event.ID).
		First(&registration).Error == nil

	window := event.Window(time.Now())

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": customer.ID.String(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"event":    event,
		"registrationStatus": gin.H{
			"isRegistered": isRegistered,
			"isStarted":    window.IsStarted,
			"isEnded":      window.IsEnded,
			"isActive":     window.IsActive,
		},
		"token": tokenString,
	})
}
