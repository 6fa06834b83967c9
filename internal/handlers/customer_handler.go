package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhafidzn/daftarin/internal/helpers"
	"github.com/mhafidzn/daftarin/internal/models"
)

type UpdateCustomerRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func UpdateCustomer(c *gin.Context) {
	customerID, exists := c.Get("customer_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in token.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Full name and phone number are required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var customer models.Customer
	if err := gormDB.Where("id = ?", customerID).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Customer not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving customer.")
		return
	}

	customer.FullName = req.FullName
	customer.PhoneNumber = req.PhoneNumber

	if err := gormDB.Save(&customer).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer.")
		return
	}

	c.JSON(http.StatusOK, customer)
}
