package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhafidzn/daftarin/internal/helpers"
	"github.com/mhafidzn/daftarin/internal/models"
)

func GetEvent(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Slug is required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Group").Where("slug = ?", slug).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}
