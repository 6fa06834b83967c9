package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mhafidzn/daftarin/internal/middleware"
	"github.com/mhafidzn/daftarin/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect database")

	err = db.AutoMigrate(
		&models.EventGroup{},
		&models.Event{},
		&models.RegistrationStep{},
		&models.ClaimSeatConfig{},
		&models.QuestionnaireQuestion{},
		&models.Customer{},
		&models.EventRegistration{},
		&models.QuestionnaireAnswer{},
	)
	require.NoError(t, err, "failed to migrate schema")

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/api")
	{
		public.POST("/auth/login-check", LoginCheck)
		public.GET("/events/:slug", GetEvent)
		public.GET("/registration-steps/:eventId", ListRegistrationSteps)
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.PATCH("/customers/update", UpdateCustomer)
		protected.POST("/events/register", RegisterForEvent)
		protected.GET("/registrations/:eventId", GetRegistration)
		protected.GET("/registrations/:eventId/qr", GetRegistrationQR)
	}

	return r
}

func createTestEvent(t *testing.T, db *gorm.DB) models.Event {
	t.Helper()

	group := models.EventGroup{
		GroupName:         "Test Group",
		Slug:              "test-group-" + uuid.NewString(),
		LockToSingleEvent: true,
	}
	require.NoError(t, db.Create(&group).Error)

	event := models.Event{
		GroupID:  group.ID,
		Slug:     "test-event-" + uuid.NewString(),
		Title:    "Test Event",
		IsActive: true,
	}
	require.NoError(t, db.Create(&event).Error)

	return event
}

func createTestCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()

	customer := models.Customer{
		ID:       uuid.New(),
		Email:    "attendee@example.com",
		FullName: "Test Attendee",
	}
	require.NoError(t, db.Create(&customer).Error)

	return customer
}

func signTestToken(t *testing.T, customerID uuid.UUID) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": customerID.String(),
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)

	return signed
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response is not valid JSON: %s", w.Body.String())
	return body
}
