package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mhafidzn/daftarin/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SeedDemo   bool
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		SeedDemo:   os.Getenv("SEED_DEMO") == "true",
	}, nil
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

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
	if err != nil {
		return nil, err
	}

	if cfg.SeedDemo {
		seedDemoEvent(db)
	}

	return db, nil
}

func seedDemoEvent(db *gorm.DB) {
	var existing models.Event
	if result := db.Where("slug = ?", "demo-gathering").First(&existing); result.Error == nil {
		return
	}

	group := models.EventGroup{
		GroupName:         "Community Gathering 2026",
		Slug:              "community-2026",
		LockToSingleEvent: true,
	}
	db.Create(&group)

	startAt := time.Now()
	endAt := startAt.Add(7 * 24 * time.Hour)
	event := models.Event{
		GroupID:  group.ID,
		Slug:     "demo-gathering",
		Title:    "Demo Community Gathering",
		StartAt:  &startAt,
		EndAt:    &endAt,
		IsActive: true,
	}
	db.Create(&event)

	claimStep := models.RegistrationStep{
		EventID:       event.ID,
		Title:         "Resident Information",
		Description:   "Pick the block you live in, then fill in the block and room numbers.",
		StepType:      models.StepTypeClaimSeat,
		OrderPriority: 1,
	}
	db.Create(&claimStep)

	db.Create(&[]models.ClaimSeatConfig{
		{StepID: claimStep.ID, Label: "Block Name", InputType: "select", Options: `["AA","BB","CC","DD"]`},
		{StepID: claimStep.ID, Label: "Block Number", InputType: "text", Placeholder: "e.g. CC7"},
		{StepID: claimStep.ID, Label: "Room Number", InputType: "select", Options: `["Room 1","Room 2","Room 3","Room 4"]`},
	})

	questionStep := models.RegistrationStep{
		EventID:       event.ID,
		Title:         "Contact Details",
		Description:   "Tell us how to reach the person managing your block.",
		StepType:      models.StepTypeQuestionnaire,
		OrderPriority: 2,
	}
	db.Create(&questionStep)

	db.Create(&[]models.QuestionnaireQuestion{
		{StepID: questionStep.ID, Label: "Manager Name", InputType: "text", IsRequired: true, OrderPriority: 1},
		{StepID: questionStep.ID, Label: "Manager Phone Number", InputType: "text", IsRequired: true, OrderPriority: 2},
	})
}
