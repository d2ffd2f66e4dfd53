package config

import (
	"fmt"
	"log"
	"os"

	"jims/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Manila",
		host, user, password, name, port)
}

func ConnectDB() {
	var err error
	dsn := buildDSN()

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB creates or updates the tables at boot. No versioned
// migration tooling; AutoMigrate is idempotent.
func MigrateDB() {
	if err := DB.AutoMigrate(
		&models.Employee{},
		&models.AttendanceRecord{},
		&models.InventoryItem{},
		&models.SalesRecord{},
		&models.Category{},
		&models.GCashRecord{},
		&models.PayMayaRecord{},
		&models.JuanPayRecord{},
		&models.PayrollRecord{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
