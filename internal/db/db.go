package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RanjitKuMallick/BitCrave/internal/config"
	"github.com/RanjitKuMallick/BitCrave/internal/infra/repository"
	"github.com/RanjitKuMallick/BitCrave/internal/models"
)

// One table, one active reservation per slot. Cancelled rows do not
// hold the table, so the index only covers active statuses. The name
// must match the constraint the repository checks on insert conflicts.
var slotIndexDDL = fmt.Sprintf(`
        CREATE UNIQUE INDEX IF NOT EXISTS %s
        ON reservations (date, time, table_number)
        WHERE status <> 'Cancelled' AND table_number <> ''
    `, repository.SlotTableConstraint)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Table{},
		&models.Reservation{},
		&models.Staff{},
		&models.StaffTableAssignment{},
		&models.Admin{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Running without the slot index would let concurrent creates
	// double-book a table, so a failed DDL is fatal.
	if err := db.Exec(slotIndexDDL).Error; err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	seedTables(db)

	return db
}

// seedTables bootstraps the physical floor plan on an empty registry:
// five two-tops, five four-tops, a six and an eight.
func seedTables(db *gorm.DB) {
	var count int64
	db.Model(&models.Table{}).Count(&count)
	if count > 0 {
		return
	}

	tables := []models.Table{
		{TableNumber: "T1", Capacity: 2, Location: "Window"},
		{TableNumber: "T2", Capacity: 2, Location: "Window"},
		{TableNumber: "T3", Capacity: 2, Location: "Main Hall"},
		{TableNumber: "T4", Capacity: 2, Location: "Main Hall"},
		{TableNumber: "T5", Capacity: 2, Location: "Patio"},
		{TableNumber: "T6", Capacity: 4, Location: "Main Hall"},
		{TableNumber: "T7", Capacity: 4, Location: "Main Hall"},
		{TableNumber: "T8", Capacity: 4, Location: "Patio"},
		{TableNumber: "T9", Capacity: 4, Location: "Patio"},
		{TableNumber: "T10", Capacity: 4, Location: "Window"},
		{TableNumber: "T11", Capacity: 6, Location: "Private Room"},
		{TableNumber: "T12", Capacity: 8, Location: "Private Room"},
	}

	for i := range tables {
		tables[i].Status = models.TableAvailable
	}

	if err := db.Create(&tables).Error; err != nil {
		log.Printf("failed to seed tables: %v", err)
	}
}
