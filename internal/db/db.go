package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Speakmu/whatsapp-bot-agendamento/internal/config"
	"github.com/Speakmu/whatsapp-bot-agendamento/internal/models"
)

// NewDB abre o Postgres do backend alternativo do registro de
// agendamentos. Só é chamado quando DATABASE_URL está configurada.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
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

	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
