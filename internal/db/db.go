package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barbershop-project/booking-api/internal/config"
	"github.com/barbershop-project/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Customer{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Índice único parcial: um slot (barbeiro, data, horário) só pode ter
	// um agendamento não cancelado. Cancelamento libera o horário. Sem
	// esse índice a única proteção contra corrida é o re-check da
	// transação, então subir sem ele não é aceitável.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointments_active_slot
        ON appointments (barber_id, date, time)
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create unique slot index")
	}

	return db
}
