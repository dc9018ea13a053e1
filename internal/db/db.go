package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/config"
	"github.com/clinicdesk/clinic-scheduler/internal/models"
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
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// At most one live appointment per (doctor, date, time). Cancelled rows
	// fall outside the index so the slot reopens.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
        ON appointments (doctor_id, date, time)
        WHERE status <> 'Cancelled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create live-slot index")
	}

	seedAdmin(db)

	return db
}

// seedAdmin makes sure the bootstrap admin account exists so a fresh
// deployment can log in and register doctors.
func seedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Patient{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Warn().Err(err).Msg("admin seed check failed")
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("admin seed hash failed")
		return
	}

	admin := models.Patient{
		Username:     "admin",
		FullName:     "Administrator",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Warn().Err(err).Msg("admin seed failed")
		return
	}
	log.Info().Msg("admin user created")
}
