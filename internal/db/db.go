package db

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nbraces/raceindex/internal/models"
)

var conn *gorm.DB

// Init opens (creating if absent) the sqlite database at path and runs the
// idempotent schema migration for the four core tables.
func Init(path string) error {
	var err error
	conn, err = gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Admin{},
		&models.Race{},
		&models.Feedback{},
		&models.Suggestion{},
	); err != nil {
		return err
	}

	// Composite index that GORM doesn't auto-create from struct tags;
	// the search listing filters and sorts on these together.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_races_state_date ON races(location_state, date)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_feedback_race_approved ON feedbacks(race_id, approved)")

	return nil
}

func Conn() *gorm.DB {
	return conn
}

// SeedAdmin creates the single admin account if no row with that email
// exists yet. An existing row is never touched, so a password change in
// the environment does not silently rewrite the stored hash.
func SeedAdmin(email, password string) error {
	var admin models.Admin
	err := conn.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return conn.Create(&models.Admin{Email: email, Hash: string(hash)}).Error
}
