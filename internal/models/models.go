package models

import (
	"gymtrack/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB global database instance
var DB *gorm.DB

// InitDB opens the sqlite database and migrates the schema.
func InitDB(cfg *config.Config) error {
	var err error

	DB, err = gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	return AutoMigrate(DB)
}

// AutoMigrate creates or updates the tables for all entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Exercise{},
		&Workout{},
		&WorkoutExercise{},
		&UserExerciseLog{},
	)
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
