package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/breaking-byts/Life-Os-sub000/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Course{},
		&entities.CourseMeeting{},
		&entities.CalendarEvent{},
		&entities.Assignment{},
		&entities.Exam{},
		&entities.WeeklyTask{},
		&entities.WeekPlanBlock{},
		&entities.Setting{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
