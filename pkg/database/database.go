package database

import (
	"fmt"
	"log"

	"github.com/SaideLeon/nativespeak-api/internal/config"
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when migrate is set, applies the
// schema with AutoMigrate.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Unit{},
		&model.Theme{},
		&model.Topic{},
		&model.VocabularyItem{},
		&model.GrammarContent{},
		&model.GrammarExample{},
		&model.DialogueContent{},
		&model.DialogueLine{},
		&model.ExampleBox{},
		&model.Exercise{},
		&model.Question{},
		&model.Answer{},
		&model.FillBlankAnswer{},
		&model.ExerciseSubmission{},
		&model.QuestionResponse{},
		&model.StudentProgress{},
		&model.Goal{},
		&model.UserProfile{},
		&model.LessonProgress{},
		&model.Achievement{},
		&model.LocalConfig{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
