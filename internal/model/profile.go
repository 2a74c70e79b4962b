package model

import (
	"encoding/json"
	"time"
)

// UserProfile holds the client-synced profile counters, one row per user.
type UserProfile struct {
	BaseModel
	UserID                uint   `gorm:"uniqueIndex;not null" json:"userId"`
	TotalConversationTime int    `gorm:"default:0" json:"totalConversationTime"` // seconds
	CompletedLessons      int    `gorm:"default:0" json:"completedLessons"`
	Credits               int    `gorm:"default:0" json:"credits"`
	Avatar                string `gorm:"size:50" json:"avatar"`
	Theme                 string `gorm:"size:30;default:'default'" json:"theme"`
	WantsToBeAdmin        bool   `gorm:"default:false" json:"wantsToBeAdmin"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// LessonProgress is the client-side lesson position, replaced wholesale on sync.
type LessonProgress struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex:idx_user_topic;not null" json:"userId"`
	Topic       string `gorm:"uniqueIndex:idx_user_topic;size:100;not null" json:"topic"`
	CurrentStep int    `gorm:"default:1" json:"currentStep"`
	Completed   bool   `gorm:"default:false" json:"completed"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// Achievement is an unlocked badge.
type Achievement struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	UnlockedAt  time.Time `gorm:"not null" json:"unlockedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// LocalConfig is an opaque client setting, keyed per user.
type LocalConfig struct {
	BaseModel
	UserID uint            `gorm:"uniqueIndex:idx_user_key;not null" json:"userId"`
	Key    string          `gorm:"uniqueIndex:idx_user_key;size:100;not null" json:"key"`
	Value  json.RawMessage `gorm:"type:json" json:"value"`
}

func (LocalConfig) TableName() string {
	return "local_configs"
}
