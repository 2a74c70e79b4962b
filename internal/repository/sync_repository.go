package repository

import (
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"gorm.io/gorm"
)

// SyncRepository handles the client-synced rows: profile, lesson positions,
// achievements and opaque configs.
type SyncRepository struct {
	DB *gorm.DB
}

func NewSyncRepository(db *gorm.DB) *SyncRepository {
	return &SyncRepository{DB: db}
}

// GetOrCreateProfile returns the user's profile row, creating it on first use.
func (r *SyncRepository) GetOrCreateProfile(tx *gorm.DB, userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := tx.Where("user_id = ?", userID).
		Attrs(model.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *SyncRepository) SaveProfile(tx *gorm.DB, profile *model.UserProfile) error {
	return tx.Save(profile).Error
}

func (r *SyncRepository) ListLessons(userID uint) ([]model.LessonProgress, error) {
	var lessons []model.LessonProgress
	err := r.DB.Where("user_id = ?", userID).Order("topic").Find(&lessons).Error
	return lessons, err
}

func (r *SyncRepository) ListAchievements(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).Order("unlocked_at").Find(&achievements).Error
	return achievements, err
}

func (r *SyncRepository) ListConfigs(userID uint) ([]model.LocalConfig, error) {
	var configs []model.LocalConfig
	err := r.DB.Where("user_id = ?", userID).Order("`key`").Find(&configs).Error
	return configs, err
}

// ReplaceLessons drops the user's lesson rows and inserts the provided set.
// Last write wins; the caller runs this inside a transaction.
func (r *SyncRepository) ReplaceLessons(tx *gorm.DB, userID uint, lessons []model.LessonProgress) error {
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.LessonProgress{}).Error; err != nil {
		return err
	}
	for i := range lessons {
		lessons[i].ID = 0
		lessons[i].UserID = userID
		if err := tx.Create(&lessons[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *SyncRepository) ReplaceAchievements(tx *gorm.DB, userID uint, achievements []model.Achievement) error {
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.Achievement{}).Error; err != nil {
		return err
	}
	for i := range achievements {
		achievements[i].ID = 0
		achievements[i].UserID = userID
		if err := tx.Create(&achievements[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *SyncRepository) ReplaceConfigs(tx *gorm.DB, userID uint, configs []model.LocalConfig) error {
	if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&model.LocalConfig{}).Error; err != nil {
		return err
	}
	for i := range configs {
		configs[i].ID = 0
		configs[i].UserID = userID
		if err := tx.Create(&configs[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
