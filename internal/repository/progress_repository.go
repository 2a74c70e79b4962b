package repository

import (
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"gorm.io/gorm"
)

// ProgressRepository handles per-(student, unit) completion state.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// GetOrCreate returns the progress row for (student, unit), creating it at 0%
// when absent.
func (r *ProgressRepository) GetOrCreate(tx *gorm.DB, studentID, unitID uint) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := tx.Where("student_id = ? AND unit_id = ?", studentID, unitID).
		Attrs(model.StudentProgress{
			StudentID: studentID,
			UnitID:    unitID,
			StartedAt: time.Now(),
		}).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Save writes the recomputed percentage and, when set, the completion stamp.
func (r *ProgressRepository) Save(tx *gorm.DB, progress *model.StudentProgress) error {
	return tx.Model(&model.StudentProgress{}).
		Where("id = ?", progress.ID).
		Updates(map[string]interface{}{
			"completion_percentage": progress.CompletionPercentage,
			"completed_at":          progress.CompletedAt,
			"updated_at":            time.Now(),
		}).Error
}

// ListByStudent returns all progress rows of a student, newest first.
func (r *ProgressRepository) ListByStudent(studentID uint) ([]model.StudentProgress, error) {
	var rows []model.StudentProgress
	err := r.DB.
		Preload("Unit").
		Where("student_id = ?", studentID).
		Order("started_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) Recent(studentID uint, limit int) ([]model.StudentProgress, error) {
	var rows []model.StudentProgress
	err := r.DB.
		Preload("Unit").
		Where("student_id = ?", studentID).
		Order("started_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) CountCompleted(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentProgress{}).
		Where("student_id = ? AND completion_percentage = 100", studentID).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountInProgress(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentProgress{}).
		Where("student_id = ? AND completion_percentage > 0 AND completion_percentage < 100", studentID).
		Count(&count).Error
	return count, err
}
