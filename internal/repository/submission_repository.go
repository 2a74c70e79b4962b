package repository

import (
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"gorm.io/gorm"
)

// SubmissionRepository handles graded exercise submissions and their
// per-question responses.
type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// Create persists a submission together with its responses. gorm inserts the
// association rows in the same transaction, so either everything lands or
// nothing does.
func (r *SubmissionRepository) Create(tx *gorm.DB, submission *model.ExerciseSubmission) error {
	return tx.Create(submission).Error
}

func (r *SubmissionRepository) FindByID(id string) (*model.ExerciseSubmission, error) {
	var submission model.ExerciseSubmission
	err := r.DB.
		Preload("Exercise").
		Preload("Responses").
		Where("id = ?", id).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListByStudent returns a student's submissions, newest first, optionally
// filtered by exercise or by owning unit.
func (r *SubmissionRepository) ListByStudent(studentID uint, exerciseID, unitID uint) ([]model.ExerciseSubmission, error) {
	var submissions []model.ExerciseSubmission
	q := r.DB.
		Preload("Exercise").
		Preload("Responses").
		Where("exercise_submissions.student_id = ?", studentID).
		Order("exercise_submissions.submitted_at DESC")
	if exerciseID != 0 {
		q = q.Where("exercise_submissions.exercise_id = ?", exerciseID)
	}
	if unitID != 0 {
		q = q.Joins("JOIN exercises ON exercises.id = exercise_submissions.exercise_id").
			Joins("JOIN topics ON topics.id = exercises.topic_id").
			Joins("JOIN themes ON themes.id = topics.theme_id").
			Where("themes.unit_id = ?", unitID)
	}
	err := q.Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) Recent(studentID uint, limit int) ([]model.ExerciseSubmission, error) {
	var submissions []model.ExerciseSubmission
	err := r.DB.
		Preload("Exercise").
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExerciseSubmission{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *SubmissionRepository) AverageScore(studentID uint) (float64, error) {
	var avg float64
	err := r.DB.Model(&model.ExerciseSubmission{}).
		Where("student_id = ?", studentID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error
	return avg, err
}

// TypeStats aggregates a student's submission count and average score for one
// exercise type.
func (r *SubmissionRepository) TypeStats(studentID uint, exerciseType model.ExerciseType) (int64, float64, error) {
	q := r.DB.Model(&model.ExerciseSubmission{}).
		Joins("JOIN exercises ON exercises.id = exercise_submissions.exercise_id").
		Where("exercise_submissions.student_id = ? AND exercises.exercise_type = ?", studentID, exerciseType)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var avg float64
	err := r.DB.Model(&model.ExerciseSubmission{}).
		Joins("JOIN exercises ON exercises.id = exercise_submissions.exercise_id").
		Where("exercise_submissions.student_id = ? AND exercises.exercise_type = ?", studentID, exerciseType).
		Select("COALESCE(AVG(exercise_submissions.score), 0)").
		Scan(&avg).Error
	return count, avg, err
}
