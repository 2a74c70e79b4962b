package service

import (
	"errors"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/SaideLeon/nativespeak-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressService recomputes per-(student, unit) completion from the
// submission history. A unit counts an exercise as completed once the student
// has at least one submission for it, regardless of score.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	UnitRepo     *repository.UnitRepository
	DB           *gorm.DB
}

func NewProgressService(progressRepo *repository.ProgressRepository, unitRepo *repository.UnitRepository, db *gorm.DB) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		UnitRepo:     unitRepo,
		DB:           db,
	}
}

// Update recomputes the student's progress for one unit and returns the
// stored row.
func (s *ProgressService) Update(studentID, unitID uint) (*model.StudentProgress, error) {
	if _, err := s.UnitRepo.FindByID(unitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnitNotFound
		}
		return nil, err
	}

	var progress *model.StudentProgress
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		progress, err = s.updateInTx(tx, studentID, unitID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// Get returns the student's progress row for one unit, creating it at 0% on
// first read.
func (s *ProgressService) Get(studentID, unitID uint) (*model.StudentProgress, error) {
	if _, err := s.UnitRepo.FindByID(unitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnitNotFound
		}
		return nil, err
	}
	return s.ProgressRepo.GetOrCreate(s.DB, studentID, unitID)
}

// List returns all of the student's progress rows, newest first.
func (s *ProgressService) List(studentID uint) ([]model.StudentProgress, error) {
	return s.ProgressRepo.ListByStudent(studentID)
}

// updateInTx runs the recomputation inside the caller's transaction so the
// grading flow can commit submission and progress together.
func (s *ProgressService) updateInTx(tx *gorm.DB, studentID, unitID uint) (*model.StudentProgress, error) {
	progress, err := s.ProgressRepo.GetOrCreate(tx, studentID, unitID)
	if err != nil {
		return nil, err
	}

	total, err := countUnitExercises(tx, unitID)
	if err != nil {
		return nil, err
	}
	completed, err := countCompletedExercises(tx, studentID, unitID)
	if err != nil {
		return nil, err
	}

	if !applyCompletion(progress, completed, total, time.Now()) {
		return progress, nil
	}

	if err := s.ProgressRepo.Save(tx, progress); err != nil {
		return nil, err
	}
	logger.Log.Debug("progress updated",
		zap.Uint("student_id", studentID),
		zap.Uint("unit_id", unitID),
		zap.Int("completion", progress.CompletionPercentage))
	return progress, nil
}

// applyCompletion folds the counts into the row and reports whether it
// changed. A unit with no exercises leaves the row untouched. The completion
// stamp is one-way: once set it never clears, even if exercises are added
// later and the percentage drops.
func applyCompletion(p *model.StudentProgress, completed, total int, now time.Time) bool {
	if total == 0 {
		return false
	}

	pct := completed * 100 / total
	if pct > 100 {
		pct = 100
	}

	changed := false
	if p.CompletionPercentage != pct {
		p.CompletionPercentage = pct
		changed = true
	}
	if pct == 100 && p.CompletedAt == nil {
		p.CompletedAt = &now
		changed = true
	}
	return changed
}

// countUnitExercises counts every exercise reachable under the unit.
func countUnitExercises(tx *gorm.DB, unitID uint) (int, error) {
	var count int64
	err := tx.Model(&model.Exercise{}).
		Joins("JOIN topics ON topics.id = exercises.topic_id").
		Joins("JOIN themes ON themes.id = topics.theme_id").
		Where("themes.unit_id = ?", unitID).
		Count(&count).Error
	return int(count), err
}

// countCompletedExercises counts the distinct unit exercises the student has
// submitted at least once.
func countCompletedExercises(tx *gorm.DB, studentID, unitID uint) (int, error) {
	var count int64
	err := tx.Model(&model.ExerciseSubmission{}).
		Joins("JOIN exercises ON exercises.id = exercise_submissions.exercise_id").
		Joins("JOIN topics ON topics.id = exercises.topic_id").
		Joins("JOIN themes ON themes.id = topics.theme_id").
		Where("exercise_submissions.student_id = ? AND themes.unit_id = ?", studentID, unitID).
		Distinct("exercise_submissions.exercise_id").
		Count(&count).Error
	return int(count), err
}
