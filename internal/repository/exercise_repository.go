package repository

import (
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"gorm.io/gorm"
)

// ExerciseRepository covers exercises, their questions and answer keys.
type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

// List returns exercises, optionally filtered by topic and type.
func (r *ExerciseRepository) List(topicID uint, exerciseType model.ExerciseType) ([]model.Exercise, error) {
	var exercises []model.Exercise
	q := r.DB.
		Preload("Questions", orderClause).
		Preload("Questions.Answers", orderClause).
		Preload("Questions.FillBlank").
		Order("`order`")
	if topicID != 0 {
		q = q.Where("topic_id = ?", topicID)
	}
	if exerciseType != "" {
		q = q.Where("exercise_type = ?", exerciseType)
	}
	err := q.Find(&exercises).Error
	return exercises, err
}

// FindByIDForGrading loads an exercise with everything grading needs:
// questions in order, their options, and fill-blank keys where present.
func (r *ExerciseRepository) FindByIDForGrading(id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.
		Preload("Questions", orderClause).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Questions.FillBlank").
		First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// UnitIDFor resolves the unit owning an exercise through topic and theme.
func (r *ExerciseRepository) UnitIDFor(exerciseID uint) (uint, error) {
	var unitID uint
	err := r.DB.Model(&model.Exercise{}).
		Joins("JOIN topics ON topics.id = exercises.topic_id").
		Joins("JOIN themes ON themes.id = topics.theme_id").
		Where("exercises.id = ?", exerciseID).
		Select("themes.unit_id").
		Scan(&unitID).Error
	return unitID, err
}

func (r *ExerciseRepository) CreateExercise(exercise *model.Exercise) error {
	return r.DB.Create(exercise).Error
}

func (r *ExerciseRepository) UpdateExercise(exercise *model.Exercise) error {
	return r.DB.Save(exercise).Error
}

func (r *ExerciseRepository) DeleteExercise(id uint) error {
	return r.DB.Delete(&model.Exercise{}, id).Error
}

func (r *ExerciseRepository) CreateQuestion(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *ExerciseRepository) UpdateQuestion(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *ExerciseRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *ExerciseRepository) CreateAnswer(answer *model.Answer) error {
	return r.DB.Create(answer).Error
}

func (r *ExerciseRepository) UpdateAnswer(answer *model.Answer) error {
	return r.DB.Save(answer).Error
}

func (r *ExerciseRepository) DeleteAnswer(id uint) error {
	return r.DB.Delete(&model.Answer{}, id).Error
}

// UpsertFillBlank creates or replaces the fill-blank key of a question.
func (r *ExerciseRepository) UpsertFillBlank(key *model.FillBlankAnswer) error {
	var existing model.FillBlankAnswer
	err := r.DB.Where("question_id = ?", key.QuestionID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(key).Error
	}
	if err != nil {
		return err
	}
	key.ID = existing.ID
	return r.DB.Save(key).Error
}
