package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/SaideLeon/nativespeak-api/pkg/monitoring"
	"gorm.io/gorm"
)

// GradingService scores one exercise submission against the stored answer
// keys and persists the result. The submission, its responses and the
// progress recomputation commit as one transaction.
type GradingService struct {
	ExerciseRepo   *repository.ExerciseRepository
	SubmissionRepo *repository.SubmissionRepository
	Progress       *ProgressService
	DB             *gorm.DB
}

func NewGradingService(exerciseRepo *repository.ExerciseRepository, submissionRepo *repository.SubmissionRepository, progress *ProgressService, db *gorm.DB) *GradingService {
	return &GradingService{
		ExerciseRepo:   exerciseRepo,
		SubmissionRepo: submissionRepo,
		Progress:       progress,
		DB:             db,
	}
}

// QuestionResult is the per-question outcome returned to the client.
type QuestionResult struct {
	QuestionID    uint    `json:"question_id"`
	IsCorrect     bool    `json:"is_correct"`
	PointsEarned  int     `json:"points_earned"`
	Explanation   string  `json:"explanation"`
	CorrectAnswer *string `json:"correct_answer"`
}

// SubmissionResult is the full grading outcome of one submission.
type SubmissionResult struct {
	Success      bool             `json:"success"`
	SubmissionID string           `json:"submission_id"`
	Score        int              `json:"score"`
	MaxScore     int              `json:"max_score"`
	Percentage   float64          `json:"percentage"`
	Responses    []QuestionResult `json:"responses"`
}

// Grade scores the student's answers for one exercise. Missing or malformed
// per-question answers degrade to incorrect; only an unknown exercise or a
// negative timeSpent is an error.
func (s *GradingService) Grade(studentID, exerciseID uint, answers map[string]string, timeSpent int) (*SubmissionResult, error) {
	if timeSpent < 0 {
		return nil, util.ErrInvalidTimeSpent
	}

	exercise, err := s.ExerciseRepo.FindByIDForGrading(exerciseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}

	score, maxScore, responses, results := gradeQuestions(exercise, answers)

	submission := &model.ExerciseSubmission{
		StudentID:   studentID,
		ExerciseID:  exercise.ID,
		Score:       score,
		MaxScore:    maxScore,
		TimeSpent:   timeSpent,
		SubmittedAt: time.Now(),
		Responses:   responses,
	}

	unitID, err := s.ExerciseRepo.UnitIDFor(exercise.ID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.SubmissionRepo.Create(tx, submission); err != nil {
			return err
		}
		if unitID != 0 {
			if _, err := s.Progress.updateInTx(tx, studentID, unitID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues(string(exercise.ExerciseType)).Inc()

	return &SubmissionResult{
		Success:      true,
		SubmissionID: submission.ID,
		Score:        score,
		MaxScore:     maxScore,
		Percentage:   percentage(score, maxScore),
		Responses:    results,
	}, nil
}

// ListSubmissions returns the student's own submissions, optionally filtered
// by exercise or unit.
func (s *GradingService) ListSubmissions(studentID, exerciseID, unitID uint) ([]model.ExerciseSubmission, error) {
	return s.SubmissionRepo.ListByStudent(studentID, exerciseID, unitID)
}

// GetSubmission returns one submission. Students only see their own;
// teachers and admins see any.
func (s *GradingService) GetSubmission(id string, requesterID uint, role model.UserRole) (*model.ExerciseSubmission, error) {
	submission, err := s.SubmissionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	if submission.StudentID != requesterID && role == model.Student {
		return nil, util.ErrPermissionDenied
	}
	return submission, nil
}

// gradeQuestions walks the exercise's questions in order and scores each one.
// It always yields exactly one response per question.
func gradeQuestions(exercise *model.Exercise, answers map[string]string) (score, maxScore int, responses []model.QuestionResponse, results []QuestionResult) {
	responses = make([]model.QuestionResponse, 0, len(exercise.Questions))
	results = make([]QuestionResult, 0, len(exercise.Questions))

	for i := range exercise.Questions {
		question := &exercise.Questions[i]
		maxScore += question.Points

		studentAnswer := answers[strconv.FormatUint(uint64(question.ID), 10)]

		var isCorrect bool
		switch exercise.ExerciseType {
		case model.FillBlank:
			isCorrect = checkFillBlank(question, studentAnswer)
		case model.MultipleChoice:
			isCorrect = checkMultipleChoice(question, studentAnswer)
		case model.TrueFalse:
			isCorrect = checkTrueFalse(question, studentAnswer)
		}

		pointsEarned := 0
		if isCorrect {
			pointsEarned = question.Points
			score += pointsEarned
		}

		responses = append(responses, model.QuestionResponse{
			QuestionID:    question.ID,
			StudentAnswer: studentAnswer,
			IsCorrect:     isCorrect,
			PointsEarned:  pointsEarned,
		})
		results = append(results, QuestionResult{
			QuestionID:    question.ID,
			IsCorrect:     isCorrect,
			PointsEarned:  pointsEarned,
			Explanation:   question.Explanation,
			CorrectAnswer: correctAnswerFor(question, exercise.ExerciseType),
		})
	}

	return score, maxScore, responses, results
}

// checkFillBlank compares the trimmed student answer against the key's
// correct answer and its comma-separated alternatives. A question without a
// key is ungradable and scores incorrect.
func checkFillBlank(question *model.Question, studentAnswer string) bool {
	key := question.FillBlank
	if key == nil {
		return false
	}

	student := strings.TrimSpace(studentAnswer)
	correct := strings.TrimSpace(key.CorrectAnswer)

	alternatives := make([]string, 0)
	for _, alt := range strings.Split(key.AlternativeAnswers, ",") {
		if alt = strings.TrimSpace(alt); alt != "" {
			alternatives = append(alternatives, alt)
		}
	}

	if !key.CaseSensitive {
		student = strings.ToLower(student)
		correct = strings.ToLower(correct)
		for i := range alternatives {
			alternatives[i] = strings.ToLower(alternatives[i])
		}
	}

	if student == correct {
		return true
	}
	for _, alt := range alternatives {
		if student == alt {
			return true
		}
	}
	return false
}

// checkMultipleChoice interprets the raw answer as the id of one of the
// question's own options. Non-numeric or unknown ids score incorrect.
func checkMultipleChoice(question *model.Question, studentAnswer string) bool {
	id, err := strconv.ParseUint(strings.TrimSpace(studentAnswer), 10, 32)
	if err != nil {
		return false
	}
	for i := range question.Answers {
		if question.Answers[i].ID == uint(id) {
			return question.Answers[i].IsCorrect
		}
	}
	return false
}

// checkTrueFalse compares the raw answer, case-insensitively, against the
// text of the flagged-correct option. No flagged option means ungradable.
func checkTrueFalse(question *model.Question, studentAnswer string) bool {
	correct := correctOption(question)
	if correct == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(studentAnswer), correct.AnswerText)
}

// correctOption returns the flagged-correct option with the lowest id, so
// questions accidentally carrying several flags grade deterministically.
func correctOption(question *model.Question) *model.Answer {
	var correct *model.Answer
	for i := range question.Answers {
		a := &question.Answers[i]
		if !a.IsCorrect {
			continue
		}
		if correct == nil || a.ID < correct.ID {
			correct = a
		}
	}
	return correct
}

// correctAnswerFor formats the canonical correct value for client review,
// or nil when the question has no usable key.
func correctAnswerFor(question *model.Question, exerciseType model.ExerciseType) *string {
	switch exerciseType {
	case model.FillBlank:
		if question.FillBlank == nil {
			return nil
		}
		v := question.FillBlank.CorrectAnswer
		return &v
	case model.MultipleChoice, model.TrueFalse:
		correct := correctOption(question)
		if correct == nil {
			return nil
		}
		v := correct.AnswerText
		return &v
	}
	return nil
}

// percentage returns score/max as a percentage rounded to 2 decimal places.
// An exercise with no questions grades 0, not a division error.
func percentage(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}
	p := float64(score) / float64(maxScore) * 100
	return math.Round(p*100) / 100
}
