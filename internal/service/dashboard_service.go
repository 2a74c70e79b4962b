package service

import (
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
)

// DashboardService aggregates a student's standing across units and exercise
// types for the home screen.
type DashboardService struct {
	SubmissionRepo *repository.SubmissionRepository
	ProgressRepo   *repository.ProgressRepository
	GoalRepo       *repository.GoalRepository
}

func NewDashboardService(submissionRepo *repository.SubmissionRepository, progressRepo *repository.ProgressRepository, goalRepo *repository.GoalRepository) *DashboardService {
	return &DashboardService{
		SubmissionRepo: submissionRepo,
		ProgressRepo:   progressRepo,
		GoalRepo:       goalRepo,
	}
}

type TypeStat struct {
	ExerciseType model.ExerciseType `json:"exercise_type"`
	Submissions  int64              `json:"submissions"`
	AverageScore float64            `json:"average_score"`
}

type Dashboard struct {
	TotalSubmissions  int64                      `json:"total_submissions"`
	AverageScore      float64                    `json:"average_score"`
	UnitsCompleted    int64                      `json:"units_completed"`
	UnitsInProgress   int64                      `json:"units_in_progress"`
	ByType            []TypeStat                 `json:"by_type"`
	RecentSubmissions []model.ExerciseSubmission `json:"recent_submissions"`
	RecentProgress    []model.StudentProgress    `json:"recent_progress"`
	Goals             []model.Goal               `json:"goals"`
}

const recentLimit = 5

// Build assembles the dashboard for one student.
func (s *DashboardService) Build(studentID uint) (*Dashboard, error) {
	total, err := s.SubmissionRepo.CountByStudent(studentID)
	if err != nil {
		return nil, err
	}
	avg, err := s.SubmissionRepo.AverageScore(studentID)
	if err != nil {
		return nil, err
	}
	completed, err := s.ProgressRepo.CountCompleted(studentID)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.ProgressRepo.CountInProgress(studentID)
	if err != nil {
		return nil, err
	}

	byType := make([]TypeStat, 0, 3)
	for _, t := range []model.ExerciseType{model.FillBlank, model.MultipleChoice, model.TrueFalse} {
		count, typeAvg, err := s.SubmissionRepo.TypeStats(studentID, t)
		if err != nil {
			return nil, err
		}
		byType = append(byType, TypeStat{ExerciseType: t, Submissions: count, AverageScore: typeAvg})
	}

	recent, err := s.SubmissionRepo.Recent(studentID, recentLimit)
	if err != nil {
		return nil, err
	}
	recentProgress, err := s.ProgressRepo.Recent(studentID, recentLimit)
	if err != nil {
		return nil, err
	}
	goals, err := s.GoalRepo.FindByUserID(studentID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalSubmissions:  total,
		AverageScore:      avg,
		UnitsCompleted:    completed,
		UnitsInProgress:   inProgress,
		ByType:            byType,
		RecentSubmissions: recent,
		RecentProgress:    recentProgress,
		Goals:             goals,
	}, nil
}
