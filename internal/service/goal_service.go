package service

import (
	"errors"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"gorm.io/gorm"
)

type GoalService struct {
	GoalRepo *repository.GoalRepository
}

func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{GoalRepo: goalRepo}
}

type CreateGoalInput struct {
	Text   string           `json:"text" binding:"required,max=255"`
	Status model.GoalStatus `json:"status" binding:"omitempty,oneof=todo inProgress completed"`
}

type UpdateGoalInput struct {
	Text   string           `json:"text" binding:"omitempty,max=255"`
	Status model.GoalStatus `json:"status" binding:"omitempty,oneof=todo inProgress completed"`
}

func (s *GoalService) List(userID uint) ([]model.Goal, error) {
	return s.GoalRepo.FindByUserID(userID)
}

func (s *GoalService) Create(userID uint, input CreateGoalInput) (*model.Goal, error) {
	goal := &model.Goal{
		UserID: userID,
		Text:   input.Text,
		Status: input.Status,
	}
	if goal.Status == "" {
		goal.Status = model.GoalTodo
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Update edits a goal the user owns. A goal owned by someone else reads as
// not found.
func (s *GoalService) Update(userID, goalID uint, input UpdateGoalInput) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGoalNotFound
		}
		return nil, err
	}

	if input.Text != "" {
		goal.Text = input.Text
	}
	if input.Status != "" {
		goal.Status = input.Status
	}

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(userID, goalID uint) error {
	if _, err := s.GoalRepo.FindByIDAndUserID(goalID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrGoalNotFound
		}
		return err
	}
	return s.GoalRepo.Delete(goalID)
}
