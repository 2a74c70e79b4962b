package service

import (
	"errors"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UpdateUserInput struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Language string `json:"language" binding:"omitempty,max=10"`
	Avatar   string `json:"avatar" binding:"omitempty,max=255"`
}

// UpdateProfile applies the user's own editable fields.
func (s *UserService) UpdateProfile(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Language != "" {
		user.Language = input.Language
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List is the admin view, paginated.
func (s *UserService) List(page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.UserRepo.List(page, limit)
}

type AdminUpdateUserInput struct {
	Role     model.UserRole `json:"role" binding:"omitempty,oneof=student teacher admin"`
	Disabled *bool          `json:"disabled"`
}

// AdminUpdate changes role or account state; admin only.
func (s *UserService) AdminUpdate(id uint, input AdminUpdateUserInput) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Disabled != nil {
		user.Disabled = *input.Disabled
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}
