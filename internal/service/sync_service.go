package service

import (
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SyncService mirrors the client's local state (profile counters, lesson
// positions, achievements, opaque configs) to the server. The client is the
// source of truth: each push replaces the stored set wholesale.
type SyncService struct {
	SyncRepo *repository.SyncRepository
	DB       *gorm.DB
}

func NewSyncService(syncRepo *repository.SyncRepository, db *gorm.DB) *SyncService {
	return &SyncService{SyncRepo: syncRepo, DB: db}
}

// SyncPayload is the client snapshot, pushed and pulled in the same shape.
type SyncPayload struct {
	Profile      *model.UserProfile     `json:"profile"`
	Lessons      []model.LessonProgress `json:"lessons"`
	Achievements []model.Achievement    `json:"achievements"`
	Configs      []model.LocalConfig    `json:"configs"`
}

// Pull returns the user's stored snapshot.
func (s *SyncService) Pull(userID uint) (*SyncPayload, error) {
	profile, err := s.SyncRepo.GetOrCreateProfile(s.DB, userID)
	if err != nil {
		return nil, err
	}
	lessons, err := s.SyncRepo.ListLessons(userID)
	if err != nil {
		return nil, err
	}
	achievements, err := s.SyncRepo.ListAchievements(userID)
	if err != nil {
		return nil, err
	}
	configs, err := s.SyncRepo.ListConfigs(userID)
	if err != nil {
		return nil, err
	}

	return &SyncPayload{
		Profile:      profile,
		Lessons:      lessons,
		Achievements: achievements,
		Configs:      configs,
	}, nil
}

// GetProfile returns the user's profile, creating a zeroed one on first read.
func (s *SyncService) GetProfile(userID uint) (*model.UserProfile, error) {
	return s.SyncRepo.GetOrCreateProfile(s.DB, userID)
}

// UpdateProfileInput carries the counters the client may rewrite directly.
type UpdateProfileInput struct {
	TotalConversationTime *int    `json:"totalConversationTime" binding:"omitempty,min=0"`
	CompletedLessons      *int    `json:"completedLessons" binding:"omitempty,min=0"`
	Credits               *int    `json:"credits" binding:"omitempty,min=0"`
	Avatar                *string `json:"avatar" binding:"omitempty,max=50"`
	Theme                 *string `json:"theme" binding:"omitempty,max=30"`
	WantsToBeAdmin        *bool   `json:"wantsToBeAdmin"`
}

// UpdateProfile applies a partial update to the stored profile.
func (s *SyncService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.UserProfile, error) {
	profile, err := s.SyncRepo.GetOrCreateProfile(s.DB, userID)
	if err != nil {
		return nil, err
	}

	if input.TotalConversationTime != nil {
		profile.TotalConversationTime = *input.TotalConversationTime
	}
	if input.CompletedLessons != nil {
		profile.CompletedLessons = *input.CompletedLessons
	}
	if input.Credits != nil {
		profile.Credits = *input.Credits
	}
	if input.Avatar != nil {
		profile.Avatar = *input.Avatar
	}
	if input.Theme != nil {
		profile.Theme = *input.Theme
	}
	if input.WantsToBeAdmin != nil {
		profile.WantsToBeAdmin = *input.WantsToBeAdmin
	}

	if err := s.SyncRepo.SaveProfile(s.DB, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Push replaces the stored snapshot with the client's, atomically. Omitted
// sections are left untouched so partial pushes stay cheap.
func (s *SyncService) Push(userID uint, payload *SyncPayload) (*SyncPayload, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if payload.Profile != nil {
			current, err := s.SyncRepo.GetOrCreateProfile(tx, userID)
			if err != nil {
				return err
			}
			payload.Profile.ID = current.ID
			payload.Profile.UserID = userID
			payload.Profile.CreatedAt = current.CreatedAt
			if err := s.SyncRepo.SaveProfile(tx, payload.Profile); err != nil {
				return err
			}
		}
		if payload.Lessons != nil {
			if err := s.SyncRepo.ReplaceLessons(tx, userID, payload.Lessons); err != nil {
				return err
			}
		}
		if payload.Achievements != nil {
			if err := s.SyncRepo.ReplaceAchievements(tx, userID, payload.Achievements); err != nil {
				return err
			}
		}
		if payload.Configs != nil {
			if err := s.SyncRepo.ReplaceConfigs(tx, userID, payload.Configs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("sync pushed",
		zap.Uint("user_id", userID),
		zap.Int("lessons", len(payload.Lessons)),
		zap.Int("achievements", len(payload.Achievements)))
	return s.Pull(userID)
}
