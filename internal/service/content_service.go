package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/repository"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/SaideLeon/nativespeak-api/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	unitListCacheKey = "content:units"
	unitTreeCacheKey = "content:unit:%d"
	topicCacheKeyFmt = "content:topic:%d"
)

// ContentService serves the course hierarchy. Reads go through Redis when
// available; writes invalidate the affected keys.
type ContentService struct {
	UnitRepo     *repository.UnitRepository
	ExerciseRepo *repository.ExerciseRepository
	Redis        *redis.Client
	CacheTTL     time.Duration
}

func NewContentService(unitRepo *repository.UnitRepository, exerciseRepo *repository.ExerciseRepository, redisClient *redis.Client, cacheTTL time.Duration) *ContentService {
	return &ContentService{
		UnitRepo:     unitRepo,
		ExerciseRepo: exerciseRepo,
		Redis:        redisClient,
		CacheTTL:     cacheTTL,
	}
}

// ListUnits returns active units in course order.
func (s *ContentService) ListUnits(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	if s.cacheGet(ctx, unitListCacheKey, &units) {
		return units, nil
	}

	units, err := s.UnitRepo.ListActive()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, unitListCacheKey, units)
	return units, nil
}

// GetUnit returns one unit with its full content tree.
func (s *ContentService) GetUnit(ctx context.Context, id uint) (*model.Unit, error) {
	key := fmt.Sprintf(unitTreeCacheKey, id)

	var cached model.Unit
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	unit, err := s.UnitRepo.FindByIDWithContent(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnitNotFound
		}
		return nil, err
	}
	s.cacheSet(ctx, key, unit)
	return unit, nil
}

func (s *ContentService) ListThemes(unitID uint) ([]model.Theme, error) {
	return s.UnitRepo.ListThemes(unitID)
}

func (s *ContentService) ListTopics(themeID uint, topicType model.TopicType) ([]model.Topic, error) {
	return s.UnitRepo.ListTopics(themeID, topicType)
}

func (s *ContentService) GetTopic(ctx context.Context, id uint) (*model.Topic, error) {
	key := fmt.Sprintf(topicCacheKeyFmt, id)

	var cached model.Topic
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	topic, err := s.UnitRepo.FindTopicByID(id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, topic)
	return topic, nil
}

func (s *ContentService) ListExercises(topicID uint, exerciseType model.ExerciseType) ([]model.Exercise, error) {
	return s.ExerciseRepo.List(topicID, exerciseType)
}

func (s *ContentService) GetExercise(id uint) (*model.Exercise, error) {
	exercise, err := s.ExerciseRepo.FindByIDForGrading(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// CreateUnit and friends are the admin-side writers. Each one drops the
// cached tree so readers never see stale content.

func (s *ContentService) CreateUnit(ctx context.Context, unit *model.Unit) error {
	if err := s.UnitRepo.CreateUnit(unit); err != nil {
		return err
	}
	s.invalidateUnit(ctx, unit.ID)
	return nil
}

func (s *ContentService) UpdateUnit(ctx context.Context, unit *model.Unit) error {
	if err := s.UnitRepo.UpdateUnit(unit); err != nil {
		return err
	}
	s.invalidateUnit(ctx, unit.ID)
	return nil
}

func (s *ContentService) DeleteUnit(ctx context.Context, id uint) error {
	if err := s.UnitRepo.DeleteUnit(id); err != nil {
		return err
	}
	s.invalidateUnit(ctx, id)
	return nil
}

func (s *ContentService) CreateTheme(ctx context.Context, theme *model.Theme) error {
	if err := s.UnitRepo.CreateTheme(theme); err != nil {
		return err
	}
	s.invalidateUnit(ctx, theme.UnitID)
	return nil
}

func (s *ContentService) UpdateTheme(ctx context.Context, theme *model.Theme) error {
	if err := s.UnitRepo.UpdateTheme(theme); err != nil {
		return err
	}
	s.invalidateUnit(ctx, theme.UnitID)
	return nil
}

func (s *ContentService) DeleteTheme(ctx context.Context, theme *model.Theme) error {
	if err := s.UnitRepo.DeleteTheme(theme.ID); err != nil {
		return err
	}
	s.invalidateUnit(ctx, theme.UnitID)
	return nil
}

func (s *ContentService) CreateTopic(ctx context.Context, topic *model.Topic) error {
	if err := s.UnitRepo.CreateTopic(topic); err != nil {
		return err
	}
	s.invalidateTopic(ctx, topic)
	return nil
}

func (s *ContentService) UpdateTopic(ctx context.Context, topic *model.Topic) error {
	if err := s.UnitRepo.UpdateTopic(topic); err != nil {
		return err
	}
	s.invalidateTopic(ctx, topic)
	return nil
}

func (s *ContentService) DeleteTopic(ctx context.Context, topic *model.Topic) error {
	if err := s.UnitRepo.DeleteTopic(topic.ID); err != nil {
		return err
	}
	s.invalidateTopic(ctx, topic)
	return nil
}

// cacheGet returns true when the key was present and decoded. Cache failures
// degrade to a database read, never to an error.
func (s *ContentService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.Redis == nil {
		return false
	}
	raw, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Log.Warn("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *ContentService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *ContentService) invalidateUnit(ctx context.Context, unitID uint) {
	if s.Redis == nil {
		return
	}
	keys := []string{unitListCacheKey, fmt.Sprintf(unitTreeCacheKey, unitID)}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("cache invalidation failed", zap.Uint("unit_id", unitID), zap.Error(err))
	}
}

func (s *ContentService) invalidateTopic(ctx context.Context, topic *model.Topic) {
	if s.Redis == nil {
		return
	}
	keys := []string{unitListCacheKey, fmt.Sprintf(topicCacheKeyFmt, topic.ID)}
	if theme, err := s.findTheme(topic.ThemeID); err == nil {
		keys = append(keys, fmt.Sprintf(unitTreeCacheKey, theme.UnitID))
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("cache invalidation failed", zap.Uint("topic_id", topic.ID), zap.Error(err))
	}
}

func (s *ContentService) findTheme(themeID uint) (*model.Theme, error) {
	var theme model.Theme
	err := s.UnitRepo.DB.First(&theme, themeID).Error
	if err != nil {
		return nil, err
	}
	return &theme, nil
}
