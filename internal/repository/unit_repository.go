package repository

import (
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"gorm.io/gorm"
)

// UnitRepository covers the Unit/Theme/Topic content hierarchy.
type UnitRepository struct {
	DB *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{DB: db}
}

// ListActive returns active units in course order, without nested content.
func (r *UnitRepository) ListActive() ([]model.Unit, error) {
	var units []model.Unit
	err := r.DB.Where("is_active = ?", true).
		Order("`order`, number").
		Find(&units).Error
	return units, err
}

// FindByIDWithContent loads a unit with its full theme/topic/content tree.
func (r *UnitRepository) FindByIDWithContent(id uint) (*model.Unit, error) {
	var unit model.Unit
	err := r.DB.
		Preload("Themes", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("`order`")
		}).
		Preload("Themes.Topics", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("`order`")
		}).
		Preload("Themes.Topics.VocabularyItems", orderClause).
		Preload("Themes.Topics.GrammarContents", orderClause).
		Preload("Themes.Topics.GrammarContents.Examples", orderClause).
		Preload("Themes.Topics.Dialogues", orderClause).
		Preload("Themes.Topics.Dialogues.Lines", orderClause).
		Preload("Themes.Topics.ExampleBoxes", orderClause).
		Preload("Themes.Topics.Exercises", orderClause).
		Preload("Themes.Topics.Exercises.Questions", orderClause).
		Preload("Themes.Topics.Exercises.Questions.Answers", orderClause).
		First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *UnitRepository) FindByID(id uint) (*model.Unit, error) {
	var unit model.Unit
	err := r.DB.First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// ListThemes returns active themes, optionally filtered by unit.
func (r *UnitRepository) ListThemes(unitID uint) ([]model.Theme, error) {
	var themes []model.Theme
	q := r.DB.Where("is_active = ?", true).
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("`order`")
		}).
		Order("`order`")
	if unitID != 0 {
		q = q.Where("unit_id = ?", unitID)
	}
	err := q.Find(&themes).Error
	return themes, err
}

// ListTopics returns active topics, optionally filtered by theme and type.
func (r *UnitRepository) ListTopics(themeID uint, topicType model.TopicType) ([]model.Topic, error) {
	var topics []model.Topic
	q := r.DB.Where("is_active = ?", true).
		Preload("VocabularyItems", orderClause).
		Preload("GrammarContents", orderClause).
		Preload("GrammarContents.Examples", orderClause).
		Preload("Dialogues", orderClause).
		Preload("Dialogues.Lines", orderClause).
		Preload("ExampleBoxes", orderClause).
		Preload("Exercises", orderClause).
		Preload("Exercises.Questions", orderClause).
		Order("`order`")
	if themeID != 0 {
		q = q.Where("theme_id = ?", themeID)
	}
	if topicType != "" {
		q = q.Where("topic_type = ?", topicType)
	}
	err := q.Find(&topics).Error
	return topics, err
}

func (r *UnitRepository) FindTopicByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.
		Preload("VocabularyItems", orderClause).
		Preload("GrammarContents", orderClause).
		Preload("GrammarContents.Examples", orderClause).
		Preload("Dialogues", orderClause).
		Preload("Dialogues.Lines", orderClause).
		Preload("ExampleBoxes", orderClause).
		Preload("Exercises", orderClause).
		Preload("Exercises.Questions", orderClause).
		Preload("Exercises.Questions.Answers", orderClause).
		Preload("Exercises.Questions.FillBlank").
		First(&topic, id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *UnitRepository) CreateUnit(unit *model.Unit) error {
	return r.DB.Create(unit).Error
}

func (r *UnitRepository) UpdateUnit(unit *model.Unit) error {
	return r.DB.Save(unit).Error
}

func (r *UnitRepository) DeleteUnit(id uint) error {
	return r.DB.Delete(&model.Unit{}, id).Error
}

func (r *UnitRepository) CreateTheme(theme *model.Theme) error {
	return r.DB.Create(theme).Error
}

func (r *UnitRepository) UpdateTheme(theme *model.Theme) error {
	return r.DB.Save(theme).Error
}

func (r *UnitRepository) DeleteTheme(id uint) error {
	return r.DB.Delete(&model.Theme{}, id).Error
}

func (r *UnitRepository) CreateTopic(topic *model.Topic) error {
	return r.DB.Create(topic).Error
}

func (r *UnitRepository) UpdateTopic(topic *model.Topic) error {
	return r.DB.Save(topic).Error
}

func (r *UnitRepository) DeleteTopic(id uint) error {
	return r.DB.Delete(&model.Topic{}, id).Error
}

func orderClause(db *gorm.DB) *gorm.DB {
	return db.Order("`order`")
}
