package model

// Unit is a top-level course unit (e.g. "Unit 3: Daily Life").
type Unit struct {
	BaseModel
	Title       string  `gorm:"size:200;not null" json:"title"`
	Number      int     `gorm:"unique;not null" json:"number"`
	Description string  `gorm:"type:text" json:"description"`
	Icon        string  `gorm:"size:50;default:'📚'" json:"icon"`
	Order       int     `gorm:"default:0" json:"order"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`
	Themes      []Theme `gorm:"constraint:OnDelete:CASCADE" json:"themes,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}

// Theme groups topics inside a unit (e.g. "Food and Eating Habits").
type Theme struct {
	BaseModel
	UnitID   uint    `gorm:"index;not null" json:"unitId"`
	Title    string  `gorm:"size:200;not null" json:"title"`
	Icon     string  `gorm:"size:50;default:'🎯'" json:"icon"`
	Order    int     `gorm:"default:0" json:"order"`
	IsActive bool    `gorm:"default:true" json:"isActive"`
	Topics   []Topic `gorm:"constraint:OnDelete:CASCADE" json:"topics,omitempty"`
}

func (Theme) TableName() string {
	return "themes"
}

type TopicType string

const (
	TopicVocabulary    TopicType = "vocabulary"
	TopicGrammar       TopicType = "grammar"
	TopicReading       TopicType = "reading"
	TopicWriting       TopicType = "writing"
	TopicListening     TopicType = "listening"
	TopicSpeaking      TopicType = "speaking"
	TopicPronunciation TopicType = "pronunciation"
)

// Topic is one lesson section inside a theme (Vocabulary, Grammar, Speaking, ...).
type Topic struct {
	BaseModel
	ThemeID         uint              `gorm:"index;not null" json:"themeId"`
	Title           string            `gorm:"size:200;not null" json:"title"`
	TopicType       TopicType         `gorm:"type:enum('vocabulary','grammar','reading','writing','listening','speaking','pronunciation');not null" json:"topicType"`
	Icon            string            `gorm:"size:50;default:'📝'" json:"icon"`
	Description     string            `gorm:"type:text" json:"description"`
	Order           int               `gorm:"default:0" json:"order"`
	IsActive        bool              `gorm:"default:true" json:"isActive"`
	VocabularyItems []VocabularyItem  `gorm:"constraint:OnDelete:CASCADE" json:"vocabularyItems,omitempty"`
	GrammarContents []GrammarContent  `gorm:"constraint:OnDelete:CASCADE" json:"grammarContents,omitempty"`
	Dialogues       []DialogueContent `gorm:"constraint:OnDelete:CASCADE" json:"dialogues,omitempty"`
	ExampleBoxes    []ExampleBox      `gorm:"constraint:OnDelete:CASCADE" json:"exampleBoxes,omitempty"`
	Exercises       []Exercise        `gorm:"constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}
