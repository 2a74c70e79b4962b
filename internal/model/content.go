package model

// VocabularyItem is one word entry of a vocabulary topic.
type VocabularyItem struct {
	BaseModel
	TopicID         uint   `gorm:"index;not null" json:"topicId"`
	Word            string `gorm:"size:100;not null" json:"word"`
	Translation     string `gorm:"size:100;not null" json:"translation"`
	Pronunciation   string `gorm:"size:100" json:"pronunciation"`
	Image           string `gorm:"size:255" json:"image"`
	Audio           string `gorm:"size:255" json:"audio"`
	ExampleSentence string `gorm:"type:text" json:"exampleSentence"`
	Order           int    `gorm:"default:0" json:"order"`
}

func (VocabularyItem) TableName() string {
	return "vocabulary_items"
}

// GrammarContent explains one grammar rule inside a topic.
type GrammarContent struct {
	BaseModel
	TopicID     uint             `gorm:"index;not null" json:"topicId"`
	Title       string           `gorm:"size:200;not null" json:"title"`
	Explanation string           `gorm:"type:text;not null" json:"explanation"`
	Order       int              `gorm:"default:0" json:"order"`
	Examples    []GrammarExample `gorm:"constraint:OnDelete:CASCADE" json:"examples,omitempty"`
}

func (GrammarContent) TableName() string {
	return "grammar_contents"
}

type GrammarExample struct {
	BaseModel
	GrammarContentID uint   `gorm:"index;not null" json:"grammarContentId"`
	Subject          string `gorm:"size:100" json:"subject"`
	VerbForm         string `gorm:"size:100" json:"verbForm"`
	ExampleSentence  string `gorm:"type:text;not null" json:"exampleSentence"`
	Translation      string `gorm:"type:text" json:"translation"`
	Order            int    `gorm:"default:0" json:"order"`
}

func (GrammarExample) TableName() string {
	return "grammar_examples"
}

// DialogueContent is a scripted conversation used in speaking topics.
type DialogueContent struct {
	BaseModel
	TopicID uint           `gorm:"index;not null" json:"topicId"`
	Title   string         `gorm:"size:200;not null" json:"title"`
	Context string         `gorm:"type:text" json:"context"`
	Order   int            `gorm:"default:0" json:"order"`
	Lines   []DialogueLine `gorm:"constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

func (DialogueContent) TableName() string {
	return "dialogue_contents"
}

type DialogueLine struct {
	BaseModel
	DialogueContentID uint   `gorm:"index;not null" json:"dialogueContentId"`
	Speaker           string `gorm:"size:50;not null" json:"speaker"`
	Text              string `gorm:"type:text;not null" json:"text"`
	Translation       string `gorm:"type:text" json:"translation"`
	Audio             string `gorm:"size:255" json:"audio"`
	Order             int    `gorm:"default:0" json:"order"`
}

func (DialogueLine) TableName() string {
	return "dialogue_lines"
}

type BoxType string

const (
	BoxExample BoxType = "example"
	BoxTip     BoxType = "tip"
	BoxWarning BoxType = "warning"
	BoxInfo    BoxType = "info"
)

// ExampleBox is a highlighted callout box inside a topic.
type ExampleBox struct {
	BaseModel
	TopicID uint    `gorm:"index;not null" json:"topicId"`
	Title   string  `gorm:"size:200;default:'Examples'" json:"title"`
	Content string  `gorm:"type:text;not null" json:"content"`
	BoxType BoxType `gorm:"type:enum('example','tip','warning','info');default:'example'" json:"boxType"`
	Order   int     `gorm:"default:0" json:"order"`
}

func (ExampleBox) TableName() string {
	return "example_boxes"
}
