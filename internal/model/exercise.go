package model

// ExerciseType is a closed set; grading dispatches on it with an exhaustive switch.
type ExerciseType string

const (
	FillBlank      ExerciseType = "fill_blank"
	MultipleChoice ExerciseType = "multiple_choice"
	TrueFalse      ExerciseType = "true_false"
)

func (t ExerciseType) Valid() bool {
	switch t {
	case FillBlank, MultipleChoice, TrueFalse:
		return true
	}
	return false
}

// Exercise is one graded activity of a topic.
type Exercise struct {
	BaseModel
	TopicID      uint         `gorm:"index;not null" json:"topicId"`
	Title        string       `gorm:"size:200;not null" json:"title"`
	ExerciseType ExerciseType `gorm:"type:enum('fill_blank','multiple_choice','true_false');not null" json:"exerciseType"`
	Instructions string       `gorm:"type:text" json:"instructions"`
	Order        int          `gorm:"default:0" json:"order"`
	Points       int          `gorm:"default:10" json:"points"`
	Questions    []Question   `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// Question belongs to one exercise. FillBlank is nil unless a fill-blank
// answer key has been authored; a missing key means the question is
// ungradable, not an error.
type Question struct {
	BaseModel
	ExerciseID   uint             `gorm:"index;not null" json:"exerciseId"`
	QuestionText string           `gorm:"type:text;not null" json:"questionText"`
	Hint         string           `gorm:"size:200" json:"hint"`
	Explanation  string           `gorm:"type:text" json:"explanation"`
	Order        int              `gorm:"default:0" json:"order"`
	Points       int              `gorm:"default:1" json:"points"`
	Answers      []Answer         `gorm:"constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	FillBlank    *FillBlankAnswer `gorm:"constraint:OnDelete:CASCADE" json:"fillBlankAnswer,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Answer is one selectable option of a multiple-choice or true/false question.
type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	AnswerText string `gorm:"size:500;not null" json:"answerText"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Order      int    `gorm:"default:0" json:"order"`
}

func (Answer) TableName() string {
	return "answers"
}

// FillBlankAnswer is the answer key of a fill-blank question.
// AlternativeAnswers holds extra accepted answers, comma-separated.
type FillBlankAnswer struct {
	BaseModel
	QuestionID         uint   `gorm:"uniqueIndex;not null" json:"questionId"`
	CorrectAnswer      string `gorm:"size:200;not null" json:"correctAnswer"`
	AlternativeAnswers string `gorm:"type:text" json:"alternativeAnswers"`
	CaseSensitive      bool   `gorm:"default:false" json:"caseSensitive"`
}

func (FillBlankAnswer) TableName() string {
	return "fill_blank_answers"
}
