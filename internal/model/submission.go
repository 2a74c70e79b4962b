package model

import "time"

// ExerciseSubmission is the immutable record of one grading pass.
// Created once together with its responses, never updated.
type ExerciseSubmission struct {
	UUIDBase
	StudentID   uint               `gorm:"index;not null" json:"studentId"`
	ExerciseID  uint               `gorm:"index;not null" json:"exerciseId"`
	Score       int                `gorm:"not null" json:"score"`
	MaxScore    int                `gorm:"not null" json:"maxScore"`
	TimeSpent   int                `gorm:"default:0" json:"timeSpent"` // seconds
	SubmittedAt time.Time          `gorm:"index;not null" json:"submittedAt"`
	Exercise    *Exercise          `json:"exercise,omitempty"`
	Responses   []QuestionResponse `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"responses,omitempty"`
}

func (ExerciseSubmission) TableName() string {
	return "exercise_submissions"
}

// QuestionResponse is the graded outcome for one question of a submission.
type QuestionResponse struct {
	UUIDBase
	SubmissionID  string `gorm:"index;type:varchar(36);not null" json:"submissionId"`
	QuestionID    uint   `gorm:"index;not null" json:"questionId"`
	StudentAnswer string `gorm:"type:text" json:"studentAnswer"`
	IsCorrect     bool   `gorm:"not null" json:"isCorrect"`
	PointsEarned  int    `gorm:"default:0" json:"pointsEarned"`
}

func (QuestionResponse) TableName() string {
	return "question_responses"
}
