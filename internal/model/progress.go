package model

import "time"

// StudentProgress tracks one student's completion of one unit.
// CompletedAt is a one-way flag: stamped the first time the percentage
// reaches 100 and never cleared by later recomputations.
type StudentProgress struct {
	BaseModel
	StudentID            uint       `gorm:"uniqueIndex:idx_student_unit;not null" json:"studentId"`
	UnitID               uint       `gorm:"uniqueIndex:idx_student_unit;not null" json:"unitId"`
	CompletionPercentage int        `gorm:"default:0" json:"completionPercentage"`
	StartedAt            time.Time  `gorm:"not null" json:"startedAt"`
	CompletedAt          *time.Time `json:"completedAt"`
	Unit                 *Unit      `json:"unit,omitempty"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}
