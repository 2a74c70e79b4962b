package model

type GoalStatus string

const (
	GoalTodo       GoalStatus = "todo"
	GoalInProgress GoalStatus = "inProgress"
	GoalCompleted  GoalStatus = "completed"
)

// Goal is a free-form study goal on the user's board.
type Goal struct {
	BaseModel
	UserID uint       `gorm:"index;not null" json:"userId"`
	Text   string     `gorm:"size:255;not null" json:"text"`
	Status GoalStatus `gorm:"type:enum('todo','inProgress','completed');default:'todo'" json:"status"`
}

func (Goal) TableName() string {
	return "goals"
}
