package model

import "gorm.io/gorm"

// Status task. Tidak ada gate approval: transisi bebas di antara ketiganya.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// Task adalah pekerjaan yang di-assign mentor ke intern.
type Task struct {
	gorm.Model
	InternshipID uint   `json:"internship_id" gorm:"not null;index"`
	MentorID     uint   `json:"mentor_id" gorm:"not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"due_date"` // Format YYYY-MM-DD, boleh kosong
	Status       string `json:"status" gorm:"default:todo"`
}
