package model

import "gorm.io/gorm"

// Status internship.
const (
	InternshipActive     = "active"
	InternshipCompleted  = "completed"
	InternshipTerminated = "terminated"
)

// Internship mengikat satu intern ke (opsional) satu mentor untuk rentang
// tanggal tertentu. Semua Permission, Logbook, Presence, dan Task dimiliki
// eksklusif oleh satu internship.
type Internship struct {
	gorm.Model
	InternID  uint   `json:"intern_id" gorm:"not null"`
	MentorID  *uint  `json:"mentor_id"`
	StartDate string `json:"start_date"` // Format YYYY-MM-DD
	EndDate   string `json:"end_date"`
	Status    string `json:"status" gorm:"default:active"`

	// Relasi
	Intern User  `json:"intern" gorm:"foreignKey:InternID"`
	Mentor *User `json:"mentor" gorm:"foreignKey:MentorID"`
}
