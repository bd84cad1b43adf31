package model

import "gorm.io/gorm"

// Status lifecycle Permission. pending adalah satu-satunya status yang bisa
// berpindah; approved dan rejected terminal.
const (
	PermissionPending  = "pending"
	PermissionApproved = "approved"
	PermissionRejected = "rejected"
)

// Jenis izin.
const (
	PermissionSick  = "sick"
	PermissionOther = "other"
)

// Permission adalah pengajuan izin/cuti seorang intern. RejectionReason
// hanya terisi (dan wajib >= 10 karakter) ketika status rejected.
type Permission struct {
	gorm.Model
	InternshipID    uint   `json:"internship_id" gorm:"not null;index"`
	Type            string `json:"type"` // sick / other
	Title           string `json:"title"`
	Reason          string `json:"reason"`
	StartDate       string `json:"start_date"` // Format YYYY-MM-DD
	EndDate         string `json:"end_date"`
	DurationDays    int    `json:"duration_days"`
	Status          string `json:"status" gorm:"default:pending"`
	RejectionReason string `json:"rejection_reason"`
	AttachmentRef   string `json:"attachment_ref"`

	Internship Internship `json:"-" gorm:"foreignKey:InternshipID"`
}
