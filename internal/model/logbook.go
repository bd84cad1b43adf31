package model

import "gorm.io/gorm"

// Status entry logbook. Review dilakukan per bulan kalender: seluruh entry
// satu bulan selalu berpindah status bersama-sama.
const (
	LogbookSent     = "sent"
	LogbookApproved = "approved"
	LogbookRejected = "rejected"
)

// Logbook adalah catatan kegiatan harian intern, satu entry per tanggal
// per internship.
type Logbook struct {
	gorm.Model
	InternshipID    uint   `json:"internship_id" gorm:"not null;uniqueIndex:idx_logbook_day"`
	Date            string `json:"date" gorm:"not null;uniqueIndex:idx_logbook_day"` // Format YYYY-MM-DD
	ActivityDetail  string `json:"activity_detail"`
	ResultOutput    string `json:"result_output"`
	Status          string `json:"status" gorm:"default:sent"`
	RejectionReason string `json:"rejection_reason"`
}

// LogbookMonth adalah agregat turunan (tidak dipersist) untuk review batch:
// seluruh entry satu internship dalam satu bulan kalender.
type LogbookMonth struct {
	Month   string    `json:"month"` // Format YYYY-MM
	Status  string    `json:"status"`
	Entries []Logbook `json:"entries"`
}
