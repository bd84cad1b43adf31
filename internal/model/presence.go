package model

import (
	"time"

	"gorm.io/gorm"
)

// Status kehadiran harian. izin adalah status turunan dari Permission yang
// approved, bukan hasil check-in.
const (
	PresenceHadir     = "hadir"
	PresenceTerlambat = "terlambat"
	PresenceIzin      = "izin"
)

// Presence adalah satu hari kehadiran, dibatasi event check-in dan
// check-out. Tepat satu record per (internship, tanggal); record dibuat lazy
// oleh check-in pertama dan menjadi immutable setelah check-out terisi.
type Presence struct {
	gorm.Model
	InternshipID     uint       `json:"internship_id" gorm:"not null;uniqueIndex:idx_presence_day"`
	Date             string     `json:"date" gorm:"not null;uniqueIndex:idx_presence_day"` // Format YYYY-MM-DD
	CheckIn          *time.Time `json:"check_in"`
	CheckOut         *time.Time `json:"check_out"`
	CheckinCoord     string     `json:"checkin_coord"` // "lat,lng"
	CheckoutCoord    string     `json:"checkout_coord"`
	CheckinLocation  string     `json:"checkin_location"`
	CheckoutLocation string     `json:"checkout_location"`
	CheckinPhotoRef  string     `json:"checkin_photo_ref"`
	CheckoutPhotoRef string     `json:"checkout_photo_ref"`
	Status           string     `json:"status"` // hadir / terlambat / izin
}
