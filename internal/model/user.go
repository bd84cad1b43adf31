package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:intern"` // intern / mentor / admin
	NoHP     string `json:"no_hp"`
	Kampus   string `json:"kampus"`
	Jurusan  string `json:"jurusan"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
