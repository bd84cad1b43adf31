package database

import (
	"log"
	"time"

	"simagang-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// 1. Seed Akun Admin
	admin := model.User{
		Name:     "Administrator Utama",
		Email:    "admin@simagang.id",
		Password: string(hashed),
		Role:     "admin",
		IsActive: true,
	}
	if err := db.FirstOrCreate(&admin, model.User{Email: admin.Email}).Error; err == nil {
		// Paksa update password agar selalu sinkron meskipun user sudah ada
		db.Model(&admin).Update("password", string(hashed))
		log.Println("Seeding admin berhasil!")
	}

	// 2. Seed Mentor
	mentor := model.User{
		Name:     "Budi Santoso",
		Email:    "mentor@simagang.id",
		Password: string(hashed),
		Role:     "mentor",
		IsActive: true,
	}
	db.FirstOrCreate(&mentor, model.User{Email: mentor.Email})

	// 3. Seed Intern
	intern := model.User{
		Name:     "Siti Rahma",
		Email:    "intern@simagang.id",
		Password: string(hashed),
		Role:     "intern",
		Kampus:   "Universitas Andalas",
		Jurusan:  "Sistem Informasi",
		IsActive: true,
	}
	db.FirstOrCreate(&intern, model.User{Email: intern.Email})

	// 4. Seed Internship aktif untuk intern contoh (6 bulan dari sekarang)
	now := time.Now()
	internship := model.Internship{
		InternID:  intern.ID,
		MentorID:  &mentor.ID,
		StartDate: now.Format("2006-01-02"),
		EndDate:   now.AddDate(0, 6, 0).Format("2006-01-02"),
		Status:    model.InternshipActive,
	}
	db.FirstOrCreate(&internship, model.Internship{InternID: intern.ID, Status: model.InternshipActive})

	log.Println("Seeding selesai!")
}
