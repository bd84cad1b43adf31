package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type InternshipRepository interface {
	Create(internship *model.Internship) error
	GetByID(id uint) (*model.Internship, error)
	GetActiveByIntern(internID uint) (*model.Internship, error)
	GetByMentor(mentorID uint) ([]model.Internship, error)
	List() ([]model.Internship, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	CompleteExpired(today string) (int64, error)
}

type internshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &internshipRepository{db}
}

func (r *internshipRepository) Create(internship *model.Internship) error {
	return r.db.Create(internship).Error
}

func (r *internshipRepository) GetByID(id uint) (*model.Internship, error) {
	var internship model.Internship
	err := r.db.Preload("Intern").Preload("Mentor").First(&internship, id).Error
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) GetActiveByIntern(internID uint) (*model.Internship, error) {
	var internship model.Internship
	err := r.db.Where("intern_id = ? AND status = ?", internID, model.InternshipActive).
		First(&internship).Error
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) GetByMentor(mentorID uint) ([]model.Internship, error) {
	var list []model.Internship
	err := r.db.Preload("Intern").Where("mentor_id = ?", mentorID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *internshipRepository) List() ([]model.Internship, error) {
	var list []model.Internship
	err := r.db.Preload("Intern").Preload("Mentor").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *internshipRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Internship{}).Where("id = ?", id).Updates(fields).Error
}

// CompleteExpired menutup internship aktif yang end_date-nya sudah lewat.
// Dipanggil eksplisit (endpoint admin), bukan background worker.
func (r *internshipRepository) CompleteExpired(today string) (int64, error) {
	res := r.db.Model(&model.Internship{}).
		Where("status = ? AND end_date < ?", model.InternshipActive, today).
		Update("status", model.InternshipCompleted)
	return res.RowsAffected, res.Error
}
