package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type PresenceRepository interface {
	Create(presence *model.Presence) error
	GetByDate(internshipID uint, date string) (*model.Presence, error)
	SetCheckOut(id uint, fields map[string]interface{}) (int64, error)
	GetHistory(internshipID uint) ([]model.Presence, error)
	GetByMonth(internshipID uint, month string, year string) ([]model.Presence, error)
}

type presenceRepository struct {
	db *gorm.DB
}

func NewPresenceRepository(db *gorm.DB) PresenceRepository {
	return &presenceRepository{db}
}

func (r *presenceRepository) Create(presence *model.Presence) error {
	return r.db.Create(presence).Error
}

func (r *presenceRepository) GetByDate(internshipID uint, date string) (*model.Presence, error) {
	var presence model.Presence
	err := r.db.Where("internship_id = ? AND date = ?", internshipID, date).
		First(&presence).Error
	if err != nil {
		return nil, err
	}
	return &presence, nil
}

// SetCheckOut mengisi data pulang hanya jika check_out masih kosong.
// RowsAffected 0 berarti sudah check-out (atau record hilang); dua request
// pulang yang balapan hanya satu yang menang.
func (r *presenceRepository) SetCheckOut(id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&model.Presence{}).
		Where("id = ? AND check_out IS NULL", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *presenceRepository) GetHistory(internshipID uint) ([]model.Presence, error) {
	var history []model.Presence
	err := r.db.Where("internship_id = ?", internshipID).Order("date desc").Find(&history).Error
	return history, err
}

func (r *presenceRepository) GetByMonth(internshipID uint, month string, year string) ([]model.Presence, error) {
	var list []model.Presence
	err := r.db.Where("internship_id = ? AND date LIKE ?", internshipID, year+"-"+month+"-%").
		Order("date asc").Find(&list).Error
	return list, err
}
