package repository

import (
	"errors"

	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrLogbookMonthEmpty: tidak ada entry pada bulan itu.
	ErrLogbookMonthEmpty = errors.New("logbook bulan tersebut kosong")
	// ErrLogbookMonthMixed: ada entry yang sudah tidak berstatus sent,
	// batch tidak boleh direview ulang.
	ErrLogbookMonthMixed = errors.New("logbook bulan tersebut sudah pernah direview")
)

type LogbookRepository interface {
	Create(entry *model.Logbook) error
	ExistsByDate(internshipID uint, date string) (bool, error)
	GetByInternship(internshipID uint) ([]model.Logbook, error)
	GetByMonth(internshipID uint, month string) ([]model.Logbook, error)
	ReviewMonth(internshipID uint, month string, status string, rejectionReason string) error
}

type logbookRepository struct {
	db *gorm.DB
}

func NewLogbookRepository(db *gorm.DB) LogbookRepository {
	return &logbookRepository{db}
}

func (r *logbookRepository) Create(entry *model.Logbook) error {
	return r.db.Create(entry).Error
}

func (r *logbookRepository) ExistsByDate(internshipID uint, date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Logbook{}).
		Where("internship_id = ? AND date = ?", internshipID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *logbookRepository) GetByInternship(internshipID uint) ([]model.Logbook, error) {
	var list []model.Logbook
	err := r.db.Where("internship_id = ?", internshipID).Order("date asc").Find(&list).Error
	return list, err
}

func (r *logbookRepository) GetByMonth(internshipID uint, month string) ([]model.Logbook, error) {
	var list []model.Logbook
	err := r.db.Where("internship_id = ? AND date LIKE ?", internshipID, month+"-%").
		Order("date asc").Find(&list).Error
	return list, err
}

// ReviewMonth memindahkan status SELURUH entry satu bulan dalam satu
// transaksi. Precondition: semua entry masih sent. Kalau ada yang sudah
// berubah (review paralel, atau bulan sudah diputus), transaksi dibatalkan
// utuh; tidak pernah ada bulan berstatus campuran.
func (r *logbookRepository) ReviewMonth(internshipID uint, month string, status string, rejectionReason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&model.Logbook{}).
			Where("internship_id = ? AND date LIKE ?", internshipID, month+"-%").
			Count(&total).Error; err != nil {
			return err
		}
		if total == 0 {
			return ErrLogbookMonthEmpty
		}

		res := tx.Model(&model.Logbook{}).
			Where("internship_id = ? AND date LIKE ? AND status = ?",
				internshipID, month+"-%", model.LogbookSent).
			Updates(map[string]interface{}{
				"status":           status,
				"rejection_reason": rejectionReason,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != total {
			return ErrLogbookMonthMixed
		}
		return nil
	})
}
