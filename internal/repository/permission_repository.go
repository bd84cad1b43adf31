package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

// PermissionFilter adalah parameter query eksplisit untuk listing; filtering
// dilakukan di sisi server, bukan di client.
type PermissionFilter struct {
	Status string
	Month  string // "01".."12"
	Year   string // "2026"
}

type PermissionRepository interface {
	Create(izin *model.Permission) error
	GetByID(id uint) (*model.Permission, error)
	GetByInternship(internshipID uint, filter PermissionFilter) ([]model.Permission, error)
	GetByMentor(mentorID uint, filter PermissionFilter) ([]model.Permission, error)
	UpdateIfPending(id uint, fields map[string]interface{}) (int64, error)
	DeleteIfPending(id uint) (int64, error)
	FindApprovedCovering(internshipID uint, date string) (*model.Permission, error)
	GetApprovedOverlapping(internshipID uint, from string, to string) ([]model.Permission, error)
}

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db}
}

func (r *permissionRepository) Create(izin *model.Permission) error {
	return r.db.Create(izin).Error
}

func (r *permissionRepository) GetByID(id uint) (*model.Permission, error) {
	var izin model.Permission
	err := r.db.First(&izin, id).Error
	if err != nil {
		return nil, err
	}
	return &izin, nil
}

func applyPermissionFilter(q *gorm.DB, filter PermissionFilter) *gorm.DB {
	if filter.Status != "" {
		q = q.Where("permissions.status = ?", filter.Status)
	}
	if filter.Year != "" && filter.Month != "" {
		q = q.Where("permissions.start_date LIKE ?", filter.Year+"-"+filter.Month+"-%")
	} else if filter.Year != "" {
		q = q.Where("permissions.start_date LIKE ?", filter.Year+"-%")
	}
	return q
}

func (r *permissionRepository) GetByInternship(internshipID uint, filter PermissionFilter) ([]model.Permission, error) {
	var list []model.Permission
	q := r.db.Where("internship_id = ?", internshipID)
	err := applyPermissionFilter(q, filter).Order("created_at desc").Find(&list).Error
	return list, err
}

// GetByMentor mengambil pengajuan seluruh intern bimbingan mentor ini,
// join ke internships untuk mencari yang mentor_id-nya cocok.
func (r *permissionRepository) GetByMentor(mentorID uint, filter PermissionFilter) ([]model.Permission, error) {
	var list []model.Permission
	q := r.db.Joins("JOIN internships ON internships.id = permissions.internship_id").
		Where("internships.mentor_id = ?", mentorID)
	err := applyPermissionFilter(q, filter).Order("permissions.created_at desc").Find(&list).Error
	return list, err
}

// UpdateIfPending menulis field hanya jika status masih pending. RowsAffected
// 0 berarti precondition gagal (sudah direview, atau record tidak ada);
// pemanggil yang memutuskan error persisnya.
func (r *permissionRepository) UpdateIfPending(id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&model.Permission{}).
		Where("id = ? AND status = ?", id, model.PermissionPending).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *permissionRepository) DeleteIfPending(id uint) (int64, error) {
	res := r.db.Where("id = ? AND status = ?", id, model.PermissionPending).
		Delete(&model.Permission{})
	return res.RowsAffected, res.Error
}

// FindApprovedCovering mencari izin approved yang rentangnya memuat tanggal
// tersebut. Dipakai Attendance Gate untuk menurunkan status izin.
func (r *permissionRepository) FindApprovedCovering(internshipID uint, date string) (*model.Permission, error) {
	var izin model.Permission
	err := r.db.Where("internship_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
		internshipID, model.PermissionApproved, date, date).
		First(&izin).Error
	if err != nil {
		return nil, err
	}
	return &izin, nil
}

// GetApprovedOverlapping mengambil izin approved yang rentangnya beririsan
// dengan [from, to]. Dipakai rekap bulanan untuk menandai hari-hari izin.
func (r *permissionRepository) GetApprovedOverlapping(internshipID uint, from string, to string) ([]model.Permission, error) {
	var list []model.Permission
	err := r.db.Where("internship_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
		internshipID, model.PermissionApproved, to, from).
		Order("start_date asc").Find(&list).Error
	return list, err
}
