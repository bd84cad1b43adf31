package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

// AuditRepository append-only: tidak ada update/delete, tidak butuh
// koordinasi read-modify-write.
type AuditRepository interface {
	Append(log *model.AuditLog) error
	GetRecent(limit int) ([]model.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db}
}

func (r *auditRepository) Append(log *model.AuditLog) error {
	return r.db.Create(log).Error
}

func (r *auditRepository) GetRecent(limit int) ([]model.AuditLog, error) {
	var list []model.AuditLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}
