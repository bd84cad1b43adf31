package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetStats(date string, month string, year string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

// GetStats mengumpulkan agregat untuk monitoring admin: jumlah internship
// aktif, pengajuan izin pending, dan sebaran status kehadiran hari ini +
// bulan berjalan.
func (r *dashboardRepository) GetStats(date string, month string, year string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var activeInternships int64
	if err := r.db.Model(&model.Internship{}).
		Where("status = ?", model.InternshipActive).
		Count(&activeInternships).Error; err != nil {
		return nil, err
	}
	stats["internship_aktif"] = activeInternships

	var pendingPermissions int64
	if err := r.db.Model(&model.Permission{}).
		Where("status = ?", model.PermissionPending).
		Count(&pendingPermissions).Error; err != nil {
		return nil, err
	}
	stats["izin_pending"] = pendingPermissions

	var sentLogbooks int64
	if err := r.db.Model(&model.Logbook{}).
		Where("status = ?", model.LogbookSent).
		Count(&sentLogbooks).Error; err != nil {
		return nil, err
	}
	stats["logbook_belum_direview"] = sentLogbooks

	daily, err := r.countPresenceByStatus(r.db.Where("date = ?", date))
	if err != nil {
		return nil, err
	}
	stats["hari_ini"] = daily

	monthly, err := r.countPresenceByStatus(r.db.Where("date LIKE ?", year+"-"+month+"-%"))
	if err != nil {
		return nil, err
	}
	stats["bulan_ini"] = monthly

	return stats, nil
}

func (r *dashboardRepository) countPresenceByStatus(q *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := q.Model(&model.Presence{}).
		Group("status").Select("status, count(*) as count").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := map[string]int64{
		model.PresenceHadir:     0,
		model.PresenceTerlambat: 0,
		model.PresenceIzin:      0,
	}
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
