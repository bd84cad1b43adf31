package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *model.Task) error
	GetByID(id uint) (*model.Task, error)
	GetByInternship(internshipID uint) ([]model.Task, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db}
}

func (r *taskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByInternship(internshipID uint) ([]model.Task, error) {
	var list []model.Task
	err := r.db.Where("internship_id = ?", internshipID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *taskRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&model.Task{}).Where("id = ?", id).Updates(fields).Error
}

func (r *taskRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.Task{}).Where("id = ?", id).Update("status", status).Error
}

func (r *taskRepository) Delete(id uint) error {
	return r.db.Delete(&model.Task{}, id).Error
}
