package usecase

import (
	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"go.uber.org/zap"
)

var validTaskStatus = map[string]bool{
	model.TaskTodo:       true,
	model.TaskInProgress: true,
	model.TaskCompleted:  true,
}

// TaskUsecase adalah mesin paling sederhana: status bebas berpindah di
// antara todo/in_progress/completed tanpa gate approval.
type TaskUsecase struct {
	repo           repository.TaskRepository
	internshipRepo repository.InternshipRepository
	auditRepo      repository.AuditRepository
	log            *zap.Logger
}

func NewTaskUsecase(
	repo repository.TaskRepository,
	internshipRepo repository.InternshipRepository,
	auditRepo repository.AuditRepository,
	log *zap.Logger,
) *TaskUsecase {
	return &TaskUsecase{repo: repo, internshipRepo: internshipRepo, auditRepo: auditRepo, log: log}
}

type AssignTaskInput struct {
	InternshipID uint
	Title        string
	Description  string
	DueDate      string
}

// Assign membuat task baru berstatus todo untuk intern bimbingan mentor.
func (u *TaskUsecase) Assign(actor domain.ActorContext, in AssignTaskInput) (*model.Task, error) {
	if !actor.IsMentor() {
		return nil, domain.NewForbiddenError("Hanya mentor yang bisa membuat task")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, in.InternshipID); err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	if in.Title == "" {
		fields = append(fields, domain.FieldError{Path: "title", Msg: "wajib diisi"})
	}
	if in.DueDate != "" {
		if _, ok := parseDate(in.DueDate); !ok {
			fields = append(fields, domain.FieldError{Path: "due_date", Msg: "format harus YYYY-MM-DD"})
		}
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	task := &model.Task{
		InternshipID: in.InternshipID,
		MentorID:     actor.UserID,
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		Status:       model.TaskTodo,
	}
	if err := u.repo.Create(task); err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "task.assign", "task", task.ID, in.Title)
	return task, nil
}

// SetStatus mengganti status task. Boleh oleh mentor pemberi task maupun
// intern pemilik internship; satu-satunya validasi adalah enum status.
func (u *TaskUsecase) SetStatus(actor domain.ActorContext, id uint, status string) (*model.Task, error) {
	if !validTaskStatus[status] {
		return nil, domain.NewValidationError(domain.FieldError{
			Path: "status",
			Msg:  "harus todo, in_progress, atau completed",
		})
	}

	task, err := u.repo.GetByID(id)
	if err != nil {
		return nil, domain.NewNotFoundError("Task tidak ditemukan")
	}

	allowed := (actor.IsMentor() && task.MentorID == actor.UserID) ||
		(actor.IsIntern() && task.InternshipID == actor.InternshipID)
	if !allowed {
		return nil, domain.NewForbiddenError("Task ini bukan untuk Anda")
	}

	if err := u.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "task.set_status", "task", id, status)
	return u.repo.GetByID(id)
}

type UpdateTaskInput struct {
	Title       string
	Description string
	DueDate     string
}

// Update mengubah isi task; hanya mentor pemberi task.
func (u *TaskUsecase) Update(actor domain.ActorContext, id uint, in UpdateTaskInput) (*model.Task, error) {
	task, err := u.repo.GetByID(id)
	if err != nil {
		return nil, domain.NewNotFoundError("Task tidak ditemukan")
	}
	if !actor.IsMentor() || task.MentorID != actor.UserID {
		return nil, domain.NewForbiddenError("Hanya mentor pemberi task yang bisa mengubah")
	}

	var fields []domain.FieldError
	if in.Title == "" {
		fields = append(fields, domain.FieldError{Path: "title", Msg: "wajib diisi"})
	}
	if in.DueDate != "" {
		if _, ok := parseDate(in.DueDate); !ok {
			fields = append(fields, domain.FieldError{Path: "due_date", Msg: "format harus YYYY-MM-DD"})
		}
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	err = u.repo.UpdateFields(id, map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
		"due_date":    in.DueDate,
	})
	if err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "task.update", "task", id, "")
	return u.repo.GetByID(id)
}

// Remove menghapus task; hanya mentor pemberi task.
func (u *TaskUsecase) Remove(actor domain.ActorContext, id uint) error {
	task, err := u.repo.GetByID(id)
	if err != nil {
		return domain.NewNotFoundError("Task tidak ditemukan")
	}
	if !actor.IsMentor() || task.MentorID != actor.UserID {
		return domain.NewForbiddenError("Hanya mentor pemberi task yang bisa menghapus")
	}

	if err := u.repo.Delete(id); err != nil {
		return err
	}

	appendAudit(u.auditRepo, u.log, actor, "task.remove", "task", id, task.Title)
	return nil
}

// List mengembalikan task satu internship.
func (u *TaskUsecase) List(actor domain.ActorContext, internshipID uint) ([]model.Task, error) {
	internship, err := resolveInternship(u.internshipRepo, actor, internshipID)
	if err != nil {
		return nil, err
	}
	return u.repo.GetByInternship(internship.ID)
}
