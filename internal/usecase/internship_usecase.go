package usecase

import (
	"fmt"
	"time"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"go.uber.org/zap"
)

var validInternshipStatus = map[string]bool{
	model.InternshipActive:     true,
	model.InternshipCompleted:  true,
	model.InternshipTerminated: true,
}

// InternshipUsecase mengelola data internship; seluruh mutasi khusus admin.
type InternshipUsecase struct {
	repo      repository.InternshipRepository
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	log       *zap.Logger
}

func NewInternshipUsecase(
	repo repository.InternshipRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
	log *zap.Logger,
) *InternshipUsecase {
	return &InternshipUsecase{repo: repo, userRepo: userRepo, auditRepo: auditRepo, log: log}
}

type CreateInternshipInput struct {
	InternID  uint
	MentorID  *uint
	StartDate string
	EndDate   string
}

func (u *InternshipUsecase) Create(actor domain.ActorContext, in CreateInternshipInput) (*model.Internship, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbiddenError("Hanya admin yang bisa membuat internship")
	}

	var fields []domain.FieldError
	start, okStart := parseDate(in.StartDate)
	if !okStart {
		fields = append(fields, domain.FieldError{Path: "start_date", Msg: "format harus YYYY-MM-DD"})
	}
	end, okEnd := parseDate(in.EndDate)
	if !okEnd {
		fields = append(fields, domain.FieldError{Path: "end_date", Msg: "format harus YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		fields = append(fields, domain.FieldError{Path: "end_date", Msg: "tidak boleh sebelum start_date"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	intern, err := u.userRepo.GetByID(in.InternID)
	if err != nil || intern.Role != domain.RoleIntern {
		return nil, domain.NewValidationError(domain.FieldError{Path: "intern_id", Msg: "bukan user intern yang valid"})
	}
	if in.MentorID != nil {
		mentor, err := u.userRepo.GetByID(*in.MentorID)
		if err != nil || mentor.Role != domain.RoleMentor {
			return nil, domain.NewValidationError(domain.FieldError{Path: "mentor_id", Msg: "bukan user mentor yang valid"})
		}
	}

	internship := &model.Internship{
		InternID:  in.InternID,
		MentorID:  in.MentorID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    model.InternshipActive,
	}
	if err := u.repo.Create(internship); err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "internship.create", "internship", internship.ID, "")
	return internship, nil
}

func (u *InternshipUsecase) AssignMentor(actor domain.ActorContext, id uint, mentorID uint) (*model.Internship, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbiddenError("Hanya admin yang bisa menetapkan mentor")
	}
	if _, err := u.repo.GetByID(id); err != nil {
		return nil, domain.NewNotFoundError("Internship tidak ditemukan")
	}

	mentor, err := u.userRepo.GetByID(mentorID)
	if err != nil || mentor.Role != domain.RoleMentor {
		return nil, domain.NewValidationError(domain.FieldError{Path: "mentor_id", Msg: "bukan user mentor yang valid"})
	}

	if err := u.repo.UpdateFields(id, map[string]interface{}{"mentor_id": mentorID}); err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "internship.assign_mentor", "internship", id, fmt.Sprintf("mentor_id=%d", mentorID))
	return u.repo.GetByID(id)
}

func (u *InternshipUsecase) SetStatus(actor domain.ActorContext, id uint, status string) (*model.Internship, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbiddenError("Hanya admin yang bisa mengubah status internship")
	}
	if !validInternshipStatus[status] {
		return nil, domain.NewValidationError(domain.FieldError{
			Path: "status",
			Msg:  "harus active, completed, atau terminated",
		})
	}
	if _, err := u.repo.GetByID(id); err != nil {
		return nil, domain.NewNotFoundError("Internship tidak ditemukan")
	}

	if err := u.repo.UpdateFields(id, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "internship.set_status", "internship", id, status)
	return u.repo.GetByID(id)
}

// CompleteExpired menutup internship yang sudah lewat end_date. Sweep
// eksplisit yang dipanggil admin; tidak ada worker background.
func (u *InternshipUsecase) CompleteExpired(actor domain.ActorContext) (int64, error) {
	if !actor.IsAdmin() {
		return 0, domain.NewForbiddenError("Hanya admin yang bisa menjalankan sweep")
	}

	today := time.Now().Format(DateLayout)
	count, err := u.repo.CompleteExpired(today)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		appendAudit(u.auditRepo, u.log, actor, "internship.complete_expired", "internship", 0, fmt.Sprintf("%d internship ditutup", count))
	}
	return count, nil
}

func (u *InternshipUsecase) Get(actor domain.ActorContext, id uint) (*model.Internship, error) {
	return resolveInternship(u.repo, actor, id)
}

func (u *InternshipUsecase) List(actor domain.ActorContext) ([]model.Internship, error) {
	switch {
	case actor.IsAdmin():
		return u.repo.List()
	case actor.IsMentor():
		return u.repo.GetByMentor(actor.UserID)
	default:
		return nil, domain.NewForbiddenError("Akses ditolak")
	}
}
