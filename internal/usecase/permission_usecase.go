package usecase

import (
	"fmt"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/storage"

	"go.uber.org/zap"
)

// Tipe lampiran yang diterima untuk pengajuan izin.
var allowedAttachmentMime = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpg":       true,
	"image/jpeg":      true,
}

const minReasonLen = 10

// PermissionUsecase mengelola lifecycle pengajuan izin:
// pending -> approved | rejected, keduanya terminal. Pengajuan ulang setelah
// ditolak selalu membuat record baru, tidak pernah memutar balik status.
type PermissionUsecase struct {
	repo            repository.PermissionRepository
	internshipRepo  repository.InternshipRepository
	auditRepo       repository.AuditRepository
	store           storage.EvidenceStore
	maxAttachmentMB int
	log             *zap.Logger
}

func NewPermissionUsecase(
	repo repository.PermissionRepository,
	internshipRepo repository.InternshipRepository,
	auditRepo repository.AuditRepository,
	store storage.EvidenceStore,
	maxAttachmentMB int,
	log *zap.Logger,
) *PermissionUsecase {
	return &PermissionUsecase{
		repo:            repo,
		internshipRepo:  internshipRepo,
		auditRepo:       auditRepo,
		store:           store,
		maxAttachmentMB: maxAttachmentMB,
		log:             log,
	}
}

type SubmitPermissionInput struct {
	Type      string
	Title     string
	Reason    string
	StartDate string
	EndDate   string
}

func (u *PermissionUsecase) validateSubmit(in SubmitPermissionInput) (int, []domain.FieldError) {
	var fields []domain.FieldError

	if in.Type != model.PermissionSick && in.Type != model.PermissionOther {
		fields = append(fields, domain.FieldError{Path: "type", Msg: "harus sick atau other"})
	}
	if len(in.Reason) < minReasonLen {
		fields = append(fields, domain.FieldError{Path: "reason", Msg: fmt.Sprintf("minimal %d karakter", minReasonLen)})
	}

	start, okStart := parseDate(in.StartDate)
	if !okStart {
		fields = append(fields, domain.FieldError{Path: "start_date", Msg: "format harus YYYY-MM-DD"})
	}
	end, okEnd := parseDate(in.EndDate)
	if !okEnd {
		fields = append(fields, domain.FieldError{Path: "end_date", Msg: "format harus YYYY-MM-DD"})
	}

	duration := 0
	if okStart && okEnd {
		if end.Before(start) {
			fields = append(fields, domain.FieldError{Path: "end_date", Msg: "tidak boleh sebelum start_date"})
		} else {
			duration = int(end.Sub(start).Hours()/24) + 1
		}
	}

	return duration, fields
}

func (u *PermissionUsecase) saveAttachment(att *Attachment) (string, *domain.Error) {
	if att == nil {
		return "", nil
	}
	if !allowedAttachmentMime[att.Mime] {
		return "", domain.NewValidationError(domain.FieldError{Path: "attachment", Msg: "tipe file harus pdf/png/jpg/jpeg"})
	}
	if len(att.Data) > u.maxAttachmentMB*1024*1024 {
		return "", domain.NewValidationError(domain.FieldError{Path: "attachment", Msg: fmt.Sprintf("ukuran maksimal %d MB", u.maxAttachmentMB)})
	}

	ref, err := u.store.Save(att.Data, att.Mime)
	if err != nil {
		u.log.Error("gagal menyimpan lampiran", zap.Error(err))
		return "", domain.NewValidationError(domain.FieldError{Path: "attachment", Msg: "gagal menyimpan file"})
	}
	return ref, nil
}

// Submit membuat pengajuan izin baru berstatus pending.
func (u *PermissionUsecase) Submit(actor domain.ActorContext, in SubmitPermissionInput, att *Attachment) (*model.Permission, error) {
	if !actor.IsIntern() {
		return nil, domain.NewForbiddenError("Hanya intern yang bisa mengajukan izin")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, 0); err != nil {
		return nil, err
	}

	duration, fields := u.validateSubmit(in)
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	ref, derr := u.saveAttachment(att)
	if derr != nil {
		return nil, derr
	}

	izin := &model.Permission{
		InternshipID:  actor.InternshipID,
		Type:          in.Type,
		Title:         in.Title,
		Reason:        in.Reason,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		DurationDays:  duration,
		Status:        model.PermissionPending,
		AttachmentRef: ref,
	}
	if err := u.repo.Create(izin); err != nil {
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "permission.submit", "permission", izin.ID, izin.Title)
	return izin, nil
}

// Edit mengubah pengajuan milik sendiri selama masih pending.
func (u *PermissionUsecase) Edit(actor domain.ActorContext, id uint, in SubmitPermissionInput) (*model.Permission, error) {
	izin, err := u.repo.GetByID(id)
	if err != nil {
		return nil, domain.NewNotFoundError("Data izin tidak ditemukan")
	}
	if !actor.IsIntern() || izin.InternshipID != actor.InternshipID {
		return nil, domain.NewForbiddenError("Pengajuan ini bukan milik Anda")
	}

	duration, fields := u.validateSubmit(in)
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	rows, err := u.repo.UpdateIfPending(id, map[string]interface{}{
		"type":          in.Type,
		"title":         in.Title,
		"reason":        in.Reason,
		"start_date":    in.StartDate,
		"end_date":      in.EndDate,
		"duration_days": duration,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Status berubah di antara baca dan tulis: sudah direview.
		return nil, domain.NewInvalidStateError("Pengajuan sudah direview, tidak bisa diubah")
	}

	appendAudit(u.auditRepo, u.log, actor, "permission.edit", "permission", id, "")
	return u.repo.GetByID(id)
}

// Withdraw menghapus pengajuan milik sendiri selama masih pending.
func (u *PermissionUsecase) Withdraw(actor domain.ActorContext, id uint) error {
	izin, err := u.repo.GetByID(id)
	if err != nil {
		return domain.NewNotFoundError("Data izin tidak ditemukan")
	}
	if !actor.IsIntern() || izin.InternshipID != actor.InternshipID {
		return domain.NewForbiddenError("Pengajuan ini bukan milik Anda")
	}

	rows, err := u.repo.DeleteIfPending(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewInvalidStateError("Pengajuan sudah direview, tidak bisa ditarik")
	}

	appendAudit(u.auditRepo, u.log, actor, "permission.withdraw", "permission", id, "")
	return nil
}

// Keputusan review.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// Review memutuskan pengajuan: approve atau reject. Hanya mentor yang
// terikat ke internship pemohon. Precondition status pending dijaga sampai
// commit; review kedua yang balapan kalah dengan ConflictError.
func (u *PermissionUsecase) Review(actor domain.ActorContext, id uint, decision string, rejectionReason string) (*model.Permission, error) {
	if !actor.IsMentor() {
		return nil, domain.NewForbiddenError("Hanya mentor yang bisa mereview izin")
	}

	izin, err := u.repo.GetByID(id)
	if err != nil {
		return nil, domain.NewNotFoundError("Data izin tidak ditemukan")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, izin.InternshipID); err != nil {
		return nil, err
	}
	if izin.Status != model.PermissionPending {
		return nil, domain.NewInvalidStateError("Pengajuan sudah direview")
	}

	var newStatus string
	switch decision {
	case DecisionApprove:
		newStatus = model.PermissionApproved
		rejectionReason = ""
	case DecisionReject:
		newStatus = model.PermissionRejected
		if len(rejectionReason) < minReasonLen {
			return nil, domain.NewValidationError(domain.FieldError{
				Path: "rejection_reason",
				Msg:  fmt.Sprintf("minimal %d karakter", minReasonLen),
			})
		}
	default:
		return nil, domain.NewValidationError(domain.FieldError{Path: "decision", Msg: "harus approve atau reject"})
	}

	rows, err := u.repo.UpdateIfPending(id, map[string]interface{}{
		"status":           newStatus,
		"rejection_reason": rejectionReason,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Status pending saat dibaca tapi berubah saat commit: ada review
		// lain yang menang. Caller boleh re-fetch lalu lihat hasilnya.
		return nil, domain.NewConflictError("Pengajuan baru saja direview oleh proses lain")
	}

	appendAudit(u.auditRepo, u.log, actor, "permission.review", "permission", id, decision)
	return u.repo.GetByID(id)
}

// List mengembalikan pengajuan sesuai peran: intern melihat miliknya,
// mentor melihat seluruh bimbingannya, admin melihat per internship.
func (u *PermissionUsecase) List(actor domain.ActorContext, internshipID uint, filter repository.PermissionFilter) ([]model.Permission, error) {
	switch {
	case actor.IsIntern():
		if actor.InternshipID == 0 {
			return nil, domain.NewForbiddenError("Anda tidak terdaftar pada internship aktif")
		}
		return u.repo.GetByInternship(actor.InternshipID, filter)
	case actor.IsMentor():
		return u.repo.GetByMentor(actor.UserID, filter)
	case actor.IsAdmin():
		if internshipID == 0 {
			return nil, domain.NewValidationError(domain.FieldError{Path: "internship_id", Msg: "wajib diisi"})
		}
		return u.repo.GetByInternship(internshipID, filter)
	default:
		return nil, domain.NewForbiddenError("Role tidak dikenal")
	}
}
