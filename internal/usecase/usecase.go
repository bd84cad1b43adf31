package usecase

import (
	"time"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"go.uber.org/zap"
)

// Format tanggal dan bulan yang dipakai seluruh engine.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// Attachment adalah payload biner yang sudah di-capture caller (upload
// mechanics eksternal); engine hanya memvalidasi mime dan ukuran.
type Attachment struct {
	Data []byte
	Mime string
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

// resolveInternship menentukan internship mana yang boleh disentuh aktor:
// intern hanya internship miliknya, mentor hanya internship bimbingannya,
// admin bebas.
func resolveInternship(repo repository.InternshipRepository, actor domain.ActorContext, internshipID uint) (*model.Internship, error) {
	switch {
	case actor.IsIntern():
		if actor.InternshipID == 0 {
			return nil, domain.NewForbiddenError("Anda tidak terdaftar pada internship aktif")
		}
		if internshipID != 0 && internshipID != actor.InternshipID {
			return nil, domain.NewForbiddenError("Internship tersebut bukan milik Anda")
		}
		internshipID = actor.InternshipID
	case actor.IsMentor(), actor.IsAdmin():
		if internshipID == 0 {
			return nil, domain.NewValidationError(domain.FieldError{Path: "internship_id", Msg: "wajib diisi"})
		}
	default:
		return nil, domain.NewForbiddenError("Role tidak dikenal")
	}

	internship, err := repo.GetByID(internshipID)
	if err != nil {
		return nil, domain.NewNotFoundError("Internship tidak ditemukan")
	}

	if actor.IsMentor() {
		if internship.MentorID == nil || *internship.MentorID != actor.UserID {
			return nil, domain.NewForbiddenError("Anda bukan mentor dari internship ini")
		}
	}

	return internship, nil
}

// appendAudit menulis fakta audit. Gagal menulis audit tidak membatalkan
// perintah yang sudah commit; cukup dicatat di log.
func appendAudit(repo repository.AuditRepository, log *zap.Logger, actor domain.ActorContext, action, entity string, entityID uint, detail string) {
	err := repo.Append(&model.AuditLog{
		ActorID:   actor.UserID,
		ActorRole: actor.Role,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
	})
	if err != nil {
		log.Error("gagal menulis audit log",
			zap.String("action", action),
			zap.Uint("entity_id", entityID),
			zap.Error(err))
	}
}
