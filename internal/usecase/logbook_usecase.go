package usecase

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LogbookUsecase mengelola catatan harian dan review batch per bulan.
// Satu bulan selalu berpindah status utuh; tidak pernah ada bulan dengan
// sebagian entry approved dan sebagian rejected dari satu keputusan.
type LogbookUsecase struct {
	repo           repository.LogbookRepository
	internshipRepo repository.InternshipRepository
	auditRepo      repository.AuditRepository
	log            *zap.Logger
}

func NewLogbookUsecase(
	repo repository.LogbookRepository,
	internshipRepo repository.InternshipRepository,
	auditRepo repository.AuditRepository,
	log *zap.Logger,
) *LogbookUsecase {
	return &LogbookUsecase{repo: repo, internshipRepo: internshipRepo, auditRepo: auditRepo, log: log}
}

type SubmitLogbookInput struct {
	Date           string
	ActivityDetail string
	ResultOutput   string
}

// SubmitDay membuat entry logbook berstatus sent, satu per tanggal.
func (u *LogbookUsecase) SubmitDay(actor domain.ActorContext, in SubmitLogbookInput) (*model.Logbook, error) {
	if !actor.IsIntern() {
		return nil, domain.NewForbiddenError("Hanya intern yang bisa mengisi logbook")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, 0); err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	if _, ok := parseDate(in.Date); !ok {
		fields = append(fields, domain.FieldError{Path: "date", Msg: "format harus YYYY-MM-DD"})
	}
	if in.ActivityDetail == "" {
		fields = append(fields, domain.FieldError{Path: "activity_detail", Msg: "wajib diisi"})
	}
	if in.ResultOutput == "" {
		fields = append(fields, domain.FieldError{Path: "result_output", Msg: "wajib diisi"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	exists, err := u.repo.ExistsByDate(actor.InternshipID, in.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateError("Logbook untuk tanggal tersebut sudah ada")
	}

	entry := &model.Logbook{
		InternshipID:   actor.InternshipID,
		Date:           in.Date,
		ActivityDetail: in.ActivityDetail,
		ResultOutput:   in.ResultOutput,
		Status:         model.LogbookSent,
	}
	if err := u.repo.Create(entry); err != nil {
		// Unique index (internship_id, date) menangkap submit ganda yang
		// lolos dari pre-check karena balapan.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewDuplicateError("Logbook untuk tanggal tersebut sudah ada")
		}
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "logbook.submit", "logbook", entry.ID, in.Date)
	return entry, nil
}

// Months mengelompokkan entry per bulan kalender: bulan terbaru dulu,
// entry dalam bulan urut tanggal naik. Murni proyeksi baca, tidak dipersist.
func (u *LogbookUsecase) Months(actor domain.ActorContext, internshipID uint) ([]model.LogbookMonth, error) {
	internship, err := resolveInternship(u.internshipRepo, actor, internshipID)
	if err != nil {
		return nil, err
	}

	entries, err := u.repo.GetByInternship(internship.ID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Logbook)
	for _, e := range entries {
		if len(e.Date) < len(MonthLayout) {
			continue
		}
		key := e.Date[:len(MonthLayout)]
		grouped[key] = append(grouped[key], e)
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	months := make([]model.LogbookMonth, 0, len(keys))
	for _, k := range keys {
		months = append(months, model.LogbookMonth{
			Month:   k,
			Status:  monthStatus(grouped[k]),
			Entries: grouped[k],
		})
	}
	return months, nil
}

// monthStatus menurunkan status agregat bulan. Setelah review semua entry
// seragam; entry baru yang masuk setelah bulan diputus membuat bulan
// kembali terbaca sent (butuh review lagi).
func monthStatus(entries []model.Logbook) string {
	status := entries[0].Status
	for _, e := range entries[1:] {
		if e.Status != status {
			return model.LogbookSent
		}
	}
	return status
}

// ReviewMonth memutuskan seluruh entry satu bulan sekaligus, all-or-nothing.
func (u *LogbookUsecase) ReviewMonth(actor domain.ActorContext, internshipID uint, month string, decision string, rejectionReason string) error {
	if !actor.IsMentor() {
		return domain.NewForbiddenError("Hanya mentor yang bisa mereview logbook")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, internshipID); err != nil {
		return err
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return domain.NewValidationError(domain.FieldError{Path: "month", Msg: "format harus YYYY-MM"})
	}

	var newStatus string
	switch decision {
	case DecisionApprove:
		newStatus = model.LogbookApproved
		rejectionReason = ""
	case DecisionReject:
		newStatus = model.LogbookRejected
		if len(rejectionReason) < minReasonLen {
			return domain.NewValidationError(domain.FieldError{
				Path: "rejection_reason",
				Msg:  fmt.Sprintf("minimal %d karakter", minReasonLen),
			})
		}
	default:
		return domain.NewValidationError(domain.FieldError{Path: "decision", Msg: "harus approve atau reject"})
	}

	err := u.repo.ReviewMonth(internshipID, month, newStatus, rejectionReason)
	switch {
	case errors.Is(err, repository.ErrLogbookMonthEmpty):
		return domain.NewNotFoundError("Tidak ada logbook pada bulan tersebut")
	case errors.Is(err, repository.ErrLogbookMonthMixed):
		return domain.NewInvalidStateError("Logbook bulan tersebut sudah pernah direview")
	case err != nil:
		return err
	}

	appendAudit(u.auditRepo, u.log, actor, "logbook.review_month", "logbook_month", internshipID, month+" "+decision)
	return nil
}
