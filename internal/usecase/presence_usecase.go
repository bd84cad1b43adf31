package usecase

import (
	"errors"
	"fmt"
	"time"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var allowedPhotoMime = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

// PresenceUsecase adalah gate kehadiran harian:
// belum-absen -> checked-in -> checked-out (terminal). Hari yang tercakup
// izin approved diturunkan sebagai status izin, bukan hasil transisi.
type PresenceUsecase struct {
	repo           repository.PresenceRepository
	permissionRepo repository.PermissionRepository
	internshipRepo repository.InternshipRepository
	auditRepo      repository.AuditRepository
	store          storage.EvidenceStore
	cutoff         string // Format HH:MM, dari konfigurasi
	now            func() time.Time
	log            *zap.Logger
}

func NewPresenceUsecase(
	repo repository.PresenceRepository,
	permissionRepo repository.PermissionRepository,
	internshipRepo repository.InternshipRepository,
	auditRepo repository.AuditRepository,
	store storage.EvidenceStore,
	cutoff string,
	log *zap.Logger,
) *PresenceUsecase {
	return &PresenceUsecase{
		repo:           repo,
		permissionRepo: permissionRepo,
		internshipRepo: internshipRepo,
		auditRepo:      auditRepo,
		store:          store,
		cutoff:         cutoff,
		now:            time.Now,
		log:            log,
	}
}

// SetClock mengganti sumber waktu; dipakai test untuk skenario cutoff.
func (u *PresenceUsecase) SetClock(now func() time.Time) {
	u.now = now
}

type EvidenceInput struct {
	Photo     []byte
	PhotoMime string
	Latitude  *float64
	Longitude *float64
	Location  string
}

// validateEvidence memastikan foto dan koordinat ada dan masuk akal.
// Pencocokan wajah / radius bukan urusan gate ini; capture-nya eksternal.
func validateEvidence(in EvidenceInput) error {
	if len(in.Photo) == 0 || !allowedPhotoMime[in.PhotoMime] {
		return domain.NewEvidenceMissingError("Foto selfie wajib dilampirkan")
	}
	if in.Latitude == nil || in.Longitude == nil {
		return domain.NewEvidenceMissingError("Lokasi (latitude/longitude) wajib dikirim")
	}
	if *in.Latitude < -90 || *in.Latitude > 90 || *in.Longitude < -180 || *in.Longitude > 180 {
		return domain.NewValidationError(domain.FieldError{Path: "latitude", Msg: "koordinat di luar jangkauan"})
	}
	return nil
}

func coordString(in EvidenceInput) string {
	return fmt.Sprintf("%f,%f", *in.Latitude, *in.Longitude)
}

// CheckIn membuat record kehadiran hari ini. Status hadir bila waktu masuk
// tidak melewati cutoff, selain itu terlambat.
func (u *PresenceUsecase) CheckIn(actor domain.ActorContext, in EvidenceInput) (*model.Presence, error) {
	if !actor.IsIntern() {
		return nil, domain.NewForbiddenError("Hanya intern yang melakukan absensi")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, 0); err != nil {
		return nil, err
	}
	if err := validateEvidence(in); err != nil {
		return nil, err
	}

	now := u.now()
	today := now.Format(DateLayout)

	// Hari yang tercakup izin approved tidak boleh check-in; statusnya
	// sudah izin secara turunan.
	if izin, err := u.permissionRepo.FindApprovedCovering(actor.InternshipID, today); err == nil && izin != nil {
		return nil, domain.NewInvalidStateError("Anda sedang izin pada tanggal ini")
	}

	if existing, err := u.repo.GetByDate(actor.InternshipID, today); err == nil && existing != nil {
		return nil, domain.NewAlreadyCheckedInError()
	}

	status := model.PresenceHadir
	cutoffClock, err := time.Parse(ClockLayout, u.cutoff)
	if err != nil {
		cutoffClock, _ = time.Parse(ClockLayout, "09:00")
	}
	cutoffToday := time.Date(now.Year(), now.Month(), now.Day(),
		cutoffClock.Hour(), cutoffClock.Minute(), 0, 0, now.Location())
	if now.After(cutoffToday) {
		status = model.PresenceTerlambat
	}

	photoRef, err := u.store.Save(in.Photo, in.PhotoMime)
	if err != nil {
		u.log.Error("gagal menyimpan foto check-in", zap.Error(err))
		return nil, domain.NewEvidenceMissingError("Foto tidak bisa disimpan, ulangi absensi")
	}

	presence := &model.Presence{
		InternshipID:    actor.InternshipID,
		Date:            today,
		CheckIn:         &now,
		CheckinCoord:    coordString(in),
		CheckinLocation: in.Location,
		CheckinPhotoRef: photoRef,
		Status:          status,
	}
	if err := u.repo.Create(presence); err != nil {
		// Unique index (internship_id, date): dua check-in yang balapan
		// hanya satu yang membuat record.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewAlreadyCheckedInError()
		}
		return nil, err
	}

	appendAudit(u.auditRepo, u.log, actor, "presence.checkin", "presence", presence.ID, status)
	return presence, nil
}

// CheckOut menutup record hari ini. Setelah check-out terisi record menjadi
// immutable; guard check_out IS NULL memastikan hanya satu penulis menang.
func (u *PresenceUsecase) CheckOut(actor domain.ActorContext, in EvidenceInput) (*model.Presence, error) {
	if !actor.IsIntern() {
		return nil, domain.NewForbiddenError("Hanya intern yang melakukan absensi")
	}
	if _, err := resolveInternship(u.internshipRepo, actor, 0); err != nil {
		return nil, err
	}
	if err := validateEvidence(in); err != nil {
		return nil, err
	}

	now := u.now()
	today := now.Format(DateLayout)

	presence, err := u.repo.GetByDate(actor.InternshipID, today)
	if err != nil || presence == nil || presence.CheckIn == nil {
		return nil, domain.NewNotCheckedInError()
	}
	if presence.CheckOut != nil {
		return nil, domain.NewAlreadyCheckedOutError()
	}
	if !now.After(*presence.CheckIn) {
		return nil, domain.NewValidationError(domain.FieldError{Path: "check_out", Msg: "harus setelah check-in"})
	}

	photoRef, err := u.store.Save(in.Photo, in.PhotoMime)
	if err != nil {
		u.log.Error("gagal menyimpan foto check-out", zap.Error(err))
		return nil, domain.NewEvidenceMissingError("Foto tidak bisa disimpan, ulangi absensi")
	}

	rows, err := u.repo.SetCheckOut(presence.ID, map[string]interface{}{
		"check_out":          now,
		"checkout_coord":     coordString(in),
		"checkout_location":  in.Location,
		"checkout_photo_ref": photoRef,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.NewAlreadyCheckedOutError()
	}

	appendAudit(u.auditRepo, u.log, actor, "presence.checkout", "presence", presence.ID, "")
	return u.repo.GetByDate(actor.InternshipID, today)
}

// TodayStatus mengembalikan kondisi kehadiran hari ini: record absensi bila
// ada, status izin turunan bila tercakup izin approved, selain itu
// belum_absen.
func (u *PresenceUsecase) TodayStatus(actor domain.ActorContext) (string, *model.Presence, error) {
	if _, err := resolveInternship(u.internshipRepo, actor, 0); err != nil {
		return "", nil, err
	}

	today := u.now().Format(DateLayout)

	if presence, err := u.repo.GetByDate(actor.InternshipID, today); err == nil && presence != nil {
		return presence.Status, presence, nil
	}

	if izin, err := u.permissionRepo.FindApprovedCovering(actor.InternshipID, today); err == nil && izin != nil {
		return model.PresenceIzin, nil, nil
	}

	return "belum_absen", nil, nil
}

// RecapResult adalah rekap kehadiran satu bulan. IzinDays dihitung dari
// izin approved yang beririsan dengan bulan itu, bukan dari record absensi.
type RecapResult struct {
	Hadir     int              `json:"hadir"`
	Terlambat int              `json:"terlambat"`
	Izin      int              `json:"izin"`
	Detail    []model.Presence `json:"detail"`
}

// Recap menghitung statistik kehadiran bulanan.
func (u *PresenceUsecase) Recap(actor domain.ActorContext, internshipID uint, month string, year string) (*RecapResult, error) {
	internship, err := resolveInternship(u.internshipRepo, actor, internshipID)
	if err != nil {
		return nil, err
	}

	firstDay, err2 := time.Parse(DateLayout, year+"-"+month+"-01")
	if err2 != nil {
		return nil, domain.NewValidationError(domain.FieldError{Path: "month", Msg: "bulan/tahun tidak valid"})
	}
	lastDay := firstDay.AddDate(0, 1, -1)

	list, err := u.repo.GetByMonth(internship.ID, month, year)
	if err != nil {
		return nil, err
	}

	rekap := &RecapResult{Detail: list}
	for _, p := range list {
		switch p.Status {
		case model.PresenceHadir:
			rekap.Hadir++
		case model.PresenceTerlambat:
			rekap.Terlambat++
		}
	}

	// Hari izin diturunkan dari rentang izin approved yang memotong bulan.
	approved, err := u.permissionRepo.GetApprovedOverlapping(
		internship.ID, firstDay.Format(DateLayout), lastDay.Format(DateLayout))
	if err != nil {
		return nil, err
	}
	for _, izin := range approved {
		start, okStart := parseDate(izin.StartDate)
		end, okEnd := parseDate(izin.EndDate)
		if !okStart || !okEnd {
			continue
		}
		if start.Before(firstDay) {
			start = firstDay
		}
		if end.After(lastDay) {
			end = lastDay
		}
		rekap.Izin += int(end.Sub(start).Hours()/24) + 1
	}

	return rekap, nil
}

// History mengembalikan seluruh riwayat absensi, terbaru dulu.
func (u *PresenceUsecase) History(actor domain.ActorContext, internshipID uint) ([]model.Presence, error) {
	internship, err := resolveInternship(u.internshipRepo, actor, internshipID)
	if err != nil {
		return nil, err
	}
	return u.repo.GetHistory(internship.ID)
}
