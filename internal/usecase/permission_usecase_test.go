package usecase

import (
	"strings"
	"testing"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmitInput() SubmitPermissionInput {
	return SubmitPermissionInput{
		Type:      model.PermissionSick,
		Title:     "Izin sakit",
		Reason:    "Demam tinggi sejak semalam",
		StartDate: "2026-01-10",
		EndDate:   "2026-01-11",
	}
}

func TestSubmitPermissionValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SubmitPermissionInput)
		wantErr bool
	}{
		{
			name:   "pengajuan valid",
			mutate: func(in *SubmitPermissionInput) {},
		},
		{
			name:    "alasan kurang dari 10 karakter",
			mutate:  func(in *SubmitPermissionInput) { in.Reason = "sakit" },
			wantErr: true,
		},
		{
			name:   "alasan tepat 10 karakter",
			mutate: func(in *SubmitPermissionInput) { in.Reason = "1234567890" },
		},
		{
			name:    "end_date sebelum start_date",
			mutate:  func(in *SubmitPermissionInput) { in.EndDate = "2026-01-09" },
			wantErr: true,
		},
		{
			name:    "tanggal tidak valid",
			mutate:  func(in *SubmitPermissionInput) { in.StartDate = "10-01-2026" },
			wantErr: true,
		},
		{
			name:    "tipe tidak dikenal",
			mutate:  func(in *SubmitPermissionInput) { in.Type = "vacation" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			uc := f.permissionUsecase()

			in := validSubmitInput()
			tt.mutate(&in)

			izin, err := uc.Submit(f.intern, in, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.PermissionPending, izin.Status)
			}
		})
	}
}

func TestSubmitPermissionDuration(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, izin.DurationDays)
	assert.Equal(t, model.PermissionPending, izin.Status)
}

func TestSubmitPermissionAttachment(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	t.Run("tipe file tidak didukung", func(t *testing.T) {
		_, err := uc.Submit(f.intern, validSubmitInput(), &Attachment{
			Data: []byte("MZ"),
			Mime: "application/x-msdownload",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})

	t.Run("ukuran melebihi batas", func(t *testing.T) {
		_, err := uc.Submit(f.intern, validSubmitInput(), &Attachment{
			Data: make([]byte, 6*1024*1024),
			Mime: "application/pdf",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})

	t.Run("pdf valid tersimpan", func(t *testing.T) {
		izin, err := uc.Submit(f.intern, validSubmitInput(), &Attachment{
			Data: []byte("%PDF-1.4"),
			Mime: "application/pdf",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, izin.AttachmentRef)
	})
}

// Skenario: intern mengajukan izin sakit, mentor menolak dengan alasan,
// lalu review kedua harus gagal karena status sudah terminal.
func TestReviewPermissionScenario(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, izin.DurationDays)

	rejected, err := uc.Review(f.mentor, izin.ID, DecisionReject, "Surat dokter belum dilampirkan")
	require.NoError(t, err)
	assert.Equal(t, model.PermissionRejected, rejected.Status)
	assert.Equal(t, "Surat dokter belum dilampirkan", rejected.RejectionReason)

	_, err = uc.Review(f.mentor, izin.ID, DecisionApprove, "")
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidState, domain.CodeOf(err))
}

func TestReviewPermissionRejectionReason(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	t.Run("reject tanpa alasan gagal", func(t *testing.T) {
		izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
		require.NoError(t, err)

		_, err = uc.Review(f.mentor, izin.ID, DecisionReject, "")
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

		// State tidak berubah setelah operasi gagal.
		stored, err := repository.NewPermissionRepository(f.db).GetByID(izin.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PermissionPending, stored.Status)
		assert.Empty(t, stored.RejectionReason)
	})

	t.Run("reject dengan alasan pendek gagal", func(t *testing.T) {
		izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
		require.NoError(t, err)

		_, err = uc.Review(f.mentor, izin.ID, DecisionReject, "kurang")
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})

	t.Run("approve tidak butuh alasan", func(t *testing.T) {
		izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
		require.NoError(t, err)

		approved, err := uc.Review(f.mentor, izin.ID, DecisionApprove, "")
		require.NoError(t, err)
		assert.Equal(t, model.PermissionApproved, approved.Status)
		assert.Empty(t, approved.RejectionReason)
	})
}

func TestReviewPermissionOnlyBoundMentor(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
	require.NoError(t, err)

	_, err = uc.Review(f.otherMentor, izin.ID, DecisionApprove, "")
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	_, err = uc.Review(f.intern, izin.ID, DecisionApprove, "")
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}

func TestEditAndWithdrawPendingOnly(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
	require.NoError(t, err)

	// Edit saat pending boleh.
	in := validSubmitInput()
	in.Reason = strings.Repeat("revisi alasan ", 2)
	edited, err := uc.Edit(f.intern, izin.ID, in)
	require.NoError(t, err)
	assert.Equal(t, in.Reason, edited.Reason)

	_, err = uc.Review(f.mentor, izin.ID, DecisionApprove, "")
	require.NoError(t, err)

	// Setelah terminal, record immutable.
	_, err = uc.Edit(f.intern, izin.ID, in)
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidState, domain.CodeOf(err))

	err = uc.Withdraw(f.intern, izin.ID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeInvalidState, domain.CodeOf(err))
}

func TestWithdrawDeletesPending(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	izin, err := uc.Submit(f.intern, validSubmitInput(), nil)
	require.NoError(t, err)

	require.NoError(t, uc.Withdraw(f.intern, izin.ID))

	_, err = repository.NewPermissionRepository(f.db).GetByID(izin.ID)
	require.Error(t, err)
}

func TestListPermissionsFilter(t *testing.T) {
	f := newFixture(t)
	uc := f.permissionUsecase()

	first, err := uc.Submit(f.intern, validSubmitInput(), nil)
	require.NoError(t, err)

	second := validSubmitInput()
	second.StartDate = "2026-02-03"
	second.EndDate = "2026-02-03"
	_, err = uc.Submit(f.intern, second, nil)
	require.NoError(t, err)

	_, err = uc.Review(f.mentor, first.ID, DecisionApprove, "")
	require.NoError(t, err)

	approved, err := uc.List(f.intern, 0, repository.PermissionFilter{Status: model.PermissionApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)

	februari, err := uc.List(f.intern, 0, repository.PermissionFilter{Month: "02", Year: "2026"})
	require.NoError(t, err)
	require.Len(t, februari, 1)
	assert.Equal(t, model.PermissionPending, februari[0].Status)

	// Mentor melihat pengajuan bimbingannya; mentor lain tidak.
	mine, err := uc.List(f.mentor, 0, repository.PermissionFilter{})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	others, err := uc.List(f.otherMentor, 0, repository.PermissionFilter{})
	require.NoError(t, err)
	assert.Empty(t, others)
}
