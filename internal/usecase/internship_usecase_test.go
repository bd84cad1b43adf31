package usecase

import (
	"testing"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, f *fixture, role string) *model.User {
	t.Helper()

	u := &model.User{
		Name:     "User " + role,
		Email:    role + "-baru@kantor.id",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func TestCreateInternship(t *testing.T) {
	f := newFixture(t)
	uc := f.internshipUsecase()
	internUser := createUser(t, f, domain.RoleIntern)

	t.Run("admin membuat internship", func(t *testing.T) {
		created, err := uc.Create(f.admin, CreateInternshipInput{
			InternID:  internUser.ID,
			StartDate: "2026-07-01",
			EndDate:   "2026-12-31",
		})
		require.NoError(t, err)
		assert.Equal(t, model.InternshipActive, created.Status)
		assert.Nil(t, created.MentorID)
	})

	t.Run("selain admin ditolak", func(t *testing.T) {
		_, err := uc.Create(f.mentor, CreateInternshipInput{
			InternID:  internUser.ID,
			StartDate: "2026-07-01",
			EndDate:   "2026-12-31",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
	})

	t.Run("end_date sebelum start_date", func(t *testing.T) {
		_, err := uc.Create(f.admin, CreateInternshipInput{
			InternID:  internUser.ID,
			StartDate: "2026-07-01",
			EndDate:   "2026-06-30",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})

	t.Run("intern_id harus user intern", func(t *testing.T) {
		mentorUser := createUser(t, f, domain.RoleMentor)
		_, err := uc.Create(f.admin, CreateInternshipInput{
			InternID:  mentorUser.ID,
			StartDate: "2026-07-01",
			EndDate:   "2026-12-31",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})
}

func TestAssignMentor(t *testing.T) {
	f := newFixture(t)
	uc := f.internshipUsecase()

	updated, err := uc.AssignMentor(f.admin, f.internship.ID, f.otherMentor.UserID)
	require.NoError(t, err)
	require.NotNil(t, updated.MentorID)
	assert.Equal(t, f.otherMentor.UserID, *updated.MentorID)

	_, err = uc.AssignMentor(f.mentor, f.internship.ID, f.otherMentor.UserID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	// mentor_id harus user dengan role mentor.
	_, err = uc.AssignMentor(f.admin, f.internship.ID, f.intern.UserID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
}

func TestSetInternshipStatus(t *testing.T) {
	f := newFixture(t)
	uc := f.internshipUsecase()

	updated, err := uc.SetStatus(f.admin, f.internship.ID, model.InternshipTerminated)
	require.NoError(t, err)
	assert.Equal(t, model.InternshipTerminated, updated.Status)

	_, err = uc.SetStatus(f.admin, f.internship.ID, "paused")
	require.Error(t, err)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	_, err = uc.SetStatus(f.intern, f.internship.ID, model.InternshipCompleted)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}

func TestCompleteExpiredSweep(t *testing.T) {
	f := newFixture(t)
	uc := f.internshipUsecase()

	internUser := createUser(t, f, domain.RoleIntern)
	expired := &model.Internship{
		InternID:  internUser.ID,
		StartDate: "2000-01-01",
		EndDate:   "2000-06-30",
		Status:    model.InternshipActive,
	}
	require.NoError(t, f.db.Create(expired).Error)

	terminated := &model.Internship{
		InternID:  internUser.ID,
		StartDate: "2000-01-01",
		EndDate:   "2000-06-30",
		Status:    model.InternshipTerminated,
	}
	require.NoError(t, f.db.Create(terminated).Error)

	future := &model.Internship{
		InternID:  internUser.ID,
		StartDate: "2100-01-01",
		EndDate:   "2100-06-30",
		Status:    model.InternshipActive,
	}
	require.NoError(t, f.db.Create(future).Error)

	_, err := uc.CompleteExpired(f.intern)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	count, err := uc.CompleteExpired(f.admin)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(1))

	swept, err := uc.Get(f.admin, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InternshipCompleted, swept.Status)

	// Yang terminated dan yang belum lewat end_date tidak tersentuh.
	skipped, err := uc.Get(f.admin, terminated.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InternshipTerminated, skipped.Status)

	active, err := uc.Get(f.admin, future.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InternshipActive, active.Status)
}

func TestGetInternshipScoped(t *testing.T) {
	f := newFixture(t)
	uc := f.internshipUsecase()

	// Intern hanya bisa melihat internship miliknya.
	own, err := uc.Get(f.intern, f.internship.ID)
	require.NoError(t, err)
	assert.Equal(t, f.internship.ID, own.ID)

	_, err = uc.Get(f.otherMentor, f.internship.ID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	list, err := uc.List(f.mentor)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.internship.ID, list[0].ID)

	_, err = uc.List(f.intern)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}
