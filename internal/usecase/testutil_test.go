package usecase

import (
	"testing"

	"simagang-backend/config"
	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// fakeStore menggantikan evidence store di test; hanya mencatat jumlah file.
type fakeStore struct {
	saved int
}

func (s *fakeStore) Save(data []byte, mimeType string) (string, error) {
	s.saved++
	return "evidence-file", nil
}

// fixture menyiapkan satu internship aktif lengkap dengan intern, mentor,
// dan mentor lain yang tidak terikat.
type fixture struct {
	db          *gorm.DB
	internship  *model.Internship
	intern      domain.ActorContext
	mentor      domain.ActorContext
	otherMentor domain.ActorContext
	admin       domain.ActorContext
	store       *fakeStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)

	internUser := &model.User{Name: "Siti Rahma", Email: "siti@kampus.ac.id", Role: domain.RoleIntern, IsActive: true}
	mentorUser := &model.User{Name: "Budi Santoso", Email: "budi@kantor.id", Role: domain.RoleMentor, IsActive: true}
	otherMentorUser := &model.User{Name: "Andi Wijaya", Email: "andi@kantor.id", Role: domain.RoleMentor, IsActive: true}
	adminUser := &model.User{Name: "Admin", Email: "admin@kantor.id", Role: domain.RoleAdmin, IsActive: true}
	for _, u := range []*model.User{internUser, mentorUser, otherMentorUser, adminUser} {
		require.NoError(t, db.Create(u).Error)
	}

	internship := &model.Internship{
		InternID:  internUser.ID,
		MentorID:  &mentorUser.ID,
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
		Status:    model.InternshipActive,
	}
	require.NoError(t, db.Create(internship).Error)

	return &fixture{
		db:          db,
		internship:  internship,
		intern:      domain.ActorContext{UserID: internUser.ID, Role: domain.RoleIntern, InternshipID: internship.ID},
		mentor:      domain.ActorContext{UserID: mentorUser.ID, Role: domain.RoleMentor},
		otherMentor: domain.ActorContext{UserID: otherMentorUser.ID, Role: domain.RoleMentor},
		admin:       domain.ActorContext{UserID: adminUser.ID, Role: domain.RoleAdmin},
		store:       &fakeStore{},
	}
}

func (f *fixture) permissionUsecase() *PermissionUsecase {
	return NewPermissionUsecase(
		repository.NewPermissionRepository(f.db),
		repository.NewInternshipRepository(f.db),
		repository.NewAuditRepository(f.db),
		f.store,
		5,
		zap.NewNop(),
	)
}

func (f *fixture) logbookUsecase() *LogbookUsecase {
	return NewLogbookUsecase(
		repository.NewLogbookRepository(f.db),
		repository.NewInternshipRepository(f.db),
		repository.NewAuditRepository(f.db),
		zap.NewNop(),
	)
}

func (f *fixture) presenceUsecase(cutoff string) *PresenceUsecase {
	return NewPresenceUsecase(
		repository.NewPresenceRepository(f.db),
		repository.NewPermissionRepository(f.db),
		repository.NewInternshipRepository(f.db),
		repository.NewAuditRepository(f.db),
		f.store,
		cutoff,
		zap.NewNop(),
	)
}

func (f *fixture) taskUsecase() *TaskUsecase {
	return NewTaskUsecase(
		repository.NewTaskRepository(f.db),
		repository.NewInternshipRepository(f.db),
		repository.NewAuditRepository(f.db),
		zap.NewNop(),
	)
}

func (f *fixture) internshipUsecase() *InternshipUsecase {
	return NewInternshipUsecase(
		repository.NewInternshipRepository(f.db),
		repository.NewUserRepository(f.db),
		repository.NewAuditRepository(f.db),
		zap.NewNop(),
	)
}
