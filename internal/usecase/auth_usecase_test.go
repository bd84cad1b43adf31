package usecase

import (
	"testing"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "rahasia-test"

func (f *fixture) authUsecase() *AuthUsecase {
	return NewAuthUsecase(
		repository.NewUserRepository(f.db),
		repository.NewInternshipRepository(f.db),
		repository.NewAuditRepository(f.db),
		testSecret,
		zap.NewNop(),
	)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	uc := f.authUsecase()

	created, err := uc.CreateUser(f.admin, CreateUserInput{
		Name:     "Mentor Baru",
		Email:    "mentor.baru@kantor.id",
		Password: "password123",
		Role:     domain.RoleMentor,
	})
	require.NoError(t, err)

	token, user, err := uc.Login("mentor.baru@kantor.id", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(created.ID), claims["user_id"])
	assert.Equal(t, domain.RoleMentor, claims["role"])

	_, _, err = uc.Login("mentor.baru@kantor.id", "salah-password")
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	_, _, err = uc.Login("tidak-ada@kantor.id", "password123")
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}

func TestLoginCarriesInternshipID(t *testing.T) {
	f := newFixture(t)
	uc := f.authUsecase()

	_, err := uc.CreateUser(f.admin, CreateUserInput{
		Name:     "Intern Login",
		Email:    "intern.login@kampus.ac.id",
		Password: "password123",
		Role:     domain.RoleIntern,
	})
	require.NoError(t, err)

	// Intern tanpa internship aktif tetap bisa login, internship_id 0.
	token, _, err := uc.Login("intern.login@kampus.ac.id", "password123")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(0), claims["internship_id"])
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	uc := f.authUsecase()

	t.Run("selain admin ditolak", func(t *testing.T) {
		_, err := uc.CreateUser(f.mentor, CreateUserInput{
			Name:     "X",
			Email:    "x@kantor.id",
			Password: "password123",
			Role:     domain.RoleIntern,
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
	})

	t.Run("password terlalu pendek", func(t *testing.T) {
		_, err := uc.CreateUser(f.admin, CreateUserInput{
			Name:     "X",
			Email:    "x@kantor.id",
			Password: "pendek",
			Role:     domain.RoleIntern,
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})

	t.Run("role tidak dikenal", func(t *testing.T) {
		_, err := uc.CreateUser(f.admin, CreateUserInput{
			Name:     "X",
			Email:    "x@kantor.id",
			Password: "password123",
			Role:     "supervisor",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})

	t.Run("email duplikat", func(t *testing.T) {
		in := CreateUserInput{
			Name:     "X",
			Email:    "duplikat@kantor.id",
			Password: "password123",
			Role:     domain.RoleIntern,
		}
		_, err := uc.CreateUser(f.admin, in)
		require.NoError(t, err)

		_, err = uc.CreateUser(f.admin, in)
		require.Error(t, err)
		assert.Equal(t, domain.CodeDuplicate, domain.CodeOf(err))
	})
}
