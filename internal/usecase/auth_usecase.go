package usecase

import (
	"time"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase menangani login dan pembuatan user. Session management di luar
// engine; token JWT hanya membawa identitas aktor.
type AuthUsecase struct {
	userRepo       repository.UserRepository
	internshipRepo repository.InternshipRepository
	auditRepo      repository.AuditRepository
	jwtSecret      []byte
	log            *zap.Logger
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	internshipRepo repository.InternshipRepository,
	auditRepo repository.AuditRepository,
	jwtSecret string,
	log *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		internshipRepo: internshipRepo,
		auditRepo:      auditRepo,
		jwtSecret:      []byte(jwtSecret),
		log:            log,
	}
}

// Login memverifikasi email+password dan mengembalikan token bearer berisi
// user_id, role, dan internship_id (0 kalau bukan intern aktif).
func (u *AuthUsecase) Login(email, password string) (string, *model.User, error) {
	user, err := u.userRepo.GetByEmail(email)
	if err != nil {
		return "", nil, domain.NewForbiddenError("Email atau password salah")
	}
	if !user.IsActive {
		return "", nil, domain.NewForbiddenError("Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, domain.NewForbiddenError("Email atau password salah")
	}

	var internshipID uint
	if user.Role == domain.RoleIntern {
		if internship, err := u.internshipRepo.GetActiveByIntern(user.ID); err == nil {
			internshipID = internship.ID
		}
	}

	claims := jwt.MapClaims{
		"user_id":       user.ID,
		"role":          user.Role,
		"internship_id": internshipID,
		"exp":           time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		u.log.Error("gagal membuat token", zap.Error(err))
		return "", nil, err
	}

	return signed, user, nil
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	NoHP     string
	Kampus   string
	Jurusan  string
}

// CreateUser membuat akun baru; hanya admin.
func (u *AuthUsecase) CreateUser(actor domain.ActorContext, in CreateUserInput) (*model.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbiddenError("Hanya admin yang bisa membuat user")
	}

	var fields []domain.FieldError
	if in.Name == "" {
		fields = append(fields, domain.FieldError{Path: "name", Msg: "wajib diisi"})
	}
	if in.Email == "" {
		fields = append(fields, domain.FieldError{Path: "email", Msg: "wajib diisi"})
	}
	if len(in.Password) < 8 {
		fields = append(fields, domain.FieldError{Path: "password", Msg: "minimal 8 karakter"})
	}
	if in.Role != domain.RoleIntern && in.Role != domain.RoleMentor && in.Role != domain.RoleAdmin {
		fields = append(fields, domain.FieldError{Path: "role", Msg: "harus intern, mentor, atau admin"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Role:     in.Role,
		NoHP:     in.NoHP,
		Kampus:   in.Kampus,
		Jurusan:  in.Jurusan,
		IsActive: true,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, domain.NewDuplicateError("Email sudah terdaftar")
	}

	appendAudit(u.auditRepo, u.log, actor, "user.create", "user", user.ID, in.Role)
	return user, nil
}
