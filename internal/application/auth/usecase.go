package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/audit"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
	"github.com/BlockbyJamez/my-inventory-app/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	recorder *audit.Recorder
	jwtCfg   JWTConfig
	codeTTL  time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	mailer Mailer,
	recorder *audit.Recorder,
	jwtCfg JWTConfig,
	codeTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		mailer:   mailer,
		recorder: recorder,
		jwtCfg:   jwtCfg,
		codeTTL:  codeTTL,
	}
}

// Register crea un usuario con rol viewer: hashea password con bcrypt y persiste.
// Devuelve domain.ErrDuplicate si el username ya existe (el insert detecta la
// violación del unique, no hay check previo que pueda quedar obsoleto).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Role:         entity.RoleViewer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.recorder.Record(user.Username, entity.ActionRegister, map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// bcrypt.CompareHashAndPassword hace la comparación en tiempo constante.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.recorder.Record(user.Username, entity.ActionLogin, map[string]any{
		"user_id": user.ID,
	})
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
