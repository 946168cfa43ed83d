package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/audit"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/usecase"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/pkg/logger"
)

// fakeUserRepo mínimo para los tests de roles.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error)      { return nil, nil }

func (f *fakeUserRepo) UpdateRole(id, role string) error {
	if u, ok := f.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (f *fakeUserRepo) SetResetCode(id, code string, expires time.Time) error { return nil }
func (f *fakeUserRepo) ConsumePasswordReset(code, hash string) (bool, error)  { return false, nil }

// fakeLogRepo auditoría en memoria.
type fakeLogRepo struct {
	entries []*entity.LogEntry
}

func (f *fakeLogRepo) Create(e *entity.LogEntry) error { f.entries = append(f.entries, e); return nil }
func (f *fakeLogRepo) ListRecent(limit int) ([]*entity.LogEntry, error) {
	return f.entries, nil
}

func buildUserUseCase(users ...*entity.User) (*usecase.UserUseCase, *fakeUserRepo, *fakeLogRepo) {
	m := make(map[string]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	repo := &fakeUserRepo{users: m}
	logRepo := &fakeLogRepo{}
	uc := usecase.NewUserUseCase(repo, audit.NewRecorder(logRepo, logger.Nop()))
	return uc, repo, logRepo
}

// Un admin no puede quitarse su propio rol admin (guard de auto-bloqueo).
func TestSetRole_AutoDegradacionProhibida(t *testing.T) {
	uc, repo, logRepo := buildUserUseCase(
		&entity.User{ID: "u1", Username: "ana", Role: entity.RoleAdmin},
	)

	err := uc.SetRole("u1", entity.RoleViewer, "ana")
	assert.ErrorIs(t, err, domain.ErrSelfDemotion)

	u, _ := repo.GetByID("u1")
	assert.Equal(t, entity.RoleAdmin, u.Role, "el rol no debe cambiar")
	assert.Empty(t, logRepo.entries, "un cambio rechazado no se audita")
}

// Re-asignarse admin a sí mismo es un no-op permitido.
func TestSetRole_AdminSobreSiMismoSigueAdmin(t *testing.T) {
	uc, repo, _ := buildUserUseCase(
		&entity.User{ID: "u1", Username: "ana", Role: entity.RoleAdmin},
	)

	require.NoError(t, uc.SetRole("u1", entity.RoleAdmin, "ana"))
	u, _ := repo.GetByID("u1")
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

// Promover a otro usuario funciona y deja un registro de auditoría.
func TestSetRole_PromoverAOtroUsuario(t *testing.T) {
	uc, repo, logRepo := buildUserUseCase(
		&entity.User{ID: "u1", Username: "ana", Role: entity.RoleAdmin},
		&entity.User{ID: "u2", Username: "beto", Role: entity.RoleViewer},
	)

	require.NoError(t, uc.SetRole("u2", entity.RoleAdmin, "ana"))

	u, _ := repo.GetByID("u2")
	assert.Equal(t, entity.RoleAdmin, u.Role)

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, entity.ActionUpdatePermissions, logRepo.entries[0].Action)
	assert.Equal(t, "ana", logRepo.entries[0].Username)
}

// Un admin sí puede degradar a OTRO admin.
func TestSetRole_DegradarAOtroAdmin(t *testing.T) {
	uc, repo, _ := buildUserUseCase(
		&entity.User{ID: "u1", Username: "ana", Role: entity.RoleAdmin},
		&entity.User{ID: "u2", Username: "beto", Role: entity.RoleAdmin},
	)

	require.NoError(t, uc.SetRole("u2", entity.RoleViewer, "ana"))
	u, _ := repo.GetByID("u2")
	assert.Equal(t, entity.RoleViewer, u.Role)
}

func TestSetRole_RolInvalido(t *testing.T) {
	uc, _, _ := buildUserUseCase(
		&entity.User{ID: "u1", Username: "ana", Role: entity.RoleAdmin},
	)

	assert.ErrorIs(t, uc.SetRole("u1", "superuser", "ana"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.SetRole("u1", "", "ana"), domain.ErrInvalidInput)
}

func TestSetRole_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildUserUseCase()

	assert.ErrorIs(t, uc.SetRole("nope", entity.RoleAdmin, "ana"), domain.ErrNotFound)
}
