package usecase

import (
	"github.com/BlockbyJamez/my-inventory-app/internal/application/audit"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

// UserUseCase administración de usuarios: listado y cambio de rol.
type UserUseCase struct {
	userRepo repository.UserRepository
	recorder *audit.Recorder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, recorder *audit.Recorder) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, recorder: recorder}
}

// SetRole cambia el rol de un usuario.
//
// Guard de auto-bloqueo: un admin no puede quitarse su propio rol admin por este
// endpoint (evita que el último admin se deje sin acceso por accidente).
// Errores: domain.ErrInvalidInput (rol desconocido), domain.ErrNotFound (usuario
// inexistente), domain.ErrSelfDemotion.
func (uc *UserUseCase) SetRole(targetID, newRole, actingUsername string) error {
	if !entity.ValidRole(newRole) {
		return domain.ErrInvalidInput
	}
	target, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	if target.Username == actingUsername && newRole != entity.RoleAdmin {
		return domain.ErrSelfDemotion
	}
	if err := uc.userRepo.UpdateRole(targetID, newRole); err != nil {
		return err
	}
	uc.recorder.Record(actingUsername, entity.ActionUpdatePermissions, map[string]any{
		"target_user": target.Username,
		"old_role":    target.Role,
		"new_role":    newRole,
	})
	return nil
}

// List devuelve usuarios paginados (sin hashes).
func (uc *UserUseCase) List(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return out, nil
}
