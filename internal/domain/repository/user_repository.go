package repository

import (
	"time"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)

	// UpdateRole cambia el rol del usuario.
	UpdateRole(id, role string) error

	// SetResetCode guarda código y vencimiento del flujo de recuperación.
	// Una nueva solicitud sobreescribe el código pendiente (gana el último).
	SetResetCode(id, code string, expires time.Time) error

	// ConsumePasswordReset valida el código (existente y no vencido), fija el nuevo
	// hash y anula código+vencimiento, todo en una sola sentencia. Devuelve false
	// si ninguna fila coincidió (código inválido o vencido).
	ConsumePasswordReset(code, passwordHash string) (bool, error)
}
