package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// ValidRole indica si el string es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleViewer
}

// User representa un usuario del sistema.
// ResetCode y ResetCodeExpires son campos transitorios del flujo de recuperación
// de contraseña: se escriben al solicitar el código y se anulan al consumirlo.
type User struct {
	ID               string
	Username         string     // único
	PasswordHash     string     // bcrypt hash, nunca plano en dominio después de persistir
	Email            string
	Role             string     // admin, viewer
	ResetCode        *string    // código numérico de 6 dígitos, nil si no hay reset pendiente
	ResetCodeExpires *time.Time // vencimiento del código, nil si no hay reset pendiente
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
