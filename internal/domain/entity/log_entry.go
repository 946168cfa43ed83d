package entity

import (
	"encoding/json"
	"time"
)

// Acciones auditadas (una por mutación privilegiada).
const (
	ActionAddProduct        = "add_product"
	ActionUpdateProduct     = "update_product"
	ActionDeleteProduct     = "delete_product"
	ActionAddTransaction    = "add_transaction"
	ActionRegister          = "register"
	ActionLogin             = "login"
	ActionUpdatePermissions = "update_permissions"
)

// LogEntry representa un registro de auditoría (tabla logs, append-only).
type LogEntry struct {
	ID        string
	Username  string
	Action    string
	Details   json.RawMessage // blob JSON con el contexto de la acción
	CreatedAt time.Time
}
