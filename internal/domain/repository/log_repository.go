package repository

import "github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"

// LogRepository puerto de persistencia para la auditoría (tabla logs, append-only).
type LogRepository interface {
	Create(entry *entity.LogEntry) error
	ListRecent(limit int) ([]*entity.LogEntry, error)
}
