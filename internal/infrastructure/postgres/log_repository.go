package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementación del puerto LogRepository sobre PostgreSQL.
type LogRepo struct {
	q Querier
}

// NewLogRepository construye el adaptador de auditoría. Pasar pool o tx (Querier).
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create agrega un registro de auditoría.
func (r *LogRepo) Create(entry *entity.LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO logs (id, username, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Username, entry.Action, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create log entry: %w", err)
	}
	return nil
}

// ListRecent devuelve los registros más recientes (created_at DESC).
func (r *LogRepo) ListRecent(limit int) ([]*entity.LogEntry, error) {
	query := `
		SELECT id, username, action, details, created_at
		FROM logs ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.LogEntry
	for rows.Next() {
		var e entity.LogEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
