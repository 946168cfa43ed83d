package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
	"github.com/BlockbyJamez/my-inventory-app/pkg/logger"
)

// Recorder escribe registros de auditoría best-effort: un fallo al persistir se
// reporta por el logger operacional y NUNCA se propaga al caller. La auditoría
// queda fuera de la frontera transaccional de la operación que la dispara.
type Recorder struct {
	repo repository.LogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.LogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record agrega un registro de auditoría. details se serializa a JSON; si no es
// serializable se registra la acción sin detalles.
func (r *Recorder) Record(username, action string, details any) {
	var raw json.RawMessage
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			r.log.Warn().Err(err).Str("action", action).Msg("detalles de auditoría no serializables")
		} else {
			raw = b
		}
	}
	entry := &entity.LogEntry{
		ID:        uuid.New().String(),
		Username:  username,
		Action:    action,
		Details:   raw,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(entry); err != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("username", username).
			Msg("no se pudo escribir el registro de auditoría")
	}
}
