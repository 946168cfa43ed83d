package usecase

import (
	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

// logListLimit cantidad fija de registros devueltos por el endpoint de auditoría.
const logListLimit = 100

// LogUseCase consulta de la auditoría (solo lectura; escribir es cosa de audit.Recorder).
type LogUseCase struct {
	logRepo repository.LogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(logRepo repository.LogRepository) *LogUseCase {
	return &LogUseCase{logRepo: logRepo}
}

// ListRecent devuelve los 100 registros más recientes, descendente por fecha.
func (uc *LogUseCase) ListRecent() ([]dto.LogEntryResponse, error) {
	entries, err := uc.logRepo.ListRecent(logListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LogEntryResponse{
			ID:        e.ID,
			Username:  e.Username,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}
