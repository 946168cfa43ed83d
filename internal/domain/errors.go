package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrSelfDemotion         = errors.New("un admin no puede quitarse su propio rol")
	ErrInsufficientStock    = errors.New("stock insuficiente o producto inexistente")
	ErrInvalidOrExpiredCode = errors.New("código inválido o expirado")
	ErrMailDispatch         = errors.New("no se pudo enviar el correo")
)
