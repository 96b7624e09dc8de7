package usecase

import "errors"

// Sentinel errors carry the client-facing prefix of the message. Wrap them with
// fmt.Errorf("%w: detalle", ErrX) so the detail stays readable.
var (
	ErrInvalidInput          = errors.New("datos no válidos")
	ErrNotFound              = errors.New("no encontrado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrConflict              = errors.New("operación no permitida")
	ErrDependencyUnavailable = errors.New("servicio no disponible")
)
