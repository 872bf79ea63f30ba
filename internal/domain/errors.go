package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrUserNotFound y ErrInvalidCredentials se presentan al usuario final con el
// mismo mensaje genérico para no revelar si el identificador existe.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("contraseña incorrecta")
	ErrMissingField       = errors.New("todos los campos son obligatorios")
	ErrDuplicateField     = errors.New("el nombre de usuario, el email o el DNI ya existen")
	ErrInvalidRole        = errors.New("rol no válido")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrStoreUnavailable   = errors.New("base de datos no disponible")
)

// CredentialMessage es el mensaje único que ve el usuario ante un fallo de
// login, sea por identificador inexistente o por contraseña errónea.
const CredentialMessage = "nombre de usuario o contraseña incorrectos"
