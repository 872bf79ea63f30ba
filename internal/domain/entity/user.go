package entity

import "time"

// Roles válidos para User. El conjunto es cerrado: cualquier otro valor es rechazado.
const (
	RoleAdmin    = "admin"
	RoleCajero   = "cajero"
	RoleVendedor = "vendedor"
	RoleUsuario  = "usuario"
)

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCajero, RoleVendedor, RoleUsuario:
		return true
	}
	return false
}

// User representa un usuario del sistema. Username, Email y DNI son únicos
// globalmente; Email se guarda normalizado (minúsculas, sin espacios alrededor).
type User struct {
	ID           string
	Username     string // sensible a mayúsculas, tal como se registró
	Email        string
	PasswordHash string // hash salteado, nunca la contraseña en claro
	DNI          string
	Role         string // admin, cajero, vendedor, usuario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
