package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el
// caso de uso). Role es opcional: vacío toma el rol por defecto configurado.
type RegisterRequest struct {
	Username string
	Password string
	Email    string
	DNI      string
	Role     string
}

// RegisterResult salida del registro con el rol efectivamente asignado (puede
// diferir del pedido: el primer usuario siempre queda como admin).
type RegisterResult struct {
	User         UserView
	AssignedRole string
}

// UserView vista de solo lectura de un usuario autenticado o listado.
// Nunca transporta el hash de contraseña.
type UserView struct {
	ID        string
	Username  string
	Email     string
	DNI       string
	Role      string
	CreatedAt time.Time
}

// RecoveryResult salida de la recuperación de contraseña por DNI.
// TempPassword viaja en claro una única vez hacia el correo del usuario;
// MailSent indica si el despacho fue posible.
type RecoveryResult struct {
	Email        string
	TempPassword string
	MailSent     bool
}
