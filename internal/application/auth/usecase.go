package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/domain/repository"
	"github.com/FedericoMusa/ordico2/pkg/logger"
	"github.com/FedericoMusa/ordico2/pkg/security"
)

// Config política de registro.
type Config struct {
	// DefaultRole rol asignado cuando el registro no pide uno. Debe pertenecer
	// al conjunto cerrado de roles; vacío equivale a cajero.
	DefaultRole string
}

// UseCase casos de uso de autenticación: login, registro y recuperación.
type UseCase struct {
	users  repository.UserRepository
	hasher *security.Hasher
	mailer Mailer
	log    *logger.Logger
	cfg    Config
}

// NewUseCase construye el caso de uso de auth. mailer puede ser nil: la
// recuperación sigue funcionando pero no despacha correo.
func NewUseCase(users repository.UserRepository, hasher *security.Hasher, mailer Mailer, log *logger.Logger, cfg Config) *UseCase {
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = entity.RoleCajero
	}
	return &UseCase{users: users, hasher: hasher, mailer: mailer, log: log, cfg: cfg}
}

// Authenticate resuelve el identificador (email o username) y verifica la
// contraseña. Resolución: primero email normalizado, después username exacto;
// la primera coincidencia gana. Operación de solo lectura sobre el almacén.
//
// Devuelve domain.ErrUserNotFound o domain.ErrInvalidCredentials; ambos deben
// presentarse al usuario con el mismo mensaje genérico.
func (uc *UseCase) Authenticate(identifier, password string) (*dto.UserView, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	user, err := uc.users.FindByEmail(normalizeEmail(identifier))
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.users.FindByUsername(identifier)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		uc.log.Warn().Str("identificador", identifier).Msg("login fallido: usuario no encontrado")
		return nil, domain.ErrUserNotFound
	}

	if !uc.hasher.Verify(user.PasswordHash, password) {
		uc.log.Warn().Str("identificador", identifier).Msg("login fallido: contraseña incorrecta")
		return nil, domain.ErrInvalidCredentials
	}

	uc.log.Info().Str("username", user.Username).Str("rol", user.Role).Msg("inicio de sesión exitoso")
	return toUserView(user), nil
}

// Register crea un usuario: valida campos, decide el rol, hashea la contraseña
// y persiste. El primer usuario de un almacén vacío queda siempre como admin,
// ignorando el rol pedido; los siguientes toman el rol pedido (si es válido) o
// el rol por defecto configurado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.RegisterResult, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	dni := strings.TrimSpace(in.DNI)
	if username == "" || in.Password == "" || email == "" || dni == "" {
		return nil, domain.ErrMissingField
	}

	role, err := uc.resolveRole(strings.TrimSpace(in.Role))
	if err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		DNI:          dni,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		uc.log.Warn().Str("username", username).Err(err).Msg("registro fallido")
		return nil, err
	}

	uc.log.Info().Str("username", username).Str("rol", role).Msg("usuario registrado")
	return &dto.RegisterResult{User: *toUserView(user), AssignedRole: role}, nil
}

// ChangePassword verifica la contraseña vigente antes de reemplazarla.
func (uc *UseCase) ChangePassword(email, current, next string) error {
	email = normalizeEmail(email)
	if email == "" || current == "" || next == "" {
		return domain.ErrMissingField
	}
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !uc.hasher.Verify(user.PasswordHash, current) {
		uc.log.Warn().Str("email", email).Msg("cambio de contraseña rechazado")
		return domain.ErrInvalidCredentials
	}
	hash, err := uc.hasher.Hash(next)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(email, hash); err != nil {
		return err
	}
	uc.log.Info().Str("email", email).Msg("contraseña actualizada")
	return nil
}

// resolveRole aplica la política de asignación de rol. El conteo se consulta
// antes del alta; la unicidad del primer admin queda cubierta porque la
// aplicación es monoproceso y monosesión.
func (uc *UseCase) resolveRole(requested string) (string, error) {
	count, err := uc.users.Count()
	if err != nil {
		return "", err
	}
	if count == 0 {
		return entity.RoleAdmin, nil
	}
	if requested == "" {
		return uc.cfg.DefaultRole, nil
	}
	if !entity.ValidRole(requested) {
		return "", domain.ErrInvalidRole
	}
	return requested, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserView(u *entity.User) *dto.UserView {
	return &dto.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		DNI:       u.DNI,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
