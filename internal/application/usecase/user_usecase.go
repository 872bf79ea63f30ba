package usecase

import (
	"strings"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/domain/repository"
	"github.com/FedericoMusa/ordico2/pkg/logger"
)

// UserUseCase administración de usuarios (pantalla de administración):
// listado, cambio de rol y baja. El alta pasa siempre por auth.Register.
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log}
}

// List devuelve todos los usuarios como vistas sin hash.
func (uc *UserUseCase) List() ([]dto.UserView, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	views := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.UserView{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			DNI:       u.DNI,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return views, nil
}

// UpdateRole cambia el rol de un usuario identificado por su ID de almacén.
// El identificador canónico es el ID asignado al crear; nunca el DNI.
func (uc *UserUseCase) UpdateRole(id, role string) error {
	id = strings.TrimSpace(id)
	role = strings.TrimSpace(role)
	if id == "" || role == "" {
		return domain.ErrMissingField
	}
	if !entity.ValidRole(role) {
		return domain.ErrInvalidRole
	}
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.UpdateRole(id, role); err != nil {
		return err
	}
	uc.log.Info().Str("username", user.Username).Str("rol", role).Msg("rol actualizado")
	return nil
}

// Delete elimina un usuario por ID. La baja es definitiva.
func (uc *UserUseCase) Delete(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField
	}
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("username", user.Username).Msg("usuario eliminado")
	return nil
}
