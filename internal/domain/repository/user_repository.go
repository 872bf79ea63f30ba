package repository

import "github.com/FedericoMusa/ordico2/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia; la unicidad de
// username/email/dni la garantiza el almacén de forma atómica en Create.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	FindByDNI(dni string) (*entity.User, error)
	List() ([]*entity.User, error)
	Count() (int, error)
	UpdatePassword(email, newHash string) error
	UpdateRole(id, role string) error
	Delete(id string) error
}
