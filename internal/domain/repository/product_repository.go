package repository

import "github.com/FedericoMusa/ordico2/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Upsert inserta o reemplaza cantidad/categoría/precio por nombre
	// (usado por la importación masiva).
	Upsert(product *entity.Product) error
	List() ([]*entity.Product, error)
	Search(term string) ([]*entity.Product, error)
	Delete(id string) error
}
