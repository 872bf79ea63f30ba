package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/domain/repository"
	"github.com/FedericoMusa/ordico2/pkg/logger"
)

// ProductUseCase casos de uso CRUD para el stock de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// Create da de alta un producto. Nombre obligatorio, precio positivo,
// cantidad no negativa.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrMissingField
	}
	if in.Quantity < 0 || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  normalizeCategory(in.Category),
		Quantity:  in.Quantity,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("producto", name).Int("cantidad", in.Quantity).Msg("producto agregado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edita un producto; los campos nil no se tocan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrMissingField
		}
		product.Name = name
	}
	if in.Category != nil {
		product.Category = normalizeCategory(*in.Category)
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("producto", product.Name).Msg("producto actualizado")
	return toProductResponse(product), nil
}

// List devuelve todo el stock.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Search busca por fragmento de nombre, sin distinguir mayúsculas.
func (uc *ProductUseCase) Search(term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("producto", product.Name).Msg("producto eliminado")
	return nil
}

// normalizeCategory ajusta la categoría contra la lista conocida; lo que no
// coincide cae en "Otros".
func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	for _, c := range entity.Categories {
		if strings.EqualFold(c, category) {
			return c
		}
	}
	return "Otros"
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Quantity:  p.Quantity,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
