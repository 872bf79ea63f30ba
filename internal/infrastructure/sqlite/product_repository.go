package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/FedericoMusa/ordico2/internal/domain"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
// El precio se guarda como texto decimal exacto, nunca como float.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, nombre, categoria, cantidad, precio, created_at, updated_at`

// Create persiste un nuevo producto. Nombre duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, categoria, cantidad, precio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		product.ID, product.Name, product.Category, product.Quantity,
		product.Price.String(), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.findOne(`SELECT `+productColumns+` FROM productos WHERE id = ?`, id)
}

// GetByName obtiene un producto por nombre exacto.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.findOne(`SELECT `+productColumns+` FROM productos WHERE nombre = ?`, name)
}

func (r *ProductRepo) findOne(query string, arg any) (*entity.Product, error) {
	row := r.db.QueryRow(query, arg)
	product, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar producto: %w", err)
	}
	return product, nil
}

// Update reescribe los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos SET nombre = ?, categoria = ?, cantidad = ?, precio = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.Exec(query,
		product.Name, product.Category, product.Quantity, product.Price.String(),
		product.UpdatedAt, product.ID,
	)
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserta el producto o, si el nombre ya existe, pisa categoría,
// cantidad y precio (importación masiva).
func (r *ProductRepo) Upsert(product *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, categoria, cantidad, precio, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(nombre) DO UPDATE SET
			categoria = excluded.categoria,
			cantidad = excluded.cantidad,
			precio = excluded.precio,
			updated_at = excluded.updated_at`
	_, err := r.db.Exec(query,
		product.ID, product.Name, product.Category, product.Quantity,
		product.Price.String(), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert producto: %w", err)
	}
	return nil
}

// List devuelve todo el stock ordenado por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	return r.queryMany(`SELECT ` + productColumns + ` FROM productos ORDER BY nombre`)
}

// Search busca por fragmento de nombre sin distinguir mayúsculas.
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	return r.queryMany(
		`SELECT `+productColumns+` FROM productos WHERE nombre LIKE ? COLLATE NOCASE ORDER BY nombre`,
		"%"+term+"%",
	)
}

func (r *ProductRepo) queryMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("escanear producto: %w", err)
		}
		list = append(list, product)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM productos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(scan func(...any) error) (*entity.Product, error) {
	var p entity.Product
	var price string
	if err := scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("precio almacenado inválido %q: %w", price, err)
	}
	p.Price = parsed
	return &p, nil
}
