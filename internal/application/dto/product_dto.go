package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para alta de producto.
type CreateProductRequest struct {
	Name     string
	Category string
	Quantity int
	Price    decimal.Decimal
}

// UpdateProductRequest entrada para edición parcial; nil deja el campo igual.
type UpdateProductRequest struct {
	Name     *string
	Category *string
	Quantity *int
	Price    *decimal.Decimal
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductRow fila cruda leída de una planilla, con su número de fila para
// reportar rechazos.
type ProductRow struct {
	Row      int
	Name     string
	Category string
	Quantity int
	Price    decimal.Decimal
}

// ImportReport resume una importación masiva de productos.
type ImportReport struct {
	Imported int
	Skipped  []ImportError
}

// ImportError fila rechazada durante la importación, con el motivo.
type ImportError struct {
	Row    int
	Reason string
}
