package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías sugeridas para productos; el campo admite texto libre pero la
// importación masiva normaliza contra esta lista.
var Categories = []string{
	"Comestibles",
	"Productos de limpieza",
	"Bebidas",
	"Frutas y verduras",
	"Golosinas",
	"Otros",
}

// Product representa un producto del stock. Name es único en la tabla.
type Product struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	Price     decimal.Decimal // precio de venta
	CreatedAt time.Time
	UpdatedAt time.Time
}
