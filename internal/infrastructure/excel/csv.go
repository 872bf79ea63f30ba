package excel

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
)

// ReadProductsCSV parsea un .csv exportado por Excel en castellano:
// separador ';' y codificación Windows-1252 (ANSI).
func ReadProductsCSV(path string) ([]dto.ProductRow, []dto.ImportError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1 // validación de columnas fila a fila

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("leer csv: %w", err)
	}
	return parseRecords(records)
}
