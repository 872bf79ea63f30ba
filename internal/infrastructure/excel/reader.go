// Package excel lee y escribe planillas de stock. Soporta .xlsx y .csv
// exportado por Excel en castellano (separador ';', decimales con coma,
// codificación Windows-1252).
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
)

// Encabezado esperado en la primera fila.
var header = []string{"Nombre", "Categoría", "Cantidad", "Precio"}

// ReadProducts parsea la primera hoja de un .xlsx. Devuelve las filas bien
// formadas y, por separado, las rechazadas por errores de formato; solo
// retorna error cuando el archivo entero es ilegible.
func ReadProducts(path string) ([]dto.ProductRow, []dto.ImportError, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir planilla: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("la planilla no tiene hojas")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("leer filas: %w", err)
	}
	return parseRecords(records)
}

// parseRecords convierte la matriz de celdas (encabezado incluido) en filas
// de producto. La numeración de filas reportada es 1-based, como en Excel.
func parseRecords(records [][]string) ([]dto.ProductRow, []dto.ImportError, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("planilla vacía")
	}
	if !validHeader(records[0]) {
		return nil, nil, fmt.Errorf("encabezado inválido: se espera %s", strings.Join(header, " | "))
	}

	var rows []dto.ProductRow
	var skipped []dto.ImportError
	for i, record := range records[1:] {
		line := i + 2 // +1 por el encabezado, +1 por base 1
		if emptyRecord(record) {
			continue
		}
		row, reason := parseRecord(line, record)
		if reason != "" {
			skipped = append(skipped, dto.ImportError{Row: line, Reason: reason})
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseRecord(line int, record []string) (dto.ProductRow, string) {
	if len(record) < len(header) {
		return dto.ProductRow{}, "faltan columnas"
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return dto.ProductRow{}, fmt.Sprintf("cantidad inválida %q", record[2])
	}
	price, err := parsePrice(record[3])
	if err != nil {
		return dto.ProductRow{}, fmt.Sprintf("precio inválido %q", record[3])
	}
	return dto.ProductRow{
		Row:      line,
		Name:     strings.TrimSpace(record[0]),
		Category: strings.TrimSpace(record[1]),
		Quantity: quantity,
		Price:    price,
	}, ""
}

// parsePrice acepta punto o coma como separador decimal.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return decimal.NewFromString(s)
}

func validHeader(record []string) bool {
	if len(record) < len(header) {
		return false
	}
	for i, want := range header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), want) {
			return false
		}
	}
	return true
}

func emptyRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
