package excel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/excel"
)

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "stock.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadProducts_PlanillaValida(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Nombre", "Categoría", "Cantidad", "Precio"},
		{"Yerba 1kg", "Comestibles", 10, "2500.50"},
		{"Lavandina", "Productos de limpieza", 6, 1200},
	})

	rows, skipped, err := excel.ReadProducts(path)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 2)

	assert.Equal(t, dto.ProductRow{
		Row: 2, Name: "Yerba 1kg", Category: "Comestibles", Quantity: 10,
		Price: rows[0].Price,
	}, rows[0])
	assert.True(t, rows[0].Price.Equal(decimalFrom(t, "2500.50")))
	assert.Equal(t, 3, rows[1].Row, "la numeración es la de Excel, base 1")
}

func TestReadProducts_FilasInvalidasSeSaltean(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Nombre", "Categoría", "Cantidad", "Precio"},
		{"Yerba", "Comestibles", "diez", "2500"},
		{"", "", "", ""}, // fila vacía: se ignora sin reportar
		{"Café", "Comestibles", 5, "abc"},
		{"Azúcar", "Comestibles", 3, "900"},
	})

	rows, skipped, err := excel.ReadProducts(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Azúcar", rows[0].Name)

	require.Len(t, skipped, 2)
	assert.Equal(t, 2, skipped[0].Row)
	assert.Contains(t, skipped[0].Reason, "cantidad inválida")
	assert.Equal(t, 4, skipped[1].Row)
	assert.Contains(t, skipped[1].Reason, "precio inválido")
}

func TestReadProducts_EncabezadoInvalido(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Producto", "Rubro", "Stock", "Valor"},
		{"Yerba", "Comestibles", 10, "2500"},
	})

	_, _, err := excel.ReadProducts(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encabezado inválido")
}

// CSV de Excel en castellano: separador ';', coma decimal, Windows-1252.
func TestReadProductsCSV_Windows1252(t *testing.T) {
	plain := "Nombre;Categoría;Cantidad;Precio\n" +
		"Azúcar;Comestibles;3;900,25\n" +
		"Café;Comestibles;5;1100\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(plain)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

	rows, skipped, err := excel.ReadProductsCSV(path)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "Azúcar", rows[0].Name, "los acentos deben sobrevivir la decodificación")
	assert.True(t, rows[0].Price.Equal(decimalFrom(t, "900.25")), "coma decimal aceptada")
}

func TestWriteProducts_SePuedeReimportar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	products := []dto.ProductResponse{
		{Name: "Yerba", Category: "Comestibles", Quantity: 10, Price: decimalFrom(t, "2500.50")},
		{Name: "Lavandina", Category: "Productos de limpieza", Quantity: 6, Price: decimalFrom(t, "1200")},
	}
	require.NoError(t, excel.WriteProducts(path, products))

	rows, skipped, err := excel.ReadProducts(path)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "Yerba", rows[0].Name)
	assert.True(t, rows[0].Price.Equal(products[0].Price))
}
