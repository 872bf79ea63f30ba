package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
)

const exportSheet = "Stock"

// WriteProducts exporta el stock a un .xlsx con el mismo encabezado que
// acepta la importación, para poder reimportar el archivo tal cual.
func WriteProducts(path string, products []dto.ProductResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("borrar hoja por defecto: %w", err)
	}

	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &cells); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for i, p := range products {
		row := []any{p.Name, p.Category, p.Quantity, p.Price.String()}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("guardar planilla: %w", err)
	}
	return nil
}
