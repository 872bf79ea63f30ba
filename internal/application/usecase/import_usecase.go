package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/domain/entity"
	"github.com/FedericoMusa/ordico2/internal/domain/repository"
	"github.com/FedericoMusa/ordico2/pkg/logger"
)

// ImportUseCase carga masiva de productos desde planillas. Las filas válidas
// se insertan o pisan por nombre (upsert); las inválidas se reportan con su
// número de fila sin abortar el resto.
type ImportUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.ProductRepository, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{repo: repo, log: log}
}

// Import procesa las filas ya parseadas de una planilla. parseErrors son las
// filas que el lector ya descartó por formato; se suman al reporte.
func (uc *ImportUseCase) Import(rows []dto.ProductRow, parseErrors []dto.ImportError) (*dto.ImportReport, error) {
	report := &dto.ImportReport{Skipped: parseErrors}
	for _, row := range rows {
		if reason, ok := validateRow(row); !ok {
			report.Skipped = append(report.Skipped, dto.ImportError{Row: row.Row, Reason: reason})
			continue
		}
		now := time.Now()
		product := &entity.Product{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(row.Name),
			Category:  normalizeCategory(row.Category),
			Quantity:  row.Quantity,
			Price:     row.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Upsert(product); err != nil {
			return nil, err
		}
		report.Imported++
	}
	uc.log.Info().Int("importados", report.Imported).Int("rechazados", len(report.Skipped)).Msg("importación de stock finalizada")
	return report, nil
}

func validateRow(row dto.ProductRow) (string, bool) {
	if strings.TrimSpace(row.Name) == "" {
		return "nombre vacío", false
	}
	if row.Quantity < 0 {
		return "cantidad negativa", false
	}
	if !row.Price.IsPositive() {
		return "precio no positivo", false
	}
	return "", true
}
