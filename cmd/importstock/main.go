// Comando de carga masiva: importa una planilla de productos (.xlsx o .csv)
// a la base local sin pasar por la aplicación interactiva.
//
//	importstock -db ordico.db -file stock.xlsx
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/FedericoMusa/ordico2/internal/application/dto"
	"github.com/FedericoMusa/ordico2/internal/application/usecase"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/excel"
	"github.com/FedericoMusa/ordico2/internal/infrastructure/sqlite"
	"github.com/FedericoMusa/ordico2/pkg/config"
	"github.com/FedericoMusa/ordico2/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	dbPath := flag.String("db", cfg.DB.Path, "ruta de la base SQLite")
	file := flag.String("file", "", "planilla a importar (.xlsx o .csv)")
	flag.Parse()
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos")
	}
	defer db.Close()
	if err := sqlite.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	var (
		rows    []dto.ProductRow
		skipped []dto.ImportError
	)
	if strings.EqualFold(filepath.Ext(*file), ".csv") {
		rows, skipped, err = excel.ReadProductsCSV(*file)
	} else {
		rows, skipped, err = excel.ReadProducts(*file)
	}
	if err != nil {
		log.Fatal().Err(err).Str("archivo", *file).Msg("leer planilla")
	}

	importer := usecase.NewImportUseCase(sqlite.NewProductRepository(db), log)
	report, err := importer.Import(rows, skipped)
	if err != nil {
		log.Fatal().Err(err).Msg("importar productos")
	}

	fmt.Printf("Importados: %d, rechazados: %d\n", report.Imported, len(report.Skipped))
	for _, s := range report.Skipped {
		fmt.Printf("  fila %d: %s\n", s.Row, s.Reason)
	}
}
