// seed_catalogs genera el script SQL que puebla los catálogos (empresas, EPS, ARL, CCF,
// fondos de pensión) a partir de un CSV "CATEGORIA;NOMBRE".
//
// Uso: go run ./cmd/seed_catalogs [ruta/catalogos.csv]
// Por defecto busca catalogos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalogs.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/afiliaciones-api/internal/infrastructure/postgres"
)

var categoryAliases = map[string]entity.CatalogCategory{
	"EMPRESA":      entity.CatalogCompany,
	"COMPANY":      entity.CatalogCompany,
	"EPS":          entity.CatalogEPS,
	"ARL":          entity.CatalogARL,
	"CCF":          entity.CatalogCCF,
	"PENSION":      entity.CatalogPensionFund,
	"F. PENSION":   entity.CatalogPensionFund,
	"PENSION_FUND": entity.CatalogPensionFund,
}

func main() {
	csvPath := "catalogos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	headers, rows, err := csvimport.NewReader().ReadRows(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(headers) < 2 {
		fmt.Fprintln(os.Stderr, "El CSV debe tener las columnas CATEGORIA;NOMBRE")
		os.Exit(1)
	}

	names := make(map[entity.CatalogCategory][]string)
	skipped := 0
	for i, r := range rows {
		cat, ok := categoryAliases[strings.ToUpper(strings.TrimSpace(r[headers[0]]))]
		name := strings.TrimSpace(r[headers[1]])
		if !ok || name == "" {
			fmt.Fprintf(os.Stderr, "fila %d ignorada: %q;%q\n", i+1, r[headers[0]], r[headers[1]])
			skipped++
			continue
		}
		names[cat] = append(names[cat], name)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalogs.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Catálogos generados desde %s\n\n", filepath.Base(csvPath))
	if err := postgres.WriteCatalogSeed(out, names); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d filas leídas, %d ignoradas\n", outPath, len(rows), skipped)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
