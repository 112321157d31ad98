package postgres

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// seedOrder orden estable de las tablas en el script generado.
var seedOrder = []entity.CatalogCategory{
	entity.CatalogCompany,
	entity.CatalogEPS,
	entity.CatalogARL,
	entity.CatalogCCF,
	entity.CatalogPensionFund,
}

// CatalogTable tabla de la categoría; false si la categoría no existe.
func CatalogTable(category entity.CatalogCategory) (string, bool) {
	t, ok := catalogTables[category]
	return t, ok
}

// WriteCatalogSeed escribe un script SQL idempotente con los nombres por categoría.
// Los nombres se recortan, se deduplican y se emiten ordenados.
func WriteCatalogSeed(w io.Writer, names map[entity.CatalogCategory][]string) error {
	if _, err := fmt.Fprintln(w, "BEGIN;"); err != nil {
		return err
	}
	for _, cat := range seedOrder {
		list := uniqueSorted(names[cat])
		if len(list) == 0 {
			continue
		}
		table := catalogTables[cat]
		values := make([]string, len(list))
		for i, n := range list {
			values[i] = "    (" + quoteLiteral(n) + ")"
		}
		if _, err := fmt.Fprintf(w, "\nINSERT INTO %s (name) VALUES\n%s\nON CONFLICT (name) DO NOTHING;\n",
			table, strings.Join(values, ",\n")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "\nCOMMIT;")
	return err
}

func uniqueSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.Join(strings.Fields(n), " ")
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
