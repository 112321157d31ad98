// Package csvimport lee los archivos CSV de carga masiva (punto y coma, UTF-8 o Latin-1).
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
)

var _ affiliation.SheetReader = (*Reader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrEmptyFile el archivo no trae encabezado.
var ErrEmptyFile = errors.New("el archivo está vacío o no tiene encabezado")

// Reader decodifica CSV con encabezado. Los encabezados se devuelven recortados y en mayúsculas.
type Reader struct {
	Comma rune
}

// NewReader reader con separador ';'.
func NewReader() *Reader {
	return &Reader{Comma: ';'}
}

// ReadRows devuelve los encabezados y una fila encabezado→valor por registro no vacío.
func (r *Reader) ReadRows(src io.Reader) ([]string, []map[string]string, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, fmt.Errorf("leer archivo: %w", err)
	}
	data, err := ToUTF8(raw)
	if err != nil {
		return nil, nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = r.Comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("leer encabezado: %w", err)
	}
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.ToUpper(strings.TrimSpace(h))
	}
	if isBlank(headers) {
		return nil, nil, ErrEmptyFile
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("leer registro: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if _, dup := row[h]; dup {
				continue
			}
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// ToUTF8 quita el BOM y, si los bytes no son UTF-8 válido, los decodifica como ISO-8859-1.
func ToUTF8(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw, nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decodificar latin-1: %w", err)
	}
	return out, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
