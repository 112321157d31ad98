package csvimport

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows_EncabezadosNormalizados(t *testing.T) {
	src := " nombre ;Cedula;Fecha Afiliacion (Plataformas Gob)\nJane Doe;123;01/06/2024\n"
	headers, rows, err := NewReader().ReadRows(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"NOMBRE", "CEDULA", "FECHA AFILIACION (PLATAFORMAS GOB)"}, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0]["NOMBRE"])
	assert.Equal(t, "01/06/2024", rows[0]["FECHA AFILIACION (PLATAFORMAS GOB)"])
}

func TestReadRows_BOMYFilasVacias(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("NOMBRE;CEDULA\nAna;1\n;\n\nLuis;2\n")...)
	headers, rows, err := NewReader().ReadRows(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "NOMBRE", headers[0])
	require.Len(t, rows, 2)
	assert.Equal(t, "Luis", rows[1]["NOMBRE"])
}

func TestReadRows_Latin1(t *testing.T) {
	// "PEÑA" en ISO-8859-1: Ñ = 0xD1
	src := []byte("NOMBRE;CEDULA\nPE\xd1A;9\n")
	_, rows, err := NewReader().ReadRows(bytes.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "PEÑA", rows[0]["NOMBRE"])
}

func TestReadRows_RegistroCorto(t *testing.T) {
	_, rows, err := NewReader().ReadRows(strings.NewReader("NOMBRE;CEDULA;EPS\nAna;1\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	v, ok := rows[0]["EPS"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestReadRows_ArchivoVacio(t *testing.T) {
	_, _, err := NewReader().ReadRows(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrEmptyFile))

	_, _, err = NewReader().ReadRows(strings.NewReader(";;\n"))
	assert.True(t, errors.Is(err, ErrEmptyFile))
}

func TestToUTF8_ConservaUTF8Valido(t *testing.T) {
	out, err := ToUTF8([]byte("Compensar Ñ"))
	require.NoError(t, err)
	assert.Equal(t, "Compensar Ñ", string(out))
}
