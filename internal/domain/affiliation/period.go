package affiliation

import (
	"fmt"
	"time"
)

// RolloverLookback cantidad de meses anteriores revisados al buscar el mes de referencia.
const RolloverLookback = 12

// Period mes calendario (1–12) de un año.
type Period struct {
	Month int
	Year  int
}

// PeriodOf devuelve el período de t en la zona loc.
func PeriodOf(t time.Time, loc *time.Location) Period {
	if loc != nil {
		t = t.In(loc)
	}
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Minus retrocede n meses (n puede ser negativo para avanzar).
func (p Period) Minus(n int) Period {
	idx := p.Year*12 + (p.Month - 1) - n
	return Period{Month: idx%12 + 1, Year: idx / 12}
}

// Valid indica mes 1–12 y año plausible.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 2000 && p.Year <= 9999
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%d", p.Month, p.Year)
}

var monthNamesES = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName nombre del mes en español; vacío si m está fuera de rango.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNamesES[m-1]
}
