// Package ports contratos compartidos por los casos de uso (DIP).
package ports

import "time"

// Clock fuente de "ahora" en la zona horaria de negocio.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// SystemClock reloj real en una zona fija.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock construye el reloj; loc nil equivale a UTC.
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

// Now hora actual en la zona de negocio.
func (c *SystemClock) Now() time.Time { return time.Now().In(c.loc) }

// Location zona de negocio.
func (c *SystemClock) Location() *time.Location { return c.loc }

// FixedClock reloj detenido, útil en tests.
type FixedClock struct {
	T time.Time
}

// Now devuelve siempre T.
func (c FixedClock) Now() time.Time { return c.T }

// Location zona de T.
func (c FixedClock) Location() *time.Location { return c.T.Location() }
