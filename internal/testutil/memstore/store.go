// Package memstore implementa los puertos de persistencia en memoria con transacciones
// por instantánea: si la función de la transacción falla, el estado vuelve al previo.
// Reproduce las reglas de unicidad del esquema PostgreSQL (cédula, username, una afiliación
// activa por llave, un retiro por afiliación) para probar los casos de uso sin base de datos.
// Solo lo importan archivos _test.go; el binario usa internal/infrastructure/postgres.
package memstore

import (
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// ErrInjected error simulado por FailAffiliationCreateOn.
var ErrInjected = errors.New("memstore: fallo simulado")

type state struct {
	seq          int64
	clients      map[int64]entity.Client
	phones       map[int64][]string
	affiliations map[int64]entity.MonthlyAffiliation
	unsubs       map[int64]entity.ClientUnsubscription
	users        map[int64]entity.User
	userOffices  map[int64]map[int64]struct{}
	offices      map[int64]entity.Office
	roles        map[string]struct{}
	catalogs     map[entity.CatalogCategory][]entity.CatalogEntry
}

func newState() *state {
	return &state{
		clients:      map[int64]entity.Client{},
		phones:       map[int64][]string{},
		affiliations: map[int64]entity.MonthlyAffiliation{},
		unsubs:       map[int64]entity.ClientUnsubscription{},
		users:        map[int64]entity.User{},
		userOffices:  map[int64]map[int64]struct{}{},
		offices:      map[int64]entity.Office{},
		roles:        map[string]struct{}{},
		catalogs:     map[entity.CatalogCategory][]entity.CatalogEntry{},
	}
}

func (s *state) clone() *state {
	c := newState()
	c.seq = s.seq
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.phones {
		c.phones[k] = append([]string(nil), v...)
	}
	for k, v := range s.affiliations {
		c.affiliations[k] = v
	}
	for k, v := range s.unsubs {
		c.unsubs[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.userOffices {
		m := make(map[int64]struct{}, len(v))
		for o := range v {
			m[o] = struct{}{}
		}
		c.userOffices[k] = m
	}
	for k, v := range s.offices {
		c.offices[k] = v
	}
	for k := range s.roles {
		c.roles[k] = struct{}{}
	}
	for k, v := range s.catalogs {
		c.catalogs[k] = append([]entity.CatalogEntry(nil), v...)
	}
	return c
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store base de datos en memoria, segura para uso concurrente.
type Store struct {
	mu sync.Mutex
	st *state

	failCreateAt int
	createCalls  int
}

// New crea un store vacío con los roles por defecto.
func New() *Store {
	st := newState()
	st.roles[entity.RoleAdmin] = struct{}{}
	st.roles[entity.RoleAsesor] = struct{}{}
	return &Store{st: st}
}

func (s *Store) snapshot() *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.clone()
}

func (s *Store) restore(st *state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
}

// FailAffiliationCreateOn hace fallar la n-ésima inserción de afiliación (contando desde ahora).
func (s *Store) FailAffiliationCreateOn(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCreateAt = n
	s.createCalls = 0
}

// ── Siembra de datos ─────────────────────────────────────────────────────────

// AddCatalog agrega entradas a una categoría; IDs en cero se asignan.
func (s *Store) AddCatalog(category entity.CatalogCategory, names ...string) []entity.CatalogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CatalogEntry, 0, len(names))
	for _, n := range names {
		e := entity.CatalogEntry{ID: s.st.nextID(), Name: n}
		s.st.catalogs[category] = append(s.st.catalogs[category], e)
		out = append(out, e)
	}
	return out
}

// AddOffice registra una oficina y devuelve su id.
func (s *Store) AddOffice(o entity.Office) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.st.nextID()
	}
	s.st.offices[o.ID] = o
	return o.ID
}

// AddUser registra un usuario y devuelve su id.
func (s *Store) AddUser(u entity.User) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.st.nextID()
	}
	s.st.users[u.ID] = u
	return u.ID
}

// GrantOffice da acceso del usuario a la oficina.
func (s *Store) GrantOffice(userID, officeID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.st.userOffices[userID] == nil {
		s.st.userOffices[userID] = map[int64]struct{}{}
	}
	s.st.userOffices[userID][officeID] = struct{}{}
}

// SeedAffiliation inserta una afiliación sin validaciones y devuelve su id.
func (s *Store) SeedAffiliation(a entity.MonthlyAffiliation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.st.nextID()
	s.st.affiliations[a.ID] = a
	return a.ID
}

// SeedClient inserta un cliente sin validaciones y devuelve su id.
func (s *Store) SeedClient(c entity.Client) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.st.nextID()
	s.st.clients[c.ID] = c
	return c.ID
}

// ── Lectura para aserciones ──────────────────────────────────────────────────

// Affiliations todas las afiliaciones ordenadas por id.
func (s *Store) Affiliations() []entity.MonthlyAffiliation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.MonthlyAffiliation, 0, len(s.st.affiliations))
	for _, a := range s.st.affiliations {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Affiliation afiliación por id.
func (s *Store) Affiliation(id int64) (entity.MonthlyAffiliation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.affiliations[id]
	return a, ok
}

// Clients todos los clientes ordenados por id.
func (s *Store) Clients() []entity.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Client, 0, len(s.st.clients))
	for _, c := range s.st.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Phones teléfonos del cliente.
func (s *Store) Phones(clientID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.st.phones[clientID]...)
}

// Unsubscriptions retiros ordenados por id.
func (s *Store) Unsubscriptions() []entity.ClientUnsubscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.ClientUnsubscription, 0, len(s.st.unsubs))
	for _, u := range s.st.unsubs {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UserOffices oficinas asignadas al usuario.
func (s *Store) UserOffices(userID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, 0)
	for o := range s.st.userOffices[userID] {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
