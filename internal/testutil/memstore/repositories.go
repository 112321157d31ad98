package memstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository         = (*ClientRepo)(nil)
	_ repository.AffiliationRepository    = (*AffiliationRepo)(nil)
	_ repository.CatalogRepository        = (*CatalogRepo)(nil)
	_ repository.UnsubscriptionRepository = (*UnsubscriptionRepo)(nil)
	_ repository.UserRepository           = (*UserRepo)(nil)
	_ repository.OfficeRepository         = (*OfficeRepo)(nil)
	_ repository.ReportRepository         = (*ReportRepo)(nil)
)

// Repositorios ligados al store.
func (s *Store) ClientRepo() *ClientRepo                 { return &ClientRepo{s: s} }
func (s *Store) AffiliationRepo() *AffiliationRepo       { return &AffiliationRepo{s: s} }
func (s *Store) CatalogRepo() *CatalogRepo               { return &CatalogRepo{s: s} }
func (s *Store) UnsubscriptionRepo() *UnsubscriptionRepo { return &UnsubscriptionRepo{s: s} }
func (s *Store) UserRepo() *UserRepo                     { return &UserRepo{s: s} }
func (s *Store) OfficeRepo() *OfficeRepo                 { return &OfficeRepo{s: s} }
func (s *Store) ReportRepo() *ReportRepo                 { return &ReportRepo{s: s} }

// ── Clientes ─────────────────────────────────────────────────────────────────

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct{ s *Store }

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) GetByIdentification(_ context.Context, identification string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.st.clients {
		if c.Identification == identification {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.st.clients {
		if c.Identification == client.Identification {
			return domain.ErrDuplicate
		}
	}
	client.ID = r.s.st.nextID()
	r.s.st.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) Update(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, c := range r.s.st.clients {
		if id != client.ID && c.Identification == client.Identification {
			return domain.ErrDuplicate
		}
	}
	r.s.st.clients[client.ID] = *client
	return nil
}

func (r *ClientRepo) AddPhone(_ context.Context, clientID int64, phone string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.st.phones[clientID] {
		if p == phone {
			return nil
		}
	}
	r.s.st.phones[clientID] = append(r.s.st.phones[clientID], phone)
	return nil
}

func (r *ClientRepo) DeletePhones(_ context.Context, clientID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.st.phones, clientID)
	return nil
}

func (r *ClientRepo) ListPhones(_ context.Context, clientID int64) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]string(nil), r.s.st.phones[clientID]...), nil
}

// ── Afiliaciones ─────────────────────────────────────────────────────────────

// AffiliationRepo implementación en memoria de AffiliationRepository.
type AffiliationRepo struct{ s *Store }

func (r *AffiliationRepo) Create(_ context.Context, a *entity.MonthlyAffiliation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failCreateAt > 0 {
		r.s.createCalls++
		if r.s.createCalls == r.s.failCreateAt {
			return ErrInjected
		}
	}
	key := a.Key()
	for _, x := range r.s.st.affiliations {
		if x.IsActive && x.Key() == key {
			return domain.ErrDuplicate
		}
	}
	a.ID = r.s.st.nextID()
	r.s.st.affiliations[a.ID] = *a
	return nil
}

func (r *AffiliationRepo) GetByID(_ context.Context, id int64) (*entity.MonthlyAffiliation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.st.affiliations[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AffiliationRepo) ExistsActive(_ context.Context, key entity.AffiliationKey) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.st.affiliations {
		if x.IsActive && x.Key() == key {
			return true, nil
		}
	}
	return false, nil
}

func (r *AffiliationRepo) Update(_ context.Context, a *entity.MonthlyAffiliation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.affiliations[a.ID]
	if !ok || !cur.IsActive {
		return domain.ErrNotFound
	}
	cur.Value = a.Value
	cur.EpsID, cur.ArlID, cur.CcfID, cur.PensionFundID = a.EpsID, a.ArlID, a.CcfID, a.PensionFundID
	cur.Risk, cur.Observation, cur.CompanyID = a.Risk, a.Observation, a.CompanyID
	cur.PaidStatus = a.PaidStatus
	cur.DatePaidReceived, cur.GovRecordCompletedAt = a.DatePaidReceived, a.GovRecordCompletedAt
	cur.UpdatedAt = a.UpdatedAt
	r.s.st.affiliations[a.ID] = cur
	return nil
}

func (r *AffiliationRepo) UpdatePaymentStatus(_ context.Context, id int64, status entity.PaymentStatus, paidAt, govRecordAt *time.Time, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.affiliations[id]
	if !ok || !cur.IsActive {
		return domain.ErrNotFound
	}
	cur.PaidStatus = status
	cur.DatePaidReceived, cur.GovRecordCompletedAt = paidAt, govRecordAt
	cur.UpdatedAt = updatedAt
	r.s.st.affiliations[id] = cur
	return nil
}

func (r *AffiliationRepo) SoftDelete(_ context.Context, id, deletedBy int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.affiliations[id]
	if !ok || !cur.IsActive {
		return domain.ErrNotFound
	}
	cur.IsActive = false
	cur.DeletedAt = &at
	cur.DeletedByUserID = &deletedBy
	cur.UpdatedAt = at
	r.s.st.affiliations[id] = cur
	return nil
}

func (r *AffiliationRepo) CountByPeriod(_ context.Context, officeID int64, month, year int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, x := range r.s.st.affiliations {
		if x.OfficeID == officeID && x.Month == month && x.Year == year {
			n++
		}
	}
	return n, nil
}

func (r *AffiliationRepo) HasActiveInPeriod(ctx context.Context, officeID int64, month, year int) (bool, error) {
	rows, err := r.ListActiveByPeriod(ctx, officeID, month, year)
	return len(rows) > 0, err
}

func (r *AffiliationRepo) ListActiveByPeriod(_ context.Context, officeID int64, month, year int) ([]*entity.MonthlyAffiliation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.MonthlyAffiliation
	for _, x := range r.s.st.affiliations {
		if x.IsActive && x.OfficeID == officeID && x.Month == month && x.Year == year {
			x := x
			out = append(out, &x)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AffiliationRepo) ListDetails(_ context.Context, f repository.AffiliationFilter) ([]repository.AffiliationDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.AffiliationDetail
	for _, x := range r.s.st.affiliations {
		if x.IsActive && x.OfficeID == f.OfficeID && x.Month == f.Month && x.Year == f.Year {
			out = append(out, r.detail(x))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *AffiliationRepo) ListInactive(_ context.Context, f repository.InactiveFilter) ([]repository.InactiveAffiliationDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.InactiveAffiliationDetail
	for _, x := range r.s.st.affiliations {
		if x.IsActive || x.OfficeID != f.OfficeID || x.UserID != f.UserID {
			continue
		}
		if (f.Month != nil && x.Month != *f.Month) || (f.Year != nil && x.Year != *f.Year) {
			continue
		}
		item := repository.InactiveAffiliationDetail{
			AffiliationDetail: r.detail(x),
			DeletedAt:         x.DeletedAt,
			DeletedByUserID:   x.DeletedByUserID,
		}
		for _, u := range r.s.st.unsubs {
			if u.AffiliationID == x.ID {
				u := u
				item.UnsubscriptionID = &u.ID
				item.UnsubscriptionReason = u.Reason
				item.UnsubscriptionCost = &u.Cost
				item.UnsubscriptionObservation = u.Observation
				item.UnsubscriptionDate = &u.UnsubscriptionDate
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AffiliationID > out[j].AffiliationID })
	return out, nil
}

// detail requiere mu tomado.
func (r *AffiliationRepo) detail(x entity.MonthlyAffiliation) repository.AffiliationDetail {
	c := r.s.st.clients[x.ClientID]
	companyID := x.CompanyID
	if companyID == nil {
		companyID = c.CompanyID
	}
	return repository.AffiliationDetail{
		AffiliationID:        x.ID,
		ClientID:             x.ClientID,
		FullName:             c.FullName,
		Identification:       c.Identification,
		CompanyID:            companyID,
		CompanyName:          r.catalogName(entity.CatalogCompany, companyID),
		Phones:               append([]string(nil), r.s.st.phones[x.ClientID]...),
		Month:                x.Month,
		Year:                 x.Year,
		Value:                x.Value,
		EpsID:                x.EpsID,
		EpsName:              r.catalogName(entity.CatalogEPS, x.EpsID),
		ArlID:                x.ArlID,
		ArlName:              r.catalogName(entity.CatalogARL, x.ArlID),
		CcfID:                x.CcfID,
		CcfName:              r.catalogName(entity.CatalogCCF, x.CcfID),
		PensionFundID:        x.PensionFundID,
		PensionFundName:      r.catalogName(entity.CatalogPensionFund, x.PensionFundID),
		Risk:                 x.Risk,
		Observation:          x.Observation,
		PaidStatus:           x.PaidStatus,
		DatePaidReceived:     x.DatePaidReceived,
		GovRecordCompletedAt: x.GovRecordCompletedAt,
		OfficeID:             x.OfficeID,
		UserID:               x.UserID,
		CreatedAt:            x.CreatedAt,
	}
}

func (r *AffiliationRepo) catalogName(c entity.CatalogCategory, id *int64) *string {
	if id == nil {
		return nil
	}
	for _, e := range r.s.st.catalogs[c] {
		if e.ID == *id {
			name := e.Name
			return &name
		}
	}
	return nil
}

// ── Catálogos ────────────────────────────────────────────────────────────────

// CatalogRepo implementación en memoria de CatalogRepository.
type CatalogRepo struct{ s *Store }

func (r *CatalogRepo) List(_ context.Context, c entity.CatalogCategory) ([]entity.CatalogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := append([]entity.CatalogEntry(nil), r.s.st.catalogs[c]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Retiros ──────────────────────────────────────────────────────────────────

// UnsubscriptionRepo implementación en memoria de UnsubscriptionRepository.
type UnsubscriptionRepo struct{ s *Store }

func (r *UnsubscriptionRepo) ExistsForAffiliation(_ context.Context, affiliationID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.unsubs {
		if u.AffiliationID == affiliationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *UnsubscriptionRepo) Create(_ context.Context, u *entity.ClientUnsubscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.st.unsubs {
		if x.AffiliationID == u.AffiliationID {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.s.st.nextID()
	r.s.st.unsubs[u.ID] = *u
	return nil
}

func (r *UnsubscriptionRepo) Update(_ context.Context, id int64, patch entity.UnsubscriptionPatch, updatedAt time.Time) (*entity.ClientUnsubscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.unsubs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Reason != nil {
		u.Reason = patch.Reason
	}
	if patch.Cost != nil {
		u.Cost = *patch.Cost
	}
	if patch.Observation != nil {
		u.Observation = patch.Observation
	}
	u.UpdatedAt = updatedAt
	r.s.st.unsubs[id] = u
	return &u, nil
}

// ── Usuarios y oficinas ──────────────────────────────────────────────────────

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.st.users {
		if strings.EqualFold(x.Username, u.Username) {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.s.st.nextID()
	r.s.st.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) RoleExists(_ context.Context, role string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.st.roles[role]
	return ok, nil
}

func (r *UserRepo) AssignOffice(_ context.Context, userID, officeID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.offices[officeID]; !ok {
		return domain.ErrInvalidInput
	}
	if r.s.st.userOffices[userID] == nil {
		r.s.st.userOffices[userID] = map[int64]struct{}{}
	}
	r.s.st.userOffices[userID][officeID] = struct{}{}
	return nil
}

func (r *UserRepo) HasOfficeAccess(_ context.Context, userID, officeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.st.userOffices[userID][officeID]
	return ok, nil
}

func (r *UserRepo) ListOffices(_ context.Context, userID int64) ([]entity.Office, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.Office
	for id := range r.s.st.userOffices[userID] {
		if o, ok := r.s.st.offices[id]; ok {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// OfficeRepo implementación en memoria de OfficeRepository.
type OfficeRepo struct{ s *Store }

func (r *OfficeRepo) GetByID(_ context.Context, id int64) (*entity.Office, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.st.offices[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// ── Reportes ─────────────────────────────────────────────────────────────────

// ReportRepo agregados en memoria sobre afiliaciones activas.
type ReportRepo struct{ s *Store }

func (r *ReportRepo) PaidTotal(_ context.Context, officeID, userID int64, month, year int) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, x := range r.s.st.affiliations {
		if x.IsActive && x.PaidStatus == entity.PaymentPaid && x.OfficeID == officeID &&
			x.UserID == userID && x.Month == month && x.Year == year {
			total = total.Add(x.Value)
		}
	}
	return total, nil
}

func (r *ReportRepo) UserPerformance(_ context.Context, month, year int, officeID *int64) ([]repository.UserPerformanceResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byUser := map[int64]*repository.UserPerformanceResult{}
	for _, x := range r.s.st.affiliations {
		if !x.IsActive || x.Month != month || x.Year != year {
			continue
		}
		if officeID != nil && x.OfficeID != *officeID {
			continue
		}
		res, ok := byUser[x.UserID]
		if !ok {
			res = &repository.UserPerformanceResult{UserID: x.UserID, Username: r.s.st.users[x.UserID].Username}
			byUser[x.UserID] = res
		}
		res.TotalAffiliations++
		res.TotalValue = res.TotalValue.Add(x.Value)
		if x.PaidStatus == entity.PaymentPaid {
			res.PaidValue = res.PaidValue.Add(x.Value)
		}
	}
	out := make([]repository.UserPerformanceResult, 0, len(byUser))
	for _, v := range byUser {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidValue.GreaterThan(out[j].PaidValue) })
	return out, nil
}

func (r *ReportRepo) MonthlyIncome(_ context.Context, startYear, endYear int, officeID *int64) ([]repository.MonthlyIncomeResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	type ym struct{ y, m int }
	sums := map[ym]decimal.Decimal{}
	for _, x := range r.s.st.affiliations {
		if !x.IsActive || x.PaidStatus != entity.PaymentPaid || x.Year < startYear || x.Year > endYear {
			continue
		}
		if officeID != nil && x.OfficeID != *officeID {
			continue
		}
		k := ym{x.Year, x.Month}
		sums[k] = sums[k].Add(x.Value)
	}
	out := make([]repository.MonthlyIncomeResult, 0, len(sums))
	for k, v := range sums {
		out = append(out, repository.MonthlyIncomeResult{Year: k.y, Month: k.m, TotalIncome: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}
