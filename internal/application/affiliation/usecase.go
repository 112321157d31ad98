// Package affiliation orquesta el ciclo de vida de las afiliaciones mensuales:
// creación junto con el cliente, edición, transiciones de pago, desactivación,
// traslado mensual e importación masiva.
package affiliation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/afiliaciones-api/internal/application/catalog"
	"github.com/jhoicas/afiliaciones-api/internal/application/client"
	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	domainaff "github.com/jhoicas/afiliaciones-api/internal/domain/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// AffiliationUseCase casos de uso sobre monthly_affiliations.
type AffiliationUseCase struct {
	tx      TxRunner
	affRepo repository.AffiliationRepository
	access  OfficeAccess
	clock   ports.Clock
}

// NewAffiliationUseCase construye el caso de uso. affRepo se usa para lecturas y escrituras de una sola sentencia.
func NewAffiliationUseCase(tx TxRunner, affRepo repository.AffiliationRepository, access OfficeAccess, clock ports.Clock) *AffiliationUseCase {
	return &AffiliationUseCase{tx: tx, affRepo: affRepo, access: access, clock: clock}
}

// List devuelve las afiliaciones activas de la oficina en el período.
func (uc *AffiliationUseCase) List(ctx context.Context, in dto.ListAffiliationsRequest) ([]dto.AffiliationResponse, error) {
	if err := uc.requireOffice(ctx, in.UserID, in.OfficeID); err != nil {
		return nil, err
	}
	rows, err := uc.affRepo.ListDetails(ctx, repository.AffiliationFilter{
		OfficeID: in.OfficeID,
		Month:    in.Month,
		Year:     in.Year,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.WithDetail(domain.ErrNotFound,
			fmt.Sprintf("No se encontraron afiliaciones para %02d/%d en la oficina %d", in.Month, in.Year, in.OfficeID))
	}
	out := make([]dto.AffiliationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAffiliationResponse(r))
	}
	return out, nil
}

// ListInactive histórico de afiliaciones desactivadas con su retiro.
func (uc *AffiliationUseCase) ListInactive(ctx context.Context, q dto.InactiveHistoryQuery) ([]dto.InactiveAffiliationResponse, error) {
	if err := uc.requireOffice(ctx, q.UserID, q.OfficeID); err != nil {
		return nil, err
	}
	filter := repository.InactiveFilter{OfficeID: q.OfficeID, UserID: q.UserID}
	if q.Month > 0 {
		filter.Month = &q.Month
	}
	if q.Year > 0 {
		filter.Year = &q.Year
	}
	rows, err := uc.affRepo.ListInactive(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InactiveAffiliationResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.InactiveAffiliationResponse{
			AffiliationResponse: toAffiliationResponse(r.AffiliationDetail),
			DeletedAt:           r.DeletedAt,
			DeletedByUserID:     r.DeletedByUserID,
		}
		if r.UnsubscriptionID != nil {
			u := &dto.UnsubscriptionResponse{
				ID:            *r.UnsubscriptionID,
				AffiliationID: r.AffiliationID,
				Reason:        r.UnsubscriptionReason,
				Observation:   r.UnsubscriptionObservation,
			}
			if r.UnsubscriptionCost != nil {
				u.Cost = *r.UnsubscriptionCost
			}
			if r.UnsubscriptionDate != nil {
				u.UnsubscriptionDate = *r.UnsubscriptionDate
			}
			item.Unsubscription = u
		}
		out = append(out, item)
	}
	return out, nil
}

// Create busca-o-crea el cliente, registra sus teléfonos y crea la afiliación del período,
// todo en una transacción. Una afiliación activa existente para la misma llave → conflicto.
func (uc *AffiliationUseCase) Create(ctx context.Context, in dto.CreateClientAffiliationRequest) (*dto.CreateClientAffiliationResponse, error) {
	status, err := parseStatusOrDefault(in.Affiliation.Paid)
	if err != nil {
		return nil, err
	}
	if in.Affiliation.Value.IsNegative() {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "el valor de la afiliación no puede ser negativo")
	}
	now := uc.clock.Now()
	period := domainaff.PeriodOf(now, uc.clock.Location())
	if in.Affiliation.Month != nil {
		period.Month = *in.Affiliation.Month
	}
	if in.Affiliation.Year != nil {
		period.Year = *in.Affiliation.Year
	}
	if !period.Valid() {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "mes o año inválido")
	}
	if err := uc.requireOffice(ctx, in.UserID, in.OfficeID); err != nil {
		return nil, err
	}

	out := &dto.CreateClientAffiliationResponse{Month: period.Month, Year: period.Year}
	err = uc.tx.RunAffiliation(ctx, func(
		clientRepo repository.ClientRepository,
		affRepo repository.AffiliationRepository,
		catalogRepo repository.CatalogRepository,
	) error {
		refs, err := resolveRefs(ctx, catalogRepo, catalogInput{
			EpsID: in.Affiliation.EpsID, Eps: in.Affiliation.Eps,
			ArlID: in.Affiliation.ArlID, Arl: in.Affiliation.Arl,
			CcfID: in.Affiliation.CcfID, Ccf: in.Affiliation.Ccf,
			PensionFundID: in.Affiliation.PensionFundID, PensionFund: in.Affiliation.PensionFund,
		})
		if err != nil {
			return err
		}

		c, created, err := client.FindOrCreate(ctx, clientRepo, client.Identity{
			Identification: in.Identification,
			FullName:       in.FullName,
			CompanyID:      in.CompanyID,
		}, now)
		if err != nil {
			return err
		}
		if err := client.UpsertPhones(ctx, clientRepo, c.ID, in.Phones); err != nil {
			return err
		}

		a := &entity.MonthlyAffiliation{
			ClientID:      c.ID,
			Month:         period.Month,
			Year:          period.Year,
			Value:         in.Affiliation.Value,
			EpsID:         refs.EpsID,
			ArlID:         refs.ArlID,
			CcfID:         refs.CcfID,
			PensionFundID: refs.PensionFundID,
			Risk:          trimPtr(in.Affiliation.Risk),
			Observation:   trimPtr(in.Affiliation.Observation),
			OfficeID:      in.OfficeID,
			UserID:        in.UserID,
			CompanyID:     firstID(in.CompanyID, c.CompanyID),
			IsActive:      true,
			CreatedAt:     now,
		}
		domainaff.ApplyPaymentStatus(a, status, now)

		if err := insertUnique(ctx, affRepo, a); err != nil {
			return err
		}
		out.ClientID = c.ID
		out.ClientCreated = created
		out.AffiliationID = a.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Message = "Cliente y afiliación registrados correctamente"
	return out, nil
}

// Edit actualiza afiliación, cliente y teléfonos en una sola transacción.
func (uc *AffiliationUseCase) Edit(ctx context.Context, in dto.EditAffiliationRequest) error {
	status, ok := entity.ParsePaymentStatus(in.Paid)
	if !ok {
		return invalidStatus(in.Paid)
	}
	if in.Value.IsNegative() {
		return domain.WithDetail(domain.ErrInvalidInput, "el valor de la afiliación no puede ser negativo")
	}
	fullName := strings.TrimSpace(in.FullName)
	identification := strings.TrimSpace(in.Identification)
	if fullName == "" || identification == "" {
		return domain.WithDetail(domain.ErrInvalidInput, "fullName e identification son requeridos")
	}
	now := uc.clock.Now()

	return uc.tx.RunAffiliation(ctx, func(
		clientRepo repository.ClientRepository,
		affRepo repository.AffiliationRepository,
		catalogRepo repository.CatalogRepository,
	) error {
		refs, err := resolveRefs(ctx, catalogRepo, catalogInput{
			Eps: in.Eps, Arl: in.Arl, Ccf: in.Ccf, PensionFund: in.PensionFund,
			CompanyID: in.CompanyID, Company: in.Company,
		})
		if err != nil {
			return err
		}

		a, err := affRepo.GetByID(ctx, in.AffiliationID)
		if err != nil {
			return err
		}
		if a == nil || !a.IsActive {
			return domain.WithDetail(domain.ErrNotFound, "afiliación no encontrada o inactiva")
		}
		if a.ClientID != in.ClientID {
			return domain.WithDetail(domain.ErrInvalidInput, "la afiliación no pertenece al cliente indicado")
		}
		c, err := clientRepo.GetByID(ctx, in.ClientID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.WithDetail(domain.ErrNotFound, "cliente no encontrado")
		}

		a.Value = in.Value
		a.EpsID, a.ArlID, a.CcfID, a.PensionFundID = refs.EpsID, refs.ArlID, refs.CcfID, refs.PensionFundID
		a.Risk = trimPtr(in.Risk)
		a.Observation = trimPtr(in.Observation)
		a.CompanyID = refs.CompanyID
		a.PaidStatus = status
		a.DatePaidReceived, a.GovRecordCompletedAt = domainaff.NormalizeDates(status,
			in.DatePaidReceived.Ptr(), in.GovRecordCompletedAt.Ptr(), now)
		a.UpdatedAt = now
		if err := affRepo.Update(ctx, a); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.WithDetail(domain.ErrNotFound, "afiliación no encontrada o inactiva")
			}
			return err
		}

		c.FullName = fullName
		c.Identification = identification
		c.CompanyID = refs.CompanyID
		c.UpdatedAt = now
		if err := clientRepo.Update(ctx, c); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return domain.WithDetail(domain.ErrNotFound, "cliente no encontrado")
			case errors.Is(err, domain.ErrDuplicate):
				return domain.WithDetail(domain.ErrDuplicate, "ya existe otro cliente con esa identificación")
			}
			return err
		}
		return client.ReplacePhones(ctx, clientRepo, c.ID, in.Phones)
	})
}

// UpdatePaid aplica la transición de estado de pago sobre una afiliación activa.
func (uc *AffiliationUseCase) UpdatePaid(ctx context.Context, in dto.UpdatePaidRequest) (*dto.UpdatePaidResponse, error) {
	status, ok := entity.ParsePaymentStatus(in.Paid)
	if !ok {
		return nil, invalidStatus(in.Paid)
	}
	now := uc.clock.Now()
	paidAt, govAt := domainaff.TransitionDates(status, now)
	if err := uc.affRepo.UpdatePaymentStatus(ctx, in.AffiliationID, status, paidAt, govAt, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.WithDetail(domain.ErrNotFound, "afiliación no encontrada o inactiva")
		}
		return nil, err
	}
	return &dto.UpdatePaidResponse{
		Message:              "Estado de pago actualizado",
		AffiliationID:        in.AffiliationID,
		Paid:                 string(status),
		DatePaidReceived:     paidAt,
		GovRecordCompletedAt: govAt,
	}, nil
}

// SoftDelete desactiva la afiliación registrando quién y cuándo. Inactiva o inexistente → not found.
func (uc *AffiliationUseCase) SoftDelete(ctx context.Context, in dto.DeleteAffiliationRequest) error {
	if err := uc.affRepo.SoftDelete(ctx, in.AffiliationID, in.UserID, uc.clock.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithDetail(domain.ErrNotFound, "afiliación no encontrada o ya inactiva")
		}
		return err
	}
	return nil
}

func (uc *AffiliationUseCase) requireOffice(ctx context.Context, userID, officeID int64) error {
	ok, err := uc.access.HasOfficeAccess(ctx, userID, officeID)
	if err != nil {
		return fmt.Errorf("affiliation: verificar acceso a oficina: %w", err)
	}
	if !ok {
		return domain.WithDetail(domain.ErrForbidden, "el usuario no tiene acceso a esta oficina")
	}
	return nil
}

// insertUnique verifica la llave activa dentro de la transacción y luego inserta;
// el índice único parcial cubre la carrera entre verificación e inserción.
func insertUnique(ctx context.Context, affRepo repository.AffiliationRepository, a *entity.MonthlyAffiliation) error {
	exists, err := affRepo.ExistsActive(ctx, a.Key())
	if err != nil {
		return err
	}
	if exists {
		return duplicateAffiliation(a)
	}
	if err := affRepo.Create(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return duplicateAffiliation(a)
		}
		return err
	}
	return nil
}

func duplicateAffiliation(a *entity.MonthlyAffiliation) error {
	return domain.WithDetail(domain.ErrDuplicate, fmt.Sprintf(
		"ya existe una afiliación activa para este cliente en %02d/%d con la misma oficina y usuario", a.Month, a.Year))
}

func parseStatusOrDefault(s string) (entity.PaymentStatus, error) {
	if strings.TrimSpace(s) == "" {
		return entity.PaymentPending, nil
	}
	status, ok := entity.ParsePaymentStatus(s)
	if !ok {
		return "", invalidStatus(s)
	}
	return status, nil
}

func invalidStatus(s string) error {
	return domain.WithDetail(domain.ErrInvalidPaymentStatus, fmt.Sprintf(
		"estado de pago '%s' inválido: use %s, %s o %s", s, entity.PaymentPending, entity.PaymentPaid, entity.PaymentInProcess))
}

// catalogInput referencias de catálogo por id o por nombre; el id tiene prioridad.
type catalogInput struct {
	EpsID, ArlID, CcfID, PensionFundID, CompanyID *int64
	Eps, Arl, Ccf, PensionFund, Company           string
}

type catalogRefs struct {
	EpsID, ArlID, CcfID, PensionFundID, CompanyID *int64
}

func resolveRefs(ctx context.Context, repo repository.CatalogRepository, in catalogInput) (catalogRefs, error) {
	var out catalogRefs
	pairs := []struct {
		category entity.CatalogCategory
		id       *int64
		name     string
		dst      **int64
	}{
		{entity.CatalogEPS, in.EpsID, in.Eps, &out.EpsID},
		{entity.CatalogARL, in.ArlID, in.Arl, &out.ArlID},
		{entity.CatalogCCF, in.CcfID, in.Ccf, &out.CcfID},
		{entity.CatalogPensionFund, in.PensionFundID, in.PensionFund, &out.PensionFundID},
		{entity.CatalogCompany, in.CompanyID, in.Company, &out.CompanyID},
	}
	for _, p := range pairs {
		if p.id != nil {
			*p.dst = p.id
			continue
		}
		id, err := catalog.Resolve(ctx, repo, p.category, p.name)
		if err != nil {
			return catalogRefs{}, err
		}
		*p.dst = id
	}
	return out, nil
}

func toAffiliationResponse(r repository.AffiliationDetail) dto.AffiliationResponse {
	phones := r.Phones
	if phones == nil {
		phones = []string{}
	}
	return dto.AffiliationResponse{
		AffiliationID:        r.AffiliationID,
		ClientID:             r.ClientID,
		FullName:             r.FullName,
		Identification:       r.Identification,
		CompanyID:            r.CompanyID,
		CompanyName:          r.CompanyName,
		Phones:               phones,
		Month:                r.Month,
		Year:                 r.Year,
		Value:                r.Value,
		EpsID:                r.EpsID,
		Eps:                  r.EpsName,
		ArlID:                r.ArlID,
		Arl:                  r.ArlName,
		CcfID:                r.CcfID,
		Ccf:                  r.CcfName,
		PensionFundID:        r.PensionFundID,
		PensionFund:          r.PensionFundName,
		Risk:                 r.Risk,
		Observation:          r.Observation,
		Paid:                 string(r.PaidStatus),
		DatePaidReceived:     r.DatePaidReceived,
		GovRecordCompletedAt: r.GovRecordCompletedAt,
		OfficeID:             r.OfficeID,
		UserID:               r.UserID,
		CreatedAt:            r.CreatedAt,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func firstID(ids ...*int64) *int64 {
	for _, id := range ids {
		if id != nil {
			return id
		}
	}
	return nil
}
