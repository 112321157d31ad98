package affiliation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	domainaff "github.com/jhoicas/afiliaciones-api/internal/domain/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// Rollover copia al mes actual las afiliaciones activas del mes más reciente (hasta 12 atrás)
// de la oficina, a nombre del usuario que ejecuta. Las copias arrancan en Pendiente y sin fechas.
//
// Si el mes actual ya tiene filas para la oficina no hace nada. Los clientes que ya tienen
// afiliación activa para la llave destino se omiten. Cualquier otro error revierte el lote completo.
func (uc *AffiliationUseCase) Rollover(ctx context.Context, userID, officeID int64) (*dto.RolloverResponse, error) {
	if err := uc.requireOffice(ctx, userID, officeID); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	current := domainaff.PeriodOf(now, uc.clock.Location())
	out := &dto.RolloverResponse{Month: current.Month, Year: current.Year}

	err := uc.tx.RunAffiliation(ctx, func(
		_ repository.ClientRepository,
		affRepo repository.AffiliationRepository,
		_ repository.CatalogRepository,
	) error {
		existing, err := affRepo.CountByPeriod(ctx, officeID, current.Month, current.Year)
		if err != nil {
			return err
		}
		if existing > 0 {
			out.Message = fmt.Sprintf("El mes %s ya tiene afiliaciones para esta oficina; no se copió nada", current)
			return nil
		}

		source, found, err := findSourcePeriod(ctx, affRepo, officeID, current)
		if err != nil {
			return err
		}
		if !found {
			return domain.WithDetail(domain.ErrNotFound, fmt.Sprintf(
				"no se encontraron afiliaciones activas en los últimos %d meses para esta oficina", domainaff.RolloverLookback))
		}
		out.SourceMonth, out.SourceYear = source.Month, source.Year

		rows, err := affRepo.ListActiveByPeriod(ctx, officeID, source.Month, source.Year)
		if err != nil {
			return err
		}
		for _, src := range rows {
			copied := carryForward(src, current, userID, now)
			if err := insertUnique(ctx, affRepo, copied); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					out.Skipped++
					log.Debug().
						Int64("client_id", src.ClientID).
						Int64("office_id", officeID).
						Str("period", current.String()).
						Msg("rollover: cliente omitido, ya tiene afiliación activa")
					continue
				}
				return err
			}
			out.Copied++
		}
		out.Message = fmt.Sprintf("Se copiaron %d afiliaciones de %s a %s", out.Copied, source, current)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findSourcePeriod(ctx context.Context, affRepo repository.AffiliationRepository, officeID int64, current domainaff.Period) (domainaff.Period, bool, error) {
	for i := 1; i <= domainaff.RolloverLookback; i++ {
		p := current.Minus(i)
		ok, err := affRepo.HasActiveInPeriod(ctx, officeID, p.Month, p.Year)
		if err != nil {
			return domainaff.Period{}, false, err
		}
		if ok {
			return p, true, nil
		}
	}
	return domainaff.Period{}, false, nil
}

func carryForward(src *entity.MonthlyAffiliation, to domainaff.Period, userID int64, now time.Time) *entity.MonthlyAffiliation {
	return &entity.MonthlyAffiliation{
		ClientID:      src.ClientID,
		Month:         to.Month,
		Year:          to.Year,
		Value:         src.Value,
		EpsID:         src.EpsID,
		ArlID:         src.ArlID,
		CcfID:         src.CcfID,
		PensionFundID: src.PensionFundID,
		Risk:          src.Risk,
		Observation:   src.Observation,
		OfficeID:      src.OfficeID,
		UserID:        userID,
		CompanyID:     src.CompanyID,
		PaidStatus:    entity.PaymentPending,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
