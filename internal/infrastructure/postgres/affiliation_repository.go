package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var _ repository.AffiliationRepository = (*AffiliationRepo)(nil)

// AffiliationRepo implementación de AffiliationRepository (usable con pool o tx).
// Es el único lugar donde el campo de negocio "paid" se traduce a la columna paid_status.
type AffiliationRepo struct {
	q Querier
}

// NewAffiliationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAffiliationRepository(q Querier) *AffiliationRepo {
	return &AffiliationRepo{q: q}
}

const affiliationColumns = `
	id, client_id, month, year, value, eps_id, arl_id, ccf_id, pension_fund_id, risk, observation,
	office_id, user_id, company_id, paid_status, date_paid_received, gov_record_completed_at,
	is_active, deleted_at, deleted_by_user_id, created_at, updated_at`

// detailSelect afiliación con cliente, teléfonos y nombres de catálogo. La empresa de la
// afiliación tiene prioridad sobre la del cliente.
const detailSelect = `
	SELECT ma.id, ma.client_id, c.full_name, c.identification,
		COALESCE(ma.company_id, c.company_id), co.name,
		COALESCE((SELECT array_agg(cp.phone_number::text ORDER BY cp.phone_number)
		          FROM client_phones cp WHERE cp.client_id = ma.client_id), '{}'::text[]),
		ma.month, ma.year, ma.value,
		ma.eps_id, eps.name, ma.arl_id, arl.name, ma.ccf_id, ccf.name, ma.pension_fund_id, pf.name,
		ma.risk, ma.observation, ma.paid_status, ma.date_paid_received, ma.gov_record_completed_at,
		ma.office_id, ma.user_id, ma.created_at`

const detailFrom = `
	FROM monthly_affiliations ma
	JOIN clients c ON c.id = ma.client_id
	LEFT JOIN companies co ON co.id = COALESCE(ma.company_id, c.company_id)
	LEFT JOIN eps_list eps ON eps.id = ma.eps_id
	LEFT JOIN arl_list arl ON arl.id = ma.arl_id
	LEFT JOIN ccf_list ccf ON ccf.id = ma.ccf_id
	LEFT JOIN pension_fund_list pf ON pf.id = ma.pension_fund_id`

// Create inserta la afiliación. Si ya existe una fila activa con la misma llave el índice
// parcial descarta la inserción sin abortar la transacción y se devuelve domain.ErrDuplicate.
func (r *AffiliationRepo) Create(ctx context.Context, a *entity.MonthlyAffiliation) error {
	query := `
		INSERT INTO monthly_affiliations (
			client_id, month, year, value, eps_id, arl_id, ccf_id, pension_fund_id, risk, observation,
			office_id, user_id, company_id, paid_status, date_paid_received, gov_record_completed_at,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (client_id, month, year, office_id, user_id) WHERE is_active DO NOTHING
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.ClientID, a.Month, a.Year, a.Value, a.EpsID, a.ArlID, a.CcfID, a.PensionFundID, a.Risk, a.Observation,
		a.OfficeID, a.UserID, a.CompanyID, string(a.PaidStatus), a.DatePaidReceived, a.GovRecordCompletedAt,
		a.IsActive, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.WithDetail(domain.ErrInvalidInput, "referencia inexistente (oficina, cliente o catálogo)")
		}
		return fmt.Errorf("insert monthly affiliation: %w", err)
	}
	return nil
}

// GetByID obtiene una afiliación (activa o no); nil si no existe.
func (r *AffiliationRepo) GetByID(ctx context.Context, id int64) (*entity.MonthlyAffiliation, error) {
	var (
		a      entity.MonthlyAffiliation
		status string
	)
	err := r.q.QueryRow(ctx, `SELECT `+affiliationColumns+` FROM monthly_affiliations WHERE id = $1`, id).Scan(
		&a.ID, &a.ClientID, &a.Month, &a.Year, &a.Value, &a.EpsID, &a.ArlID, &a.CcfID, &a.PensionFundID,
		&a.Risk, &a.Observation, &a.OfficeID, &a.UserID, &a.CompanyID, &status, &a.DatePaidReceived,
		&a.GovRecordCompletedAt, &a.IsActive, &a.DeletedAt, &a.DeletedByUserID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get monthly affiliation: %w", err)
	}
	a.PaidStatus = entity.PaymentStatus(status)
	return &a, nil
}

// ExistsActive indica si hay una fila activa para la llave.
func (r *AffiliationRepo) ExistsActive(ctx context.Context, key entity.AffiliationKey) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM monthly_affiliations
			WHERE client_id = $1 AND month = $2 AND year = $3 AND office_id = $4 AND user_id = $5 AND is_active
		)`, key.ClientID, key.Month, key.Year, key.OfficeID, key.UserID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists active affiliation: %w", err)
	}
	return exists, nil
}

// Update reescribe los campos editables de una fila activa.
func (r *AffiliationRepo) Update(ctx context.Context, a *entity.MonthlyAffiliation) error {
	query := `
		UPDATE monthly_affiliations SET
			value = $2, eps_id = $3, arl_id = $4, ccf_id = $5, pension_fund_id = $6, risk = $7,
			observation = $8, company_id = $9, paid_status = $10, date_paid_received = $11,
			gov_record_completed_at = $12, updated_at = $13
		WHERE id = $1 AND is_active`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.Value, a.EpsID, a.ArlID, a.CcfID, a.PensionFundID, a.Risk,
		a.Observation, a.CompanyID, string(a.PaidStatus), a.DatePaidReceived,
		a.GovRecordCompletedAt, a.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.WithDetail(domain.ErrInvalidInput, "referencia de catálogo inexistente")
		}
		return fmt.Errorf("update monthly affiliation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus aplica estado y fechas sobre una fila activa.
func (r *AffiliationRepo) UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus, paidAt, govRecordAt *time.Time, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE monthly_affiliations
		SET paid_status = $2, date_paid_received = $3, gov_record_completed_at = $4, updated_at = $5
		WHERE id = $1 AND is_active`, id, string(status), paidAt, govRecordAt, updatedAt)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete desactiva una fila activa registrando quién y cuándo.
func (r *AffiliationRepo) SoftDelete(ctx context.Context, id, deletedBy int64, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE monthly_affiliations
		SET is_active = FALSE, deleted_at = $2, deleted_by_user_id = $3, updated_at = $2
		WHERE id = $1 AND is_active`, id, at, deletedBy)
	if err != nil {
		return fmt.Errorf("soft delete monthly affiliation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByPeriod cuenta filas activas e inactivas de la oficina en el período.
func (r *AffiliationRepo) CountByPeriod(ctx context.Context, officeID int64, month, year int) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM monthly_affiliations WHERE office_id = $1 AND month = $2 AND year = $3`,
		officeID, month, year).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count affiliations by period: %w", err)
	}
	return n, nil
}

// HasActiveInPeriod indica si la oficina tiene filas activas en el período.
func (r *AffiliationRepo) HasActiveInPeriod(ctx context.Context, officeID int64, month, year int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM monthly_affiliations WHERE office_id = $1 AND month = $2 AND year = $3 AND is_active
		)`, officeID, month, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has active in period: %w", err)
	}
	return exists, nil
}

// ListActiveByPeriod filas activas de la oficina en el período, por id.
func (r *AffiliationRepo) ListActiveByPeriod(ctx context.Context, officeID int64, month, year int) ([]*entity.MonthlyAffiliation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+affiliationColumns+` FROM monthly_affiliations
		WHERE office_id = $1 AND month = $2 AND year = $3 AND is_active
		ORDER BY id`, officeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("list active affiliations: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlyAffiliation
	for rows.Next() {
		var (
			a      entity.MonthlyAffiliation
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.ClientID, &a.Month, &a.Year, &a.Value, &a.EpsID, &a.ArlID, &a.CcfID, &a.PensionFundID,
			&a.Risk, &a.Observation, &a.OfficeID, &a.UserID, &a.CompanyID, &status, &a.DatePaidReceived,
			&a.GovRecordCompletedAt, &a.IsActive, &a.DeletedAt, &a.DeletedByUserID, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan monthly affiliation: %w", err)
		}
		a.PaidStatus = entity.PaymentStatus(status)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListDetails filas activas del período con nombres resueltos, por nombre de cliente.
func (r *AffiliationRepo) ListDetails(ctx context.Context, f repository.AffiliationFilter) ([]repository.AffiliationDetail, error) {
	rows, err := r.q.Query(ctx, detailSelect+detailFrom+`
		WHERE ma.office_id = $1 AND ma.month = $2 AND ma.year = $3 AND ma.is_active
		ORDER BY c.full_name, ma.id`, f.OfficeID, f.Month, f.Year)
	if err != nil {
		return nil, fmt.Errorf("list affiliation details: %w", err)
	}
	defer rows.Close()
	var list []repository.AffiliationDetail
	for rows.Next() {
		var d repository.AffiliationDetail
		if err := scanDetail(rows, &d); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListInactive histórico de filas desactivadas del usuario en la oficina, con su retiro si existe.
func (r *AffiliationRepo) ListInactive(ctx context.Context, f repository.InactiveFilter) ([]repository.InactiveAffiliationDetail, error) {
	rows, err := r.q.Query(ctx, detailSelect+`,
		ma.deleted_at, ma.deleted_by_user_id,
		u.id, u.reason, u.cost, u.observation, u.unsubscription_date`+detailFrom+`
		LEFT JOIN clients_unsubscriptions u ON u.affiliation_id = ma.id
		WHERE ma.office_id = $1 AND ma.user_id = $2 AND NOT ma.is_active
		  AND ($3::int IS NULL OR ma.month = $3)
		  AND ($4::int IS NULL OR ma.year = $4)
		ORDER BY ma.deleted_at DESC NULLS LAST, ma.id DESC`, f.OfficeID, f.UserID, f.Month, f.Year)
	if err != nil {
		return nil, fmt.Errorf("list inactive affiliations: %w", err)
	}
	defer rows.Close()
	var list []repository.InactiveAffiliationDetail
	for rows.Next() {
		var d repository.InactiveAffiliationDetail
		if err := scanDetail(rows, &d.AffiliationDetail,
			&d.DeletedAt, &d.DeletedByUserID,
			&d.UnsubscriptionID, &d.UnsubscriptionReason, &d.UnsubscriptionCost,
			&d.UnsubscriptionObservation, &d.UnsubscriptionDate,
		); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDetail(row pgx.Row, d *repository.AffiliationDetail, extra ...any) error {
	var status string
	dest := []any{
		&d.AffiliationID, &d.ClientID, &d.FullName, &d.Identification,
		&d.CompanyID, &d.CompanyName, &d.Phones,
		&d.Month, &d.Year, &d.Value,
		&d.EpsID, &d.EpsName, &d.ArlID, &d.ArlName, &d.CcfID, &d.CcfName, &d.PensionFundID, &d.PensionFundName,
		&d.Risk, &d.Observation, &status, &d.DatePaidReceived, &d.GovRecordCompletedAt,
		&d.OfficeID, &d.UserID, &d.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return fmt.Errorf("scan affiliation detail: %w", err)
	}
	d.PaidStatus = entity.PaymentStatus(status)
	return nil
}
