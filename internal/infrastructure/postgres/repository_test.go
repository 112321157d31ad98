package postgres

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier que registra el SQL enviado y devuelve una fila preparada
// ──────────────────────────────────────────────────────────────────────────────

var errQuery = errors.New("consulta rechazada")

type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

type recordingQuerier struct {
	row  stubRow
	sql  string
	args []any
}

func (q *recordingQuerier) record(sql string, args []any) {
	q.sql = strings.Join(strings.Fields(sql), " ")
	q.args = args
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.record(sql, args)
	return pgconn.CommandTag{}, errQuery
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.record(sql, args)
	return nil, errQuery
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.record(sql, args)
	return q.row
}

func nuevaAfiliacion() *entity.MonthlyAffiliation {
	return &entity.MonthlyAffiliation{
		ClientID: 7, Month: 6, Year: 2024, Value: decimal.NewFromInt(110000),
		OfficeID: 1, UserID: 2, PaidStatus: entity.PaymentPending, IsActive: true,
	}
}

// ─── AffiliationRepo.Create ──────────────────────────────────────────────────

func TestAffiliationCreate_IndiceParcialDescartaDuplicado(t *testing.T) {
	q := &recordingQuerier{row: stubRow{err: pgx.ErrNoRows}}

	err := NewAffiliationRepository(q).Create(context.Background(), nuevaAfiliacion())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, q.sql, "ON CONFLICT (client_id, month, year, office_id, user_id) WHERE is_active DO NOTHING RETURNING id")
	require.Len(t, q.args, 19)
	assert.Equal(t, "Pendiente", q.args[13], "paid se guarda en paid_status como texto")
}

func TestAffiliationCreate_ErroresDeRestriccion(t *testing.T) {
	ctx := context.Background()

	q := &recordingQuerier{row: stubRow{err: &pgconn.PgError{Code: "23505"}}}
	assert.ErrorIs(t, NewAffiliationRepository(q).Create(ctx, nuevaAfiliacion()), domain.ErrDuplicate)

	q = &recordingQuerier{row: stubRow{err: &pgconn.PgError{Code: "23503"}}}
	assert.ErrorIs(t, NewAffiliationRepository(q).Create(ctx, nuevaAfiliacion()), domain.ErrInvalidInput)

	q = &recordingQuerier{row: stubRow{err: errQuery}}
	err := NewAffiliationRepository(q).Create(ctx, nuevaAfiliacion())
	assert.ErrorIs(t, err, errQuery)
	assert.False(t, errors.Is(err, domain.ErrDuplicate))
}

func TestAffiliationCreate_AsignaID(t *testing.T) {
	q := &recordingQuerier{row: stubRow{vals: []any{int64(42)}}}
	a := nuevaAfiliacion()

	require.NoError(t, NewAffiliationRepository(q).Create(context.Background(), a))
	assert.Equal(t, int64(42), a.ID)
}

// ─── ReportRepo ──────────────────────────────────────────────────────────────

func TestPaidTotal_SoloActivasPagadas(t *testing.T) {
	q := &recordingQuerier{row: stubRow{vals: []any{decimal.NewFromInt(250000)}}}

	total, err := NewReportRepository(q).PaidTotal(context.Background(), 1, 2, 6, 2024)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250000).Equal(total))
	assert.Contains(t, q.sql, "COALESCE(SUM(value), 0)")
	assert.Contains(t, q.sql, "AND is_active AND paid_status = $5")
	assert.Equal(t, []any{int64(1), int64(2), 6, 2024, "Pagado"}, q.args)
}

func TestUserPerformance_AgregadoFiltrado(t *testing.T) {
	q := &recordingQuerier{}
	officeID := int64(3)

	_, err := NewReportRepository(q).UserPerformance(context.Background(), 6, 2024, &officeID)
	assert.ErrorIs(t, err, errQuery)
	assert.Contains(t, q.sql, "COALESCE(SUM(ma.value) FILTER (WHERE ma.paid_status = $4), 0) AS paid")
	assert.Contains(t, q.sql, "ma.is_active AND ($3::bigint IS NULL OR ma.office_id = $3)")
	assert.Contains(t, q.sql, "GROUP BY ma.user_id, u.username ORDER BY paid DESC, ma.user_id")
	require.Len(t, q.args, 4)
	assert.Equal(t, &officeID, q.args[2])
	assert.Equal(t, "Pagado", q.args[3])
}

func TestMonthlyIncome_OrdenCronologico(t *testing.T) {
	q := &recordingQuerier{}

	_, err := NewReportRepository(q).MonthlyIncome(context.Background(), 2023, 2024, nil)
	assert.ErrorIs(t, err, errQuery)
	assert.Contains(t, q.sql, "WHERE year BETWEEN $1 AND $2 AND is_active AND paid_status = $4")
	assert.Contains(t, q.sql, "GROUP BY year, month ORDER BY year, month")
	require.Len(t, q.args, 4)
	assert.Nil(t, q.args[2])
}
