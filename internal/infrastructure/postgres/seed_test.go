package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

func TestWriteCatalogSeed(t *testing.T) {
	var sb strings.Builder
	err := WriteCatalogSeed(&sb, map[entity.CatalogCategory][]string{
		entity.CatalogEPS:     {"Sura", " Nueva  EPS ", "Sura", ""},
		entity.CatalogCompany: {"D'Luca S.A.S"},
	})
	require.NoError(t, err)
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN;"))
	assert.Contains(t, out, "INSERT INTO companies (name) VALUES\n    ('D''Luca S.A.S')\nON CONFLICT (name) DO NOTHING;")
	assert.Contains(t, out, "INSERT INTO eps_list (name) VALUES\n    ('Nueva EPS'),\n    ('Sura')\nON CONFLICT (name) DO NOTHING;")
	assert.NotContains(t, out, "arl_list")
	assert.Less(t, strings.Index(out, "companies"), strings.Index(out, "eps_list"))
	assert.Contains(t, out, "COMMIT;")
}

func TestCatalogTable(t *testing.T) {
	table, ok := CatalogTable(entity.CatalogPensionFund)
	assert.True(t, ok)
	assert.Equal(t, "pension_fund_list", table)

	_, ok = CatalogTable("bancos")
	assert.False(t, ok)
}
