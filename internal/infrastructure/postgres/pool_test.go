package postgres

import (
	"context"
	"net"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/pkg/config"
)

func TestBuildPoolConfig_LimitesYCodec(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "x", DBName: "afiliaciones", SSLMode: "disable", MaxConns: 4}

	pc, err := buildPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.NotNil(t, pc.AfterConnect)
	assert.NotEqual(t, funcPtr(dialIPv4), funcPtr(pc.ConnConfig.DialFunc), "sin ForceIPv4 se usa el dialer de pgconn")
}

func TestBuildPoolConfig_DatabaseURLeIPv4(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgresql://u:p@pg.interno:6543/app?sslmode=disable", ForceIPv4: true}

	pc, err := buildPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "pg.interno", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, funcPtr(dialIPv4), funcPtr(pc.ConnConfig.DialFunc))
}

func TestBuildPoolConfig_DSNInvalido(t *testing.T) {
	_, err := buildPoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}

func TestLookupIPv4_Literales(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), net.DefaultResolver, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = lookupIPv4(context.Background(), net.DefaultResolver, "::1")
	assert.Error(t, err)
}

func funcPtr(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
