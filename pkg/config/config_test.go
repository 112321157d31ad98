package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", cfg.App.TimeZone)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5000, cfg.Import.MaxRows)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("IMPORT_MAX_ROWS", "100")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 100, cfg.Import.MaxRows)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestValidate_SinSecretNiZona(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{TimeZone: "Marte/Olympus"},
		JWT:  JWTConfig{Expiration: 60},
		HTTP: HTTPConfig{Port: 8080},
		DB:   DBConfig{MaxConns: 5},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "APP_TIMEZONE")
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "afiliaciones", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/afiliaciones?sslmode=disable", c.DSN())
}
