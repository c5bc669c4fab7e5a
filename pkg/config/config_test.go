package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Conteo-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "conteo-fisico", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 100, cfg.Sync.BatchSize)
	assert.Equal(t, "https://randomuser.me/api/", cfg.Sync.ProviderURL)
}

func TestLoad_EnteroDesdeEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SYNC_BATCH_SIZE", "25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.Sync.BatchSize)
}

// Un valor no numérico en el env no debe degradar a cero: cae al default.
func TestLoad_EnteroNoNumericoCaeAlDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "conteo",
		Password: "p@ss:w/ord",
		DBName:   "conteo_fisico",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Ford", "el password debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

// DATABASE_URL completo tiene prioridad sobre los campos sueltos.
func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/otra?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, "postgresql://u:p@db:5432/otra?sslmode=require", db.ConnectionString())
}
