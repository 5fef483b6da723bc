package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmitaware/marmitaware-bff/pkg/config"
)

func TestLoad_ValoresPadrao(t *testing.T) {
	t.Setenv("APP_ENV", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "mes", cfg.Dashboard.DefaultPeriod)
	assert.Equal(t, 5, cfg.Dashboard.RecentSales)
}

func TestLoad_EnvTemPrioridade(t *testing.T) {
	t.Setenv("MARMITA_API_URL", "http://api.interna:5000/api/")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MARMITA_API_TIMEOUT_SECONDS", "3")
	t.Setenv("DASHBOARD_RECENT_SALES", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://api.interna:5000/api", cfg.API.BaseURL, "barra final deve ser removida")
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout())
	assert.Equal(t, 10, cfg.Dashboard.RecentSales)
}

func TestLoad_PortaInvalidaCaiParaPadrao(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestAppConfig_LocationInexistente(t *testing.T) {
	c := config.AppConfig{TZLocation: "Marte/Olimpo"}
	assert.Equal(t, time.Local, c.Location())
}
