package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper a partir do ambiente e, opcionalmente, de arquivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	API       APIConfig
	Dashboard DashboardConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string // trace, debug, info, warn, error
	TZLocation  string // fuso usado para normalizar datas de calendário
	SwaggerFile string
}

// HTTPConfig configuração do servidor HTTP do BFF.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig aponta para a API REST externa do MarmitaWare.
type APIConfig struct {
	BaseURL        string // ex.: http://localhost:5000/api
	TimeoutSeconds int
}

// Timeout devolve o timeout de rede das chamadas à API externa.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DashboardConfig parâmetros de apresentação do dashboard.
type DashboardConfig struct {
	DefaultPeriod string // semana | mes | ano
	RecentSales   int
}

// Load lê a configuração a partir das variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, HTTP_PORT, MARMITA_API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo .env no diretório atual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos o erro se não existir

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "marmitaware-bff"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			TZLocation:  getString(v, "TZ_LOCATION", "America/Sao_Paulo"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "MARMITA_API_URL", "http://localhost:5000/api"), "/"),
			TimeoutSeconds: getInt(v, "MARMITA_API_TIMEOUT_SECONDS", 15),
		},
		Dashboard: DashboardConfig{
			DefaultPeriod: getString(v, "DASHBOARD_DEFAULT_PERIOD", "mes"),
			RecentSales:   getInt(v, "DASHBOARD_RECENT_SALES", 5),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: MARMITA_API_URL não pode ser vazio")
	}
	if cfg.HTTP.Port <= 0 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.Dashboard.RecentSales <= 0 {
		cfg.Dashboard.RecentSales = 5
	}
	return cfg, nil
}

// Location resolve o fuso configurado; cai para time.Local se o nome não existir.
func (c AppConfig) Location() *time.Location {
	if c.TZLocation == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TZLocation)
	if err != nil {
		return time.Local
	}
	return loc
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
