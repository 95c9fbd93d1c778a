package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/awin-report-api/internal/domain"
)

// Nome do secret file no Render que guarda o token da Awin
const awinAccessTokenSecret = "awin_access_token"

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Awin         Awin         `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	ReportExport ReportExport `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Awin struct {
	URL            string            `mapstructure:"awin_url"`
	AccessToken    string            `mapstructure:"awin_access_token"`
	MerchantList   []string          `mapstructure:"awin_merchants"`
	RequestTimeout time.Duration     `mapstructure:"awin_request_timeout"`
	Merchants      []domain.Merchant `mapstructure:"-"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type Report struct {
	MaxConcurrentFetches int    `mapstructure:"report_max_concurrent_fetches"`
	OutputDir            string `mapstructure:"report_output_dir"`
}

type ReportExport struct {
	CronSchedule string `mapstructure:"report_export_cron"`
	LookbackDays int    `mapstructure:"report_export_lookback_days"`
	Selection    string `mapstructure:"report_export_selection"`
	Enabled      bool   `mapstructure:"report_export_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("AWIN_URL", "https://api.awin.com")
	viper.SetDefault("AWIN_ACCESS_TOKEN", "")
	viper.SetDefault("AWIN_MERCHANTS", "") // Formato: "Loja A:12345,Loja B:67890"
	viper.SetDefault("AWIN_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("REPORT_MAX_CONCURRENT_FETCHES", 1) // 1 = sequencial
	viper.SetDefault("REPORT_OUTPUT_DIR", "reports")

	viper.SetDefault("REPORT_EXPORT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("REPORT_EXPORT_LOOKBACK_DAYS", 7)
	viper.SetDefault("REPORT_EXPORT_SELECTION", domain.AllMerchants)
	viper.SetDefault("REPORT_EXPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Awin.URL = strings.TrimRight(config.Awin.URL, "/")

	config.Awin.Merchants, err = ParseMerchants(config.Awin.MerchantList)
	if err != nil {
		return nil, err
	}

	if config.Report.MaxConcurrentFetches < 1 {
		config.Report.MaxConcurrentFetches = 1
	}

	if err := ResolveAccessToken(config, NewRenderClient(config)); err != nil {
		return nil, err
	}

	return config, nil
}

// ParseMerchants converte a lista "Label:ID" em merchants, mantendo a ordem configurada
func ParseMerchants(entries []string) ([]domain.Merchant, error) {
	merchants := make([]domain.Merchant, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		idx := strings.LastIndex(entry, ":")
		if idx <= 0 || idx == len(entry)-1 {
			return nil, fmt.Errorf("config: merchant inválido %q, esperado formato Label:ID", entry)
		}

		label := strings.TrimSpace(entry[:idx])
		id := strings.TrimSpace(entry[idx+1:])

		if label == domain.AllMerchants {
			return nil, fmt.Errorf("config: %q é reservado e não pode ser usado como merchant", domain.AllMerchants)
		}
		if seen[label] {
			return nil, fmt.Errorf("config: merchant duplicado %q", label)
		}
		seen[label] = true

		merchants = append(merchants, domain.Merchant{Label: label, ID: id})
	}

	return merchants, nil
}

// ResolveAccessToken busca o token da Awin no Render quando ele não vem do ambiente
func ResolveAccessToken(config *Config, storage SecretStorage) error {
	if config.Awin.AccessToken != "" || config.Render.ServiceID == "" {
		return nil
	}

	secrets, err := storage.ListSecrets(config.Render.ServiceID)
	if err != nil {
		logrus.Error("Erro ao obter secrets do Render:", err)
		return err
	}

	if token, ok := secrets[awinAccessTokenSecret]; ok {
		config.Awin.AccessToken = strings.TrimSpace(token)
	} else {
		logrus.WithField("secret", awinAccessTokenSecret).Warn("Secret do token da Awin não encontrado no Render")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
