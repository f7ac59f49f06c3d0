package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	SnapshotRetention SnapshotRetention `mapstructure:",squash"`
	Portal            Portal            `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"database_auto_migrate"`
}

// Auth guarda o segredo compartilhado com o servidor de autenticação externo,
// usado apenas para verificar os tokens recebidos.
type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type SnapshotRetention struct {
	CronSchedule string `mapstructure:"snapshot_retention_cron"`
	Days         int    `mapstructure:"snapshot_retention_days"`
	Enabled      bool   `mapstructure:"snapshot_retention_enabled"`
}

// Portal configura o formulário de login/cadastro do terminal
type Portal struct {
	AuthBaseURL     string        `mapstructure:"portal_auth_base_url"`
	RedirectURL     string        `mapstructure:"portal_redirect_url"`
	TokenPath       string        `mapstructure:"portal_token_path"`
	RequestTimeout  time.Duration `mapstructure:"portal_request_timeout"`
	ErrorDisplayFor time.Duration `mapstructure:"portal_error_display_for"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/growth")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Limpeza de snapshots antigos
	viper.SetDefault("SNAPSHOT_RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SNAPSHOT_RETENTION_DAYS", 400)
	viper.SetDefault("SNAPSHOT_RETENTION_ENABLED", false)

	viper.SetDefault("PORTAL_AUTH_BASE_URL", "http://localhost:8080")
	viper.SetDefault("PORTAL_REDIRECT_URL", "http://localhost:3000/dashboard")
	viper.SetDefault("PORTAL_TOKEN_PATH", defaultTokenPath())
	viper.SetDefault("PORTAL_REQUEST_TIMEOUT", "15s")
	viper.SetDefault("PORTAL_ERROR_DISPLAY_FOR", "5s")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".growth-token"
	}
	return filepath.Join(dir, "growth-insights", "token")
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
