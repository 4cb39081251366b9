package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMSSQL    = "mssql"
)

type Config struct {
	AppPort    string
	MainRoutes string

	JWTSecret     string
	JWTExpiration int

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	AllowedOrigins []string
	MaxCallsPerDay int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	NotifyTo     []string

	ImportDir string
	SeedDemo  bool

	LogLevel  string
	LogFormat string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "9000")
	v.SetDefault("MAIN_ROUTES", "/api")
	v.SetDefault("JWT_EXPIRATION", 86400)

	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_NAME", "inspection")
	v.SetDefault("DB_PATH", "data/inspection.db")

	v.SetDefault("ALLOWED_ORIGINS", "http://127.0.0.1:3000")
	v.SetDefault("MAX_CALLS_PER_DAY", 5)

	v.SetDefault("SMTP_PORT", 587)

	v.SetDefault("SEED_DEMO", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:    v.GetString("APP_PORT"),
		MainRoutes: strings.TrimRight(v.GetString("MAIN_ROUTES"), "/"),

		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTExpiration: v.GetInt("JWT_EXPIRATION"),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBPath:     v.GetString("DB_PATH"),

		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		MaxCallsPerDay: v.GetInt("MAX_CALLS_PER_DAY"),

		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		SMTPFrom:     v.GetString("SMTP_FROM"),
		NotifyTo:     splitList(v.GetString("NOTIFY_TO")),

		ImportDir: v.GetString("IMPORT_DIR"),
		SeedDemo:  v.GetBool("SEED_DEMO"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres, DriverMySQL, DriverMSSQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.MaxCallsPerDay < 1 {
		return fmt.Errorf("MAX_CALLS_PER_DAY must be positive, got %d", c.MaxCallsPerDay)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
