package config

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(testViper(map[string]any{"JWT_SECRET": "secret"}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "/api", cfg.MainRoutes)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 5, cfg.MaxCallsPerDay)
	assert.Equal(t, []string{"http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.NotifyTo)
}

func TestFromViperOverrides(t *testing.T) {
	cfg, err := FromViper(testViper(map[string]any{
		"JWT_SECRET":        "secret",
		"MAIN_ROUTES":       "/api/v2/",
		"DB_DRIVER":         "Postgres",
		"MAX_CALLS_PER_DAY": 8,
		"NOTIFY_TO":         "qa@example.com, , lead@example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/api/v2", cfg.MainRoutes)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 8, cfg.MaxCallsPerDay)
	assert.Equal(t, []string{"qa@example.com", "lead@example.com"}, cfg.NotifyTo)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{"missing secret", map[string]any{}},
		{"unknown driver", map[string]any{"JWT_SECRET": "s", "DB_DRIVER": "oracle"}},
		{"zero daily limit", map[string]any{"JWT_SECRET": "s", "MAX_CALLS_PER_DAY": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromViper(testViper(tt.values))
			assert.Error(t, err)
		})
	}
}

func TestSetupCORS(t *testing.T) {
	app := fiber.New()
	SetupCORS(app, []string{"http://allowed.test"})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://allowed.test")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://allowed.test", resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://other.test")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDSN(t *testing.T) {
	base := Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "inspection", DBPath: "data/x.db"}

	tests := []struct {
		driver string
		port   string
		want   string
	}{
		{DriverPostgres, "", "host=db user=u password=p dbname=inspection port=5432 sslmode=disable"},
		{DriverMySQL, "3307", "u:p@tcp(db:3307)/inspection?charset=utf8mb4&parseTime=True&loc=Local"},
		{DriverMSSQL, "", "sqlserver://u:p@db:1433?database=inspection"},
		{DriverSQLite, "", "data/x.db"},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := base
			cfg.DBDriver = tt.driver
			cfg.DBPort = tt.port
			assert.Equal(t, tt.want, cfg.DSN())
		})
	}
}
