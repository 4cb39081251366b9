package config

import "fmt"

// DSN builds the connection string for the configured driver. SQLite uses
// DBPath directly.
func (c Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.portOr("5432"))
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.portOr("3306"), c.DBName)
	case DriverMSSQL:
		return fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			c.DBUser, c.DBPassword, c.DBHost, c.portOr("1433"), c.DBName)
	default:
		return c.DBPath
	}
}

func (c Config) portOr(def string) string {
	if c.DBPort == "" {
		return def
	}
	return c.DBPort
}
