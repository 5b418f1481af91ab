package config

import (
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/lib/pq" // Driver de PostgreSQL
)

// Config agrupa toda la configuración del servicio, leída del entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"sales"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	PrometheusEnabled bool `env:"PROMETHEUS_ENABLED" envDefault:"false"`
}

// Load parsea la configuración desde variables de entorno.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment config: %w", err)
	}
	return cfg, nil
}

// DSN arma la cadena de conexión de PostgreSQL.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// OpenDB abre y verifica la conexión contra la base de datos.
func OpenDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return db, nil
}
