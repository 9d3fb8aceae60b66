// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the server needs.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// BcryptCost tunes the password hashing work factor.
	// Zero selects the library default.
	BcryptCost int `env:"BCRYPT_COST"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	Name     string `env:"DB_NAME"`

	// RunMigrations enables GORM AutoMigrate on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`
}

// RedisConfig holds the Redis connection settings.
// An empty Host means Redis is not configured and the server falls
// back to the MySQL token store.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// DSN builds the MySQL connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// Addr returns the host:port address of the Redis server.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
