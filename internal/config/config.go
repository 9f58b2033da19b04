package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string   `yaml:"env" env:"ENV" env-default:"local"`
	Server   Server   `yaml:"server"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Auth     Auth     `yaml:"auth"`
}

type Postgres struct {
	Username        string        `yaml:"username" env:"POSTGRES_USER" env-required:"true"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-required:"true"`
	Port            string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Database        string        `yaml:"database" env:"POSTGRES_DB" env-required:"true"`
	SSLMode         string        `yaml:"ssl_mode" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"50"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env-default:"1m"`
}

// DSN returns the lib/pq connection URL.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.Username, p.Password, p.Host, p.Port, p.Database, p.SSLMode,
	)
}

type Server struct {
	Host        string        `yaml:"host" env:"SERVER_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"SERVER_PORT" env-default:"5000"`
	BasePath    string        `yaml:"base_path" env-default:"/api"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Redis configures the problem catalog cache. An empty Addr disables it.
type Redis struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env-default:"10m"`
}

// Auth configures bearer token checks. An empty JWTSecret disables them.
type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	Issuer    string `yaml:"issuer" env:"AUTH_ISSUER"`
}

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	return LoadFile(configPath)
}

func LoadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load for main packages.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}
