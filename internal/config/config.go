package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret"`
		AccessTTL  int    `yaml:"access_ttl"`  // minutes
		RefreshTTL int    `yaml:"refresh_ttl"` // hours
	} `yaml:"jwt"`

	// Credentials for the manager account seeded on first start.
	FirstManagerUsername string `yaml:"first_manager_username"`
	FirstManagerPassword string `yaml:"first_manager_password"`
}

var AppConfig *Config

// LoadConfig fills AppConfig from DATABASE_URL-style env vars when present,
// otherwise from the YAML file at CONFIG_PATH (default config/config.yaml).
// A local .env file is honored in both modes.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.AccessTTL = 60
	cfg.JWT.RefreshTTL = 24 * 7
	cfg.FirstManagerUsername = os.Getenv("FIRST_MANAGER_USERNAME")
	cfg.FirstManagerPassword = os.Getenv("FIRST_MANAGER_PASSWORD")

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// AccessTokenTTL returns the configured access-token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	if c.JWT.AccessTTL <= 0 {
		return 60 * time.Minute
	}
	return time.Duration(c.JWT.AccessTTL) * time.Minute
}

// RefreshTokenTTL returns the configured refresh-token lifetime.
func (c *Config) RefreshTokenTTL() time.Duration {
	if c.JWT.RefreshTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.JWT.RefreshTTL) * time.Hour
}
