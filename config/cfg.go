package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	httpapi "github.com/latin-ecom/backoffice-manager/internal/api/http"
	"github.com/latin-ecom/backoffice-manager/internal/apisrv/auth"
	"github.com/latin-ecom/backoffice-manager/internal/store"
	"github.com/latin-ecom/backoffice-manager/log"
)

// Config represents the global configuration for the service.
type Config struct {
	Store  store.Config   `mapstructure:"store"`
	Logger log.Config     `mapstructure:"logger"`
	HTTP   httpapi.Config `mapstructure:"http"`
	Auth   auth.Config    `mapstructure:"auth"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars()
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/backoffice-manager")
		// config file is optional, env vars can carry everything
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	return &config, nil
}

func bindEnvVars() {
	// Store
	viper.BindEnv("store.admin_password", "STORE_ADMIN_PASSWORD")
	viper.BindEnv("store.dropshipper_password", "STORE_DROPSHIPPER_PASSWORD")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.requests_per_minute", "HTTP_REQUESTS_PER_MINUTE")

	// Auth
	viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	viper.BindEnv("auth.password_hasher_salt_size", "AUTH_PASSWORD_HASHER_SALT_SIZE")
	viper.BindEnv("auth.password_hasher_iterations", "AUTH_PASSWORD_HASHER_ITERATIONS")
	viper.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")
}

func setDefaults() {
	viper.SetDefault("http.port", "4000")
	viper.SetDefault("http.address", "")
	viper.SetDefault("http.requests_per_minute", 600)
	viper.SetDefault("auth.jwt_secret", "dev-secret")
	viper.SetDefault("auth.password_hasher_salt_size", 16)
	viper.SetDefault("auth.password_hasher_iterations", 100000)
	viper.SetDefault("auth.jwt_ttl", "12h")
}
