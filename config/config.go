package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	JWT  JWTConfig
	Auth AuthConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type AuthConfig struct {
	BcryptCost int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("BCRYPT_COST", 10)

	// The .env file is optional; environment variables and defaults cover
	// a bare deployment.
	_ = viper.ReadInConfig()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Auth: AuthConfig{
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
	}

	return config, nil
}
