package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv       string `mapstructure:"APP_ENV"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	SeedDemoData bool   `mapstructure:"SEED_DEMO_DATA"`
}

func Load() (*Config, error) {
	// .env isteğe bağlıdır; CLI düz ortam değişkenleriyle de çalışabilmeli.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SEED_DEMO_DATA", false)

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.SeedDemoData = viper.GetBool("SEED_DEMO_DATA")

	return &cfg, nil
}
