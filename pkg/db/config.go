package db

import "github.com/spf13/viper"

type Config struct {
	ServerAddr    string `mapstructure:"SERVER_ADDR"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        int    `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	DBSSLMode     string `mapstructure:"DB_SSLMODE"`
	MigrationsDir string `mapstructure:"MIGRATIONS_DIR"`
}

// LoadConfig reads from the environment, falling back to local-dev defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "cart")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "cart")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
