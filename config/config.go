package config

import (
	"os"
	"strings"

	"github.com/spf13/cast"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   cast.ToString(getOrReturnDefault("APP_ENV", "development")),
			HTTPPort: cast.ToString(getOrReturnDefault("HTTP_PORT", ":8000")),
		},
		Logger: LoggerConfig{
			Level:             cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug")),
			Encoding:          cast.ToString(getOrReturnDefault("LOGGER_ENCODING", "console")),
			DisableCaller:     cast.ToBool(getOrReturnDefault("LOGGER_DISABLE_CALLER", false)),
			DisableStacktrace: cast.ToBool(getOrReturnDefault("LOGGER_DISABLE_STACKTRACE", true)),
		},
		Postgres: PostgresConfig{
			Host:            cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost")),
			Port:            cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432")),
			User:            cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres")),
			Password:        cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "postgres")),
			DBName:          cast.ToString(getOrReturnDefault("POSTGRES_DB", "app_db")),
			SSLMode:         cast.ToString(getOrReturnDefault("POSTGRES_SSLMODE", "disable")),
			MaxOpenConns:    cast.ToInt(getOrReturnDefault("POSTGRES_MAX_OPEN_CONNS", 10)),
			MaxIdleConns:    cast.ToInt(getOrReturnDefault("POSTGRES_MAX_IDLE_CONNS", 5)),
			ConnMaxLifetime: cast.ToInt(getOrReturnDefault("POSTGRES_CONN_MAX_LIFETIME", 300)),
			ConnMaxIdleTime: cast.ToInt(getOrReturnDefault("POSTGRES_CONN_MAX_IDLE_TIME", 60)),
		},
		CORS: CORSConfig{
			AllowOrigins: strings.Split(cast.ToString(getOrReturnDefault(
				"BACKEND_CORS_ORIGINS",
				"http://localhost:3000,http://localhost:5173,http://localhost:8080,capacitor://localhost,ionic://localhost",
			)), ","),
		},
	}
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
