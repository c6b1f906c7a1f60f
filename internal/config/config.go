package config

import (
	"github.com/spf13/viper"
)

// Environment selects production behavior (error detail hidden).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

type (
	Config struct {
		HTTP
		Database
		UI
		Session
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	UI struct {
		TemplatesPath string
		StaticPath    string
	}
	Session struct {
		Secret        string // also used as the CSRF key; empty disables CSRF
		SecureCookies bool
	}
	Global struct {
		Env                      Environment
		ShutdownTimeoutInSeconds int
	}
)

// IsProduction reports whether error detail must be hidden.
func (c *Config) IsProduction() bool {
	return c.Global.Env == EnvProduction
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("templates_path", "./templates")
	v.SetDefault("static_path", "./static")
	v.SetDefault("session_secret", "")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("env", string(EnvDevelopment))
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		UI: UI{
			TemplatesPath: v.GetString("TEMPLATES_PATH"),
			StaticPath:    v.GetString("STATIC_PATH"),
		},
		Session: Session{
			Secret:        v.GetString("SESSION_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Global: Global{
			Env:                      Environment(v.GetString("ENV")),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
