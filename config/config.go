package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parser domain
	Parser ParserConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig holds the default user settings applied to parse
// requests that do not override them, plus project paths seeded into
// the store at startup.
type ParserConfig struct {
	Timezone     string
	DateFormat   string
	StartOfWeek  int
	SeedProjects []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.DateFormat = viper.GetString("parser.date_format")
	cfg.Parser.StartOfWeek = viper.GetInt("parser.start_of_week")

	// Split seed projects since viper might not parse an array
	// seamlessly from env.
	var seeds []string
	if raw := viper.GetString("parser.seed_projects"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				seeds = append(seeds, p)
			}
		}
	} else {
		seeds = viper.GetStringSlice("parser.seed_projects")
	}
	cfg.Parser.SeedProjects = seeds

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Parser.DateFormat {
	case "MDY", "DMY", "YMD":
	default:
		return fmt.Errorf("invalid parser.date_format %q (must be MDY, DMY or YMD)", cfg.Parser.DateFormat)
	}
	if cfg.Parser.StartOfWeek != 0 && cfg.Parser.StartOfWeek != 1 {
		return fmt.Errorf("invalid parser.start_of_week %d (must be 0 or 1)", cfg.Parser.StartOfWeek)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Parser defaults
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.date_format", "MDY")
	viper.SetDefault("parser.start_of_week", 0)
}
