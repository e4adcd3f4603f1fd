package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/krobus00/futures-order-cli/internal/constant"
	"github.com/krobus00/futures-order-cli/internal/entity"
	"github.com/spf13/viper"
)

var (
	ServiceName    = ""
	ServiceVersion = ""
)

var (
	Env *EnvConfig
)

type EnvConfig struct {
	Env      string         `mapstructure:"env"`
	Log      LogConfig      `mapstructure:"log"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
}

type LogConfig struct {
	ShowCaller bool   `mapstructure:"show_caller"`
	LogLevel   string `mapstructure:"log_level"`
	FilePath   string `mapstructure:"file_path"`
}

type ExchangeConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	APISecret   string        `mapstructure:"api_secret"`
	RecvWindow  int64         `mapstructure:"recv_window"`
	Leverage    int           `mapstructure:"leverage"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// ValidateCredentials fails fast when API credentials are missing so no
// network call is ever attempted with an unsigned request.
func (c ExchangeConfig) ValidateCredentials() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return entity.NewConfigError("BINANCE_API_KEY", "environment variable is required")
	}

	if strings.TrimSpace(c.APISecret) == "" {
		return entity.NewConfigError("BINANCE_API_SECRET", "environment variable is required")
	}

	return nil
}

// LoadConfig reads the optional config file and binds credentials from the
// environment. A missing config file is not an error; defaults apply.
func LoadConfig(configPath string) error {
	viper.Reset()

	configPath = strings.TrimSpace(configPath)
	if configPath == "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
	} else {
		ext := strings.ToLower(filepath.Ext(configPath))
		if ext == ".yml" || ext == ".yaml" {
			viper.SetConfigFile(configPath)
		} else {
			viper.SetConfigName(filepath.Base(configPath))
			viper.SetConfigType("yml")
			configDir := filepath.Dir(configPath)
			if configDir == "." || configDir == "" {
				viper.AddConfigPath(".")
			} else {
				viper.AddConfigPath(configDir)
			}
		}
	}

	viper.SetDefault("env", constant.DevelopmentEnvironment)
	viper.SetDefault("log.show_caller", false)
	viper.SetDefault("log.log_level", "info")
	viper.SetDefault("log.file_path", constant.DefaultLogFilePath)
	viper.SetDefault("exchange.base_url", constant.DefaultBaseURL)
	viper.SetDefault("exchange.api_key", "")
	viper.SetDefault("exchange.api_secret", "")
	viper.SetDefault("exchange.recv_window", constant.DefaultRecvWindow)
	viper.SetDefault("exchange.leverage", constant.DefaultLeverage)
	viper.SetDefault("exchange.http_timeout", 10*time.Second)

	_ = viper.BindEnv("exchange.api_key", "BINANCE_API_KEY")
	_ = viper.BindEnv("exchange.api_secret", "BINANCE_API_SECRET")
	_ = viper.BindEnv("exchange.base_url", "BINANCE_BASE_URL")

	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	err = viper.Unmarshal(&Env)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return nil
}
