package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr        string `mapstructure:"addr"`
		FrontendURL string `mapstructure:"frontend_url"`
	} `mapstructure:"server"`

	OpenRouter struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"openrouter"`

	Google struct {
		ClientID     string `mapstructure:"client_id"`
		ClientSecret string `mapstructure:"client_secret"`
		RedirectURL  string `mapstructure:"redirect_url"`
		PubSubTopic  string `mapstructure:"pubsub_topic"`
	} `mapstructure:"google"`

	Microsoft struct {
		ClientID     string `mapstructure:"client_id"`
		ClientSecret string `mapstructure:"client_secret"`
		RedirectURL  string `mapstructure:"redirect_url"`
		Tenant       string `mapstructure:"tenant"`
	} `mapstructure:"microsoft"`

	JWT struct {
		Secret string        `mapstructure:"secret"`
		TTL    time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
}

func (c *Config) Validate() error {
	var checks = []struct {
		condition bool
		message   string
	}{
		{c.Server.Addr == "", "server addr is required"},
		{c.OpenRouter.APIKey == "", "openrouter api_key is required"},
		{c.Google.ClientID == "", "google client_id is required"},
		{c.Google.ClientSecret == "", "google client_secret is required"},
		{c.Microsoft.ClientID == "", "microsoft client_id is required"},
		{c.Microsoft.ClientSecret == "", "microsoft client_secret is required"},
		{c.JWT.Secret == "", "jwt secret is required"},
		{c.JWT.TTL < time.Minute, "jwt ttl must be at least 1 minute"},
	}

	for _, check := range checks {
		if check.condition {
			return fmt.Errorf(check.message)
		}
	}

	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.frontend_url", "http://localhost:3000")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.model", "deepseek/deepseek-chat")
	viper.SetDefault("microsoft.tenant", "common")
	viper.SetDefault("jwt.ttl", 24*time.Hour)

	viper.SetEnvPrefix("AGENT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
