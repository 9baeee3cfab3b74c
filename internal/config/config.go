package config

type Config struct {
	API        APIConfig `mapstructure:"api"`
	ConfigPath string    `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{BaseURL: "http://localhost:8080/api"},
	}
}
