// Package config holds the CLI client configuration.
package config

type Config struct {
	ServerEndpointAddr string
}

func LoadDefaults() *Config {
	return &Config{
		ServerEndpointAddr: "http://127.0.0.1:3000",
	}
}

func LoadConfig() *Config {
	config := LoadDefaults()
	parseFlags(config)
	return config
}
