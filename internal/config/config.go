package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
}

type Site struct {
	Name          string   `yaml:"name"`
	Languages     []string `yaml:"languages"`
	DefaultLocale string   `yaml:"defaultLocale"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	JwtSecret     string `yaml:"jwtSecret"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Site.DefaultLocale == "" {
		config.Site.DefaultLocale = "en"
	}
	if len(config.Site.Languages) == 0 {
		config.Site.Languages = []string{config.Site.DefaultLocale}
	}

	// The secret may come from the environment so the config file can
	// stay in version control.
	if config.Server.JwtSecret == "" {
		config.Server.JwtSecret = os.Getenv("JWT_SECRET")
	}

	return config, nil
}
