package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds batch scorer settings. AlaskaRule and Workers carry no
// env-default tag: cleanenv re-applies env-default to any zero-valued field
// after YAML parsing, which would silently turn an explicit
// "alaska_rule: false" back on. Their defaults are seeded in LoadConfig
// instead.
type Config struct {
	DictPath   string `yaml:"dict_path"   env:"WCM_DICT_PATH"`
	WordsPath  string `yaml:"words_path"  env:"WCM_WORDS_PATH"`
	Workers    int    `yaml:"workers"     env:"WCM_WORKERS"`
	AlaskaRule bool   `yaml:"alaska_rule" env:"WCM_ALASKA_RULE"`
	LogLevel   string `yaml:"log_level"   env:"WCM_LOG_LEVEL"   env-default:"info"`
	LogFormat  string `yaml:"log_format"  env:"WCM_LOG_FORMAT"  env-default:"text"`
}

func defaultConfig() Config {
	return Config{
		Workers:    8,
		AlaskaRule: true,
	}
}

// LoadConfig reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("wcmbatch config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("wcmbatch config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("wcmbatch config: read env: %w", err)
	}

	return &cfg, nil
}
