// Package config конфигурация утилиты проигрывания сценариев.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirkon/errors"
	"gopkg.in/yaml.v2"
)

// Config настройки утилиты.
type Config struct {
	// LogLevel уровень логирования: debug, info, warn, error, crit.
	LogLevel string `yaml:"logLevel" toml:"logLevel"`
	// StopOnFailure прерывать работу на первом упавшем сценарии.
	StopOnFailure bool `yaml:"stopOnFailure" toml:"stopOnFailure"`
	// Dump печатать итоговое состояние списка каждого сценария.
	Dump bool `yaml:"dump" toml:"dump"`
	// HistoryDepth сколько последних шагов выводить при ошибке.
	HistoryDepth int `yaml:"historyDepth" toml:"historyDepth"`
}

// Default настройки по умолчанию.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		HistoryDepth: 5,
	}
}

// Load чтение настроек из файла. Файлы с расширением .toml разбираются как
// TOML, остальные как YAML. Переменные окружения в тексте подставляются
// до разбора.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	conf := Default()
	content := os.ExpandEnv(string(data))
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(content, conf); err != nil {
			return nil, errors.Wrap(err, "decode toml config").Str("config-path", path)
		}
	default:
		if err := yaml.Unmarshal([]byte(content), conf); err != nil {
			return nil, errors.Wrap(err, "decode yaml config").Str("config-path", path)
		}
	}

	if err := conf.validate(); err != nil {
		return nil, errors.Wrap(err, "validate config").Str("config-path", path)
	}

	return conf, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "crit":
	default:
		return errors.Newf("unsupported log level '%s'", c.LogLevel)
	}

	if c.HistoryDepth < 0 {
		return errors.New("history depth must not be negative").Int("history-depth", c.HistoryDepth)
	}

	return nil
}
