// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-comp/internal/utils"
)

// DefaultPath - путь к файлу настроек по умолчанию
const DefaultPath = "~/.config/comp/settings.yaml"

// Допустимые бэкенды воспроизведения
const (
	PlayerMPV    = "mpv"
	PlayerNative = "native"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	YtdlFormat   string `yaml:"ytdl_format" toml:"ytdl_format"`
	PlayMode     string `yaml:"play_mode" toml:"play_mode"`
	SelectedOnly bool   `yaml:"play_selected_only" toml:"play_selected_only"`
	Video        bool   `yaml:"video" toml:"video"`
	Player       string `yaml:"player" toml:"player"`
	MPVPath      string `yaml:"mpv_path" toml:"mpv_path"`
	LogLevel     string `yaml:"log_level" toml:"log_level"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		YtdlFormat:   "best",
		PlayMode:     "normal",
		SelectedOnly: false,
		Video:        true,
		Player:       PlayerMPV,
		MPVPath:      "mpv",
		LogLevel:     "info",
	}
}

// Load загружает конфигурацию из указанного файла.
//
// Отсутствующие ключи получают значения по умолчанию. Если файл не читается
// или поврежден, возвращается конфигурация по умолчанию вместе с ошибкой:
// вызывающий код решает, стоит ли о ней сообщать, но работать можно дальше.
func Load(filePath string) (*Config, error) {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, config)
	default:
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return Default(), fmt.Errorf("ошибка разбора файла конфигурации: %w", err)
	}

	config.normalize()
	return config, nil
}

// normalize заменяет пустые строковые значения значениями по умолчанию
func (c *Config) normalize() {
	defaults := Default()
	if c.YtdlFormat == "" {
		c.YtdlFormat = defaults.YtdlFormat
	}
	if c.PlayMode == "" {
		c.PlayMode = defaults.PlayMode
	}
	if c.Player == "" {
		c.Player = defaults.Player
	}
	if c.MPVPath == "" {
		c.MPVPath = defaults.MPVPath
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}
