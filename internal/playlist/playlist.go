// Package playlist содержит записи треков и загрузку плейлиста из файла
package playlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-comp/internal/metadata"
	"github.com/hazadus/go-comp/internal/utils"
)

// ErrEmptyPlaylist возвращается, если в плейлисте нет ни одного трека
var ErrEmptyPlaylist = errors.New("плейлист пуст")

// youtubeBase - адрес, с которым склеиваются голые идентификаторы видео YouTube
const youtubeBase = "https://youtu.be/"

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Track - запись плейлиста. Название и адрес задаются при загрузке,
// флаги состояния меняются только во время работы навигатора.
type Track struct {
	Title string `json:"title" yaml:"title"`
	URI   string `json:"url" yaml:"url"`

	Error       bool `json:"-" yaml:"-"` // воспроизведение завершилось ошибкой
	Playing     bool `json:"-" yaml:"-"` // трек сейчас воспроизводится
	Selected    bool `json:"-" yaml:"-"` // трек отмечен пользователем
	Highlighted bool `json:"-" yaml:"-"` // трек под курсором
}

// PlayURI возвращает адрес, который передается плееру
func (t Track) PlayURI() string {
	return BuildURI(t.URI)
}

// BuildURI строит воспроизводимый адрес из локатора трека.
// Адреса со схемой и существующие локальные файлы возвращаются как есть,
// голый идентификатор видео YouTube превращается в короткую ссылку.
func BuildURI(locator string) string {
	if strings.Contains(locator, "://") {
		return locator
	}
	if _, err := os.Stat(locator); err == nil {
		return locator
	}
	if videoIDPattern.MatchString(locator) {
		return youtubeBase + locator
	}
	return locator
}

// Load загружает плейлист из файла JSON (или YAML для расширений .yaml/.yml).
// Ошибка чтения или разбора фатальна для запуска: вызывающий код должен завершиться.
func Load(filePath string) ([]Track, error) {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения плейлиста: %w", err)
	}

	tracks, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	fillTitles(tracks, metadata.NewExtractor())
	return tracks, nil
}

// Parse разбирает содержимое плейлиста. ext определяет формат: ".yaml"/".yml" или JSON.
func Parse(data []byte, ext string) ([]Track, error) {
	var tracks []Track
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tracks)
	default:
		err = json.Unmarshal(data, &tracks)
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора плейлиста: %w", err)
	}

	if len(tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	for i := range tracks {
		if strings.TrimSpace(tracks[i].URI) == "" {
			return nil, fmt.Errorf("ошибка разбора плейлиста: у трека %d отсутствует url", i+1)
		}
		// Флаги состояния никогда не читаются из файла
		tracks[i].Error = false
		tracks[i].Playing = false
		tracks[i].Selected = false
		tracks[i].Highlighted = false
	}
	return tracks, nil
}

// fillTitles подставляет названия для треков без названия
func fillTitles(tracks []Track, extractor *metadata.Extractor) {
	for i := range tracks {
		if tracks[i].Title != "" {
			continue
		}
		if info, err := os.Stat(tracks[i].URI); err == nil && !info.IsDir() {
			tracks[i].Title = extractor.ExtractFromFile(tracks[i].URI).DisplayTitle()
			continue
		}
		tracks[i].Title = tracks[i].URI
	}
}
