// Package metadata извлекает названия локальных медиафайлов из тегов или имени файла
package metadata

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// unknownArtist подставляется, когда исполнителя не удалось определить
const unknownArtist = "Unknown Artist"

// Info хранит метаданные медиафайла, нужные для отображения в плейлисте
type Info struct {
	Artist string
	Title  string
}

// DisplayTitle возвращает строку для колонки Title: "Artist - Title" или только название
func (i Info) DisplayTitle() string {
	if i.Artist == "" || i.Artist == unknownArtist {
		return i.Title
	}
	return i.Artist + " - " + i.Title
}

// Extractor извлекает метаданные из медиафайлов (ID3, MP4, FLAC, OGG)
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker.
// source используется для запасного названия, если тегов нет.
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) Info {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.defaultInfo(source)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil || strings.TrimSpace(m.Title()) == "" {
		return e.defaultInfo(source)
	}

	return Info{
		Artist: strings.TrimSpace(m.Artist()),
		Title:  strings.TrimSpace(m.Title()),
	}
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) Info {
	file, err := os.Open(filePath)
	if err != nil {
		return e.defaultInfo(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// defaultInfo возвращает метаданные на основе имени файла
func (e *Extractor) defaultInfo(source string) Info {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return Info{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return Info{
		Artist: unknownArtist,
		Title:  nameWithoutExt,
	}
}
