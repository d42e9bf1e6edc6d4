// Package logging создает структурированный логгер приложения
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger создает [log.Logger] с отметками времени, пишущий в w.
// По умолчанию w - это [os.Stderr].
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: "comp"})
}

// OpenLogFile открывает файл журнала для дозаписи, создавая недостающие каталоги.
// Пустой путь означает, что журнал не нужен: возвращается io.Discard.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога журнала: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла журнала: %w", err)
	}
	return f, nil
}

// ParseLevel разбирает уровень журналирования, возвращая InfoLevel для неизвестных значений
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
