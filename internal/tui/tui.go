// Package tui содержит текстовый интерфейс навигатора по плейлисту
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hazadus/go-comp/internal/config"
	"github.com/hazadus/go-comp/internal/player"
	"github.com/hazadus/go-comp/internal/playlist"
)

// App представляет основное TUI приложение
type App struct {
	model *Model
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(tracks []playlist.Track, ctrl player.Controller, cfg *config.Config, logger *log.Logger) (*App, error) {
	model, err := NewModel(tracks, ctrl, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &App{model: model}, nil
}

// Run запускает TUI приложение и блокируется до выхода
func (tuiApp *App) Run() error {
	p := tea.NewProgram(tuiApp.model, tea.WithAltScreen())

	_, err := p.Run()

	// Закрываем плеер после завершения программы
	if closeErr := tuiApp.model.Close(); err == nil {
		err = closeErr
	}
	return err
}
