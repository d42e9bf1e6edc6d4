package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/hazadus/go-comp/internal/config"
	"github.com/hazadus/go-comp/internal/logging"
	"github.com/hazadus/go-comp/internal/player"
)

// Application хранит состояние, общее для всех команд
type Application struct {
	Config *config.Config
	Logger *log.Logger

	// NewPlayer создает бэкенд воспроизведения по конфигурации
	NewPlayer func(cfg *config.Config) (player.Controller, error)

	configPath   string
	playlistPath string
	logFile      string
}

// NewApplication создает приложение с конфигурацией по умолчанию
func NewApplication() *Application {
	return &Application{
		Config:    config.Default(),
		Logger:    logging.NewLogger(os.Stderr),
		NewPlayer: player.New,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := NewApplication()
	rootCmd := app.createRootCommand(ctx)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
