package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-comp/internal/config"
	"github.com/hazadus/go-comp/internal/logging"
	"github.com/hazadus/go-comp/internal/playlist"
)

// errNoPlaylist возвращается, если файл плейлиста не указан
var errNoPlaylist = errors.New("не указан файл плейлиста (-j/--json-playlist)")

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "comp",
		Short: "Terminal playlist navigator",
		Long: `comp shows a playlist in the terminal and plays the chosen tracks
through mpv (with youtube-dl support) or the built-in mp3 player.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			app.loadConfig()
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.playlistPath, "json-playlist", "j", "", "playlist file (JSON, or YAML by extension)")
	flags.StringVarP(&app.configPath, "config", "c", config.DefaultPath, "settings file (YAML or TOML)")
	flags.StringVar(&app.logFile, "log-file", "", "write logs to this file while the TUI is running")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))

	return rootCmd
}

// loadConfig загружает настройки; при ошибке остаются значения по умолчанию
func (app *Application) loadConfig() {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		app.Logger.Warn("Используются настройки по умолчанию", "path", app.configPath, "err", err)
	}
	app.Config = cfg
	app.Logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
}

// loadPlaylist загружает треки из файла, указанного флагом -j
func (app *Application) loadPlaylist() ([]playlist.Track, error) {
	if app.playlistPath == "" {
		return nil, errNoPlaylist
	}
	tracks, err := playlist.Load(app.playlistPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки плейлиста: %w", err)
	}
	app.Logger.Info("Плейлист загружен", "path", app.playlistPath, "count", len(tracks))
	return tracks, nil
}
