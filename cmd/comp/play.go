package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [N]",
		Short: "Play a track by its number",
		Long:  `Play track N (1-based) of the playlist without starting the TUI.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("неверный номер трека: %s", args[0])
			}
			return app.playByNumber(ctx, cmd, number)
		},
	}
}

func (app *Application) playByNumber(ctx context.Context, cmd *cobra.Command, number int) error {
	tracks, err := app.loadPlaylist()
	if err != nil {
		return err
	}

	if number < 1 || number > len(tracks) {
		return fmt.Errorf("трек с номером %d не найден (всего треков: %d)", number, len(tracks))
	}
	track := tracks[number-1]

	ctrl, err := app.NewPlayer(app.Config)
	if err != nil {
		return fmt.Errorf("ошибка создания плеера: %w", err)
	}
	defer ctrl.Close()

	uri := track.PlayURI()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🎵 Воспроизводим трек %d: %s\n", number, track.Title)
	fmt.Fprintf(out, "   Адрес: %s\n", uri)

	app.Logger.Info("Воспроизведение начато", "index", number-1, "uri", uri)
	if err := ctrl.Play(ctx, uri, app.Config.Video); err != nil {
		app.Logger.Error("Ошибка воспроизведения", "index", number-1, "err", err)
		return fmt.Errorf("ошибка воспроизведения: %w", err)
	}

	if ctx.Err() != nil {
		fmt.Fprintln(out, "\n⏹️  Воспроизведение остановлено пользователем")
		return nil
	}
	fmt.Fprintln(out, "✅ Воспроизведение завершено")
	return nil
}
