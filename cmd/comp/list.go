package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-comp/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks from the playlist",
		Long:  `Display the tracks of the playlist given with -j.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.listTracks(cmd)
		},
	}
}

func (app *Application) listTracks(cmd *cobra.Command) error {
	tracks, err := app.loadPlaylist()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📚 Найдено треков: %d\n\n", len(tracks))

	// Выводим заголовок таблицы
	fmt.Fprintf(out, "%-4s %-40s %s\n", "#", "Название", "Адрес")
	fmt.Fprintln(out, strings.Repeat("-", 100))

	for i, track := range tracks {
		title := utils.AlignLeft(utils.TruncateString(track.Title, 38), 40)
		fmt.Fprintf(out, "%-4d %s %s\n", i+1, title, track.URI)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "💡 Используйте 'comp play [N] -j FILE' для воспроизведения трека")
	return nil
}
