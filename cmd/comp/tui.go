package main

import (
	"fmt"

	"github.com/hazadus/go-comp/internal/logging"
	"github.com/hazadus/go-comp/internal/tui"
)

func (app *Application) launchTUI() error {
	tracks, err := app.loadPlaylist()
	if err != nil {
		return err
	}

	ctrl, err := app.NewPlayer(app.Config)
	if err != nil {
		return fmt.Errorf("ошибка создания плеера: %w", err)
	}

	// Пока интерфейс занимает терминал, логи пишутся в файл или отбрасываются
	logOutput, err := logging.OpenLogFile(app.logFile)
	if err != nil {
		ctrl.Close()
		return err
	}
	defer logOutput.Close()
	app.Logger.SetOutput(logOutput)

	tuiApp, err := tui.NewApp(tracks, ctrl, app.Config, app.Logger)
	if err != nil {
		ctrl.Close()
		return err
	}
	return tuiApp.Run()
}
