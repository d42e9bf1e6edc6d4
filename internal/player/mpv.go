package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// mpvRun - один запущенный процесс mpv
type mpvRun struct {
	cmd     *exec.Cmd
	stopped bool // процесс остановлен нами, а не завершился сам
}

// MPV воспроизводит треки внешним процессом mpv с поддержкой youtube-dl
type MPV struct {
	path       string
	ytdlFormat string

	mutex   sync.Mutex
	current *mpvRun
}

// NewMPV создает плеер, запускающий исполняемый файл path
func NewMPV(path, ytdlFormat string) *MPV {
	return &MPV{
		path:       path,
		ytdlFormat: ytdlFormat,
	}
}

// Args возвращает аргументы командной строки mpv для адреса uri
func (m *MPV) Args(uri string, video bool) []string {
	args := []string{
		"--no-terminal",
		"--ytdl",
		"--ytdl-format=" + m.ytdlFormat,
		"--save-position-on-quit",
		"--input-default-bindings",
		"--input-vo-keyboard",
	}
	if !video {
		args = append(args, "--no-video")
	}
	return append(args, "--", uri)
}

// Play запускает mpv и ждет его завершения. Предыдущий процесс, если он
// еще работает, останавливается.
func (m *MPV) Play(ctx context.Context, uri string, video bool) error {
	m.mutex.Lock()
	m.stopInternal(false)

	cmd := exec.CommandContext(ctx, m.path, m.Args(uri, video)...)
	if err := cmd.Start(); err != nil {
		m.mutex.Unlock()
		return fmt.Errorf("ошибка запуска mpv: %w", err)
	}
	run := &mpvRun{cmd: cmd}
	m.current = run
	m.mutex.Unlock()

	err := cmd.Wait()

	m.mutex.Lock()
	if m.current == run {
		m.current = nil
	}
	stopped := run.stopped
	m.mutex.Unlock()

	if stopped || ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка воспроизведения %s: %w", uri, err)
	}
	return nil
}

// Stop немедленно завершает процесс mpv
func (m *MPV) Stop() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.stopInternal(false)
}

// QuitAndPersist просит mpv завершиться через SIGINT; с флагом
// --save-position-on-quit mpv сохраняет позицию для следующего запуска.
func (m *MPV) QuitAndPersist() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.stopInternal(true)
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (m *MPV) stopInternal(persist bool) error {
	if m.current == nil || m.current.cmd.Process == nil {
		return nil
	}
	m.current.stopped = true

	var err error
	if persist {
		err = m.current.cmd.Process.Signal(os.Interrupt)
	} else {
		err = m.current.cmd.Process.Kill()
	}
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("ошибка остановки mpv: %w", err)
	}
	return nil
}

// IsPlaying возвращает true, если процесс mpv запущен
func (m *MPV) IsPlaying() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.current != nil
}

// Close останавливает mpv
func (m *MPV) Close() error {
	return m.Stop()
}
