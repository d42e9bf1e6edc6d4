// Package player содержит компоненты для управления воспроизведением треков
package player

import (
	"context"
	"fmt"

	"github.com/hazadus/go-comp/internal/config"
)

// Controller - внешний плеер, которым управляет навигатор
type Controller interface {
	// Play воспроизводит uri и блокируется до конца воспроизведения.
	// Ошибка означает, что трек не удалось проиграть.
	Play(ctx context.Context, uri string, video bool) error
	// Stop прерывает текущее воспроизведение; Play при этом возвращает nil
	Stop() error
	// QuitAndPersist завершает воспроизведение, сохраняя позицию, если плеер это умеет
	QuitAndPersist() error
	// IsPlaying сообщает, идет ли воспроизведение
	IsPlaying() bool
	// Close освобождает ресурсы плеера
	Close() error
}

// New создает плеер, выбранный в конфигурации
func New(cfg *config.Config) (Controller, error) {
	switch cfg.Player {
	case config.PlayerMPV:
		return NewMPV(cfg.MPVPath, cfg.YtdlFormat), nil
	case config.PlayerNative:
		return NewNative(), nil
	default:
		return nil, fmt.Errorf("неизвестный плеер: %q", cfg.Player)
	}
}
