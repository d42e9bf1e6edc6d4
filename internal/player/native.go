package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/hazadus/go-comp/internal/streaming"
)

// Native воспроизводит MP3 по HTTP или с диска без внешних процессов.
// Видео не поддерживается, флаг video игнорируется.
type Native struct {
	mutex         sync.Mutex
	isInitialized bool
	sampleRate    beep.SampleRate

	// Компоненты текущего воспроизведения
	streamer     beep.StreamSeekCloser
	ctrl         *beep.Ctrl
	streamReader *streaming.Reader
	stopChan     chan struct{}
}

// NewNative создает встроенный плеер
func NewNative() *Native {
	return &Native{}
}

// Play начинает воспроизведение трека и ждет его окончания
func (p *Native) Play(ctx context.Context, uri string, _ bool) error {
	p.mutex.Lock()

	// Останавливаем текущее воспроизведение, если есть
	p.stopInternal()

	streamReader, err := streaming.Open(ctx, uri, streaming.DefaultBufferSize)
	if err != nil {
		p.mutex.Unlock()
		return fmt.Errorf("ошибка создания потокового ридера: %w", err)
	}

	streamer, format, err := mp3.Decode(streamReader)
	if err != nil {
		streamReader.Close()
		p.mutex.Unlock()
		return fmt.Errorf("ошибка декодирования MP3: %w", err)
	}

	// Инициализируем speaker только один раз, остальные треки ресемплируются
	if !p.isInitialized {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/5))
		if err != nil {
			streamer.Close()
			streamReader.Close()
			p.mutex.Unlock()
			return fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		p.sampleRate = format.SampleRate
		p.isInitialized = true
	}

	var source beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		source = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	p.streamer = streamer
	p.streamReader = streamReader
	p.ctrl = &beep.Ctrl{Streamer: source}
	stop := make(chan struct{})
	p.stopChan = stop
	done := make(chan struct{})

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		close(done)
	})))
	p.mutex.Unlock()

	select {
	case <-done:
		p.mutex.Lock()
		if p.stopChan == stop {
			p.stopInternal()
		}
		p.mutex.Unlock()
		return streamer.Err()
	case <-stop:
		return nil
	case <-ctx.Done():
		p.mutex.Lock()
		if p.stopChan == stop {
			p.stopInternal()
		}
		p.mutex.Unlock()
		return nil
	}
}

// Stop останавливает воспроизведение
func (p *Native) Stop() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
	return nil
}

// QuitAndPersist останавливает воспроизведение: позиция встроенным плеером не сохраняется
func (p *Native) QuitAndPersist() error {
	return p.Stop()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (p *Native) stopInternal() {
	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	if p.streamReader != nil {
		p.streamReader.Close()
		p.streamReader = nil
	}

	if p.stopChan != nil {
		close(p.stopChan)
		p.stopChan = nil
	}
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Native) IsPlaying() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.ctrl != nil
}

// Close закрывает плеер и освобождает ресурсы
func (p *Native) Close() error {
	return p.Stop()
}
