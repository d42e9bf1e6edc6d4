package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hazadus/go-comp/internal/config"
	"github.com/hazadus/go-comp/internal/nav"
	"github.com/hazadus/go-comp/internal/player"
	"github.com/hazadus/go-comp/internal/playlist"
	"github.com/hazadus/go-comp/internal/view"
)

// quitPrompt - вопрос, который задается перед выходом
const quitPrompt = "Quit comp? [y/N]"

// Размер экрана до первого сообщения о размере окна
const (
	defaultRows = 24
	defaultCols = 80
)

// PlaybackFinishedMsg отправляется, когда плеер вернул управление.
// Seq совпадает с номером запуска; устаревшие сообщения отбрасываются.
type PlaybackFinishedMsg struct {
	Index int
	Seq   int
	Err   error
}

// Model - модель bubbletea поверх навигатора.
// Флаги треков меняются только в Update.
type Model struct {
	player player.Controller
	logger *log.Logger

	buffer    *view.Buffer
	renderer  *view.Renderer
	navigator *nav.Navigator

	keys     keyMap
	help     help.Model
	showHelp bool
	height   int
	width    int

	mode         playlist.Mode
	selectedOnly bool
	video        bool
	rnd          *rand.Rand

	prompting bool
	quitting  bool
	playing   int // индекс воспроизводимого трека или -1
	seq       int

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel создает модель над списком треков. Срез tracks используется
// навигатором напрямую.
func NewModel(tracks []playlist.Track, ctrl player.Controller, cfg *config.Config, logger *log.Logger) (*Model, error) {
	mode := playlist.ParseMode(cfg.PlayMode)
	buffer := view.NewBuffer(defaultRows, defaultCols)
	renderer := view.NewRenderer(buffer, tracks, view.Status{
		Mode:         string(mode),
		SelectedOnly: cfg.SelectedOnly,
	})

	navigator, err := nav.New(tracks, renderer)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		player:       ctrl,
		logger:       logger,
		buffer:       buffer,
		renderer:     renderer,
		navigator:    navigator,
		keys:         newKeyMap(),
		help:         help.New(),
		height:       defaultRows,
		width:        defaultCols,
		mode:         mode,
		selectedOnly: cfg.SelectedOnly,
		video:        cfg.Video,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		playing:      -1,
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PlaybackFinishedMsg:
		return m, m.finish(msg)
	}

	return m, nil
}

// View отображает экран
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	screen := m.buffer.Render(paint)
	if m.showHelp {
		screen += "\n" + m.help.View(m.keys)
	}
	return screen
}

// Close останавливает воспроизведение и освобождает плеер
func (m *Model) Close() error {
	m.cancel()
	return m.player.Close()
}

// Navigator возвращает навигатор модели
func (m *Model) Navigator() *nav.Navigator {
	return m.navigator
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.force) {
		m.logger.Info("Выход по ctrl+c")
		return m, m.exit()
	}

	if m.prompting {
		m.prompting = false
		if key.Matches(msg, m.keys.confirm) {
			m.logger.Info("Выход подтвержден")
			return m, m.exit()
		}
		m.navigator.Repaint()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.help):
		m.showHelp = !m.showHelp
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.mode):
		m.mode = m.mode.Cycle()
		m.logger.Info("Режим воспроизведения изменен", "mode", m.mode)
		m.updateStatus()
		return m, nil
	case key.Matches(msg, m.keys.scope):
		m.selectedOnly = !m.selectedOnly
		m.logger.Info("Область воспроизведения изменена", "selected_only", m.selectedOnly)
		m.updateStatus()
		return m, nil
	case key.Matches(msg, m.keys.video):
		m.video = !m.video
		m.logger.Info("Видео переключено", "video", m.video)
		return m, nil
	}

	ev, ok := m.keys.eventFor(msg)
	if !ok {
		return m, nil
	}

	switch m.navigator.Handle(ev) {
	case nav.IntentPlay:
		return m, m.play(m.navigator.Index())
	case nav.IntentQuit:
		m.requestQuit()
	}
	return m, nil
}

// play помечает трек воспроизводимым и возвращает команду, которая блокируется
// в плеере и сообщает о завершении через PlaybackFinishedMsg
func (m *Model) play(index int) tea.Cmd {
	m.seq++
	seq := m.seq
	m.playing = index
	m.navigator.MarkPlaying(index)

	uri := m.navigator.Tracks()[index].PlayURI()
	video := m.video
	ctrl := m.player
	ctx := m.ctx
	m.logger.Info("Воспроизведение начато", "index", index, "uri", uri)

	return func() tea.Msg {
		err := ctrl.Play(ctx, uri, video)
		return PlaybackFinishedMsg{Index: index, Seq: seq, Err: err}
	}
}

// finish обрабатывает завершение воспроизведения и выбирает следующий трек
func (m *Model) finish(msg PlaybackFinishedMsg) tea.Cmd {
	if msg.Seq != m.seq {
		return nil
	}
	m.playing = -1
	m.navigator.MarkFinished(msg.Index, msg.Err)

	if msg.Err != nil {
		m.logger.Error("Ошибка воспроизведения", "index", msg.Index, "err", msg.Err)
		return nil
	}
	m.logger.Info("Воспроизведение завершено", "index", msg.Index)

	if m.prompting {
		return nil
	}
	next, ok := playlist.Next(m.navigator.Tracks(), msg.Index, m.mode, m.selectedOnly, m.rnd)
	if !ok {
		return nil
	}
	return m.play(next)
}

// requestQuit останавливает плеер с сохранением позиции и задает вопрос о выходе
func (m *Model) requestQuit() {
	m.logger.Info("Запрошен выход")
	m.stopPlayback(true)
	m.prompting = true
	m.renderer.Prompt(quitPrompt)
}

// stopPlayback останавливает плеер; сообщение о завершении текущего запуска
// будет отброшено
func (m *Model) stopPlayback(persist bool) {
	var err error
	if persist {
		err = m.player.QuitAndPersist()
	} else {
		err = m.player.Stop()
	}
	if err != nil {
		m.logger.Warn("Не удалось остановить плеер", "err", err)
	}

	m.seq++
	if m.playing >= 0 {
		m.navigator.MarkFinished(m.playing, nil)
		m.playing = -1
	}
}

func (m *Model) exit() tea.Cmd {
	m.stopPlayback(false)
	m.quitting = true
	return tea.Quit
}

// resize подгоняет экран под окно; строка помощи занимает одну строку снизу
func (m *Model) resize() {
	rows := m.height
	if m.showHelp {
		rows--
	}
	m.help.Width = m.width
	m.buffer.Resize(max(rows, 1), max(m.width, 1))
	m.navigator.Handle(nav.Resize)
}

// updateStatus обновляет строку состояния и перерисовывает экран
func (m *Model) updateStatus() {
	m.renderer.SetStatus(view.Status{
		Mode:         string(m.mode),
		SelectedOnly: m.selectedOnly,
	})
	m.navigator.Repaint()
}
