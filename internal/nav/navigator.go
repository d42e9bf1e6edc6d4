package nav

import (
	"errors"

	"github.com/hazadus/go-comp/internal/playlist"
	"github.com/hazadus/go-comp/internal/view"
)

// ErrNoTracks возвращается при создании навигатора над пустым списком
var ErrNoTracks = errors.New("нет треков для навигации")

// Navigator - автомат над парой (смещение прокрутки, строка курсора).
//
// Инварианты после каждого перехода:
//   - 0 <= offset <= max(0, len(tracks)-rows)
//   - 1 <= row <= min(rows, len(tracks))
//   - подсвечен ровно один трек, offset+row-1
type Navigator struct {
	tracks   []playlist.Track
	renderer *view.Renderer

	offset int // индекс первого видимого трека
	row    int // строка курсора внутри окна, с 1
	rows   int // число строк окна
}

// New создает навигатор в начальном состоянии: offset=0, row=1, подсвечен первый трек
func New(tracks []playlist.Track, renderer *view.Renderer) (*Navigator, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	n := &Navigator{
		tracks:   tracks,
		renderer: renderer,
		offset:   0,
		row:      1,
		rows:     renderer.VisibleRows(),
	}
	for i := range n.tracks {
		n.tracks[i].Highlighted = false
	}

	n.renderer.FullRepaint(n.offset)
	n.highlight()
	return n, nil
}

// Handle применяет событие и возвращает намерение для внешнего кода
func (n *Navigator) Handle(ev Event) Intent {
	switch ev {
	case MoveDown:
		n.Move(1)
	case MoveUp:
		n.Move(-1)
	case PageDown:
		n.Move(n.rows)
	case PageUp:
		n.Move(-n.rows)
	case Home:
		n.Move(-len(n.tracks))
	case End:
		n.Move(len(n.tracks))
	case ToggleSelect:
		n.ToggleSelect()
	case PlayCurrent:
		return IntentPlay
	case Quit:
		return IntentQuit
	case Resize:
		n.Resize()
	}
	return IntentNone
}

// Move сдвигает курсор на delta треков и возвращает новую строку курсора.
// Выход за границы списка прижимает курсор к первому или последнему треку.
// Внутри окна обновляются только старая и новая строки, прокрутка
// вызывает полную перерисовку.
func (n *Navigator) Move(delta int) int {
	n.clearHighlight()

	count := len(n.tracks)
	window := n.windowRows()
	target := n.offset + n.row + delta

	switch {
	case target < 1:
		n.offset = 0
		n.renderer.FullRepaint(n.offset)
		n.row = 1
	case target > count:
		n.offset = max(0, count-n.rows)
		n.renderer.FullRepaint(n.offset)
		n.row = count - n.offset
	default:
		row := n.row + delta
		switch {
		case row >= 1 && row <= window:
			n.row = row
		case row < 1:
			n.offset += row - 1
			n.renderer.FullRepaint(n.offset)
			n.row = 1
		default:
			n.offset += row - window
			n.renderer.FullRepaint(n.offset)
			n.row = window
		}
	}

	n.highlight()
	return n.row
}

// ToggleSelect переключает отметку текущего трека и переходит к следующему
func (n *Navigator) ToggleSelect() {
	index := n.Index()
	n.tracks[index].Selected = !n.tracks[index].Selected
	n.Move(1)
}

// Resize пересчитывает высоту окна по размеру экрана. Подсвеченный трек
// остается тем же, меняется только его строка.
func (n *Navigator) Resize() {
	index := n.Index()
	n.rows = n.renderer.VisibleRows()
	window := n.windowRows()

	if index < n.offset {
		n.offset = index
	}
	if index >= n.offset+window {
		n.offset = index - window + 1
	}
	n.offset = min(n.offset, max(0, len(n.tracks)-n.rows))
	n.row = index - n.offset + 1

	n.renderer.FullRepaint(n.offset)
	n.highlight()
}

// Repaint перерисовывает окно целиком без изменения состояния
func (n *Navigator) Repaint() {
	n.renderer.FullRepaint(n.offset)
	n.highlight()
}

// MarkPlaying помечает трек index как воспроизводимый. Флаг playing снимается
// с остальных треков, ошибка прошлой попытки сбрасывается.
func (n *Navigator) MarkPlaying(index int) {
	if index < 0 || index >= len(n.tracks) {
		return
	}
	for i := range n.tracks {
		if n.tracks[i].Playing && i != index {
			n.tracks[i].Playing = false
			n.refreshTrack(i)
		}
	}
	n.tracks[index].Playing = true
	n.tracks[index].Error = false
	n.refreshTrack(index)
}

// MarkFinished снимает флаг playing с трека index и выставляет error, если err != nil
func (n *Navigator) MarkFinished(index int, err error) {
	if index < 0 || index >= len(n.tracks) {
		return
	}
	n.tracks[index].Playing = false
	n.tracks[index].Error = err != nil
	n.refreshTrack(index)
}

// Index возвращает индекс трека под курсором
func (n *Navigator) Index() int {
	return n.offset + n.row - 1
}

// Current возвращает трек под курсором
func (n *Navigator) Current() playlist.Track {
	return n.tracks[n.Index()]
}

// Tracks возвращает список треков. Срез разделяется с навигатором.
func (n *Navigator) Tracks() []playlist.Track {
	return n.tracks
}

// ScrollOffset возвращает индекс первого видимого трека
func (n *Navigator) ScrollOffset() int {
	return n.offset
}

// CursorRow возвращает строку курсора внутри окна, с 1
func (n *Navigator) CursorRow() int {
	return n.row
}

// VisibleRows возвращает высоту окна в строках
func (n *Navigator) VisibleRows() int {
	return n.rows
}

// windowRows - число занятых строк окна: короткий список не заполняет окно целиком
func (n *Navigator) windowRows() int {
	return min(n.rows, len(n.tracks))
}

// clearHighlight снимает подсветку с текущего трека и перерисовывает его строку
func (n *Navigator) clearHighlight() {
	n.tracks[n.Index()].Highlighted = false
	n.renderer.ApplyRowAttributes(n.offset, n.row)
}

// highlight подсвечивает трек под курсором
func (n *Navigator) highlight() {
	n.tracks[n.Index()].Highlighted = true
	n.renderer.ApplyRowAttributes(n.offset, n.row)
	n.renderer.MoveCursor(n.row)
	n.renderer.Refresh()
}

// refreshTrack перерисовывает строку трека index, если он виден
func (n *Navigator) refreshTrack(index int) {
	row := index - n.offset + 1
	if row < 1 || row > n.windowRows() {
		return
	}
	n.renderer.ApplyRowAttributes(n.offset, row)
	n.renderer.Refresh()
}
