package view

import (
	"fmt"

	"github.com/hazadus/go-comp/internal/playlist"
	"github.com/hazadus/go-comp/internal/utils"
)

const (
	// titleMargin - ширина, оставляемая справа от названия под адрес
	titleMargin = 12
	// footerWidth - ширина блока режима и области в строке состояния
	footerWidth = 16
	// chromeRows - строки заголовка, состояния и подсказки
	chromeRows = 3
)

// Status - содержимое нижней строки состояния
type Status struct {
	Mode         string
	SelectedOnly bool
}

// scopeLabel возвращает подпись области воспроизведения
func (s Status) scopeLabel() string {
	if s.SelectedOnly {
		return "selected"
	}
	return "all"
}

// Renderer рисует окно на список треков
type Renderer struct {
	surface Surface
	tracks  []playlist.Track
	status  Status

	fullRepaints int
	rowUpdates   int
}

// NewRenderer создает отрисовщик поверх surface. Срез tracks разделяется с
// навигатором: отрисовщик только читает флаги треков.
func NewRenderer(surface Surface, tracks []playlist.Track, status Status) *Renderer {
	return &Renderer{
		surface: surface,
		tracks:  tracks,
		status:  status,
	}
}

// SetStatus меняет содержимое строки состояния; видно после следующей полной перерисовки
func (r *Renderer) SetStatus(status Status) {
	r.status = status
}

// Status возвращает текущее содержимое строки состояния
func (r *Renderer) Status() Status {
	return r.status
}

// VisibleRows возвращает число строк под треки: высота экрана минус 3, но не меньше 1
func (r *Renderer) VisibleRows() int {
	rows, _ := r.surface.Size()
	if rows-chromeRows < 1 {
		return 1
	}
	return rows - chromeRows
}

// FullRepaint очищает экран и рисует заголовок, треки начиная с offset и строку состояния
func (r *Renderer) FullRepaint(offset int) {
	rows, cols := r.surface.Size()
	r.surface.Clear()

	r.surface.WriteAt(0, max(0, cols-titleMargin), "URL")
	r.surface.WriteAt(0, 0, "Title")
	r.surface.SetRowStyle(0, StyleHeader)

	visible := r.VisibleRows()
	for i := 0; i < visible && offset+i < len(r.tracks); i++ {
		track := r.tracks[offset+i]
		r.surface.WriteAt(i+1, 0, utils.AlignRight(track.URI, cols-1))
		r.surface.WriteAt(i+1, 0, utils.Clip(track.Title, cols-titleMargin))
		r.ApplyRowAttributes(offset, i+1)
	}

	footer := fmt.Sprintf("%-7s %-8s", r.status.Mode, r.status.scopeLabel())
	r.surface.WriteAt(rows-2, max(0, cols-footerWidth), footer)
	r.surface.SetRowStyle(rows-2, StyleFooter)

	r.surface.Refresh()
	r.fullRepaints++
}

// ApplyRowAttributes пересчитывает оформление строки row для трека offset+row-1.
// Строки вне списка не трогаются.
func (r *Renderer) ApplyRowAttributes(offset, row int) {
	index := offset + row - 1
	if index < 0 || index >= len(r.tracks) {
		return
	}
	r.surface.SetRowStyle(row, StyleFor(r.tracks[index]))
	r.rowUpdates++
}

// Prompt выводит вопрос в последней строке экрана
func (r *Renderer) Prompt(text string) {
	rows, _ := r.surface.Size()
	r.surface.WriteAt(rows-1, 0, text)
	r.surface.MoveCursor(rows-1, utils.Width(text))
	r.surface.Refresh()
}

// MoveCursor ставит курсор терминала в начало строки row
func (r *Renderer) MoveCursor(row int) {
	r.surface.MoveCursor(row, 0)
}

// Refresh сбрасывает изменения на терминал
func (r *Renderer) Refresh() {
	r.surface.Refresh()
}

// FullRepaints возвращает число полных перерисовок
func (r *Renderer) FullRepaints() int {
	return r.fullRepaints
}

// RowUpdates возвращает число пересчетов оформления отдельных строк
func (r *Renderer) RowUpdates() int {
	return r.rowUpdates
}

// StyleFor выбирает оформление трека по приоритету: ошибка, воспроизведение,
// отметка, подсветка, обычное.
func StyleFor(track playlist.Track) Style {
	switch {
	case track.Error && track.Highlighted:
		return StyleErrorHighlighted
	case track.Error:
		return StyleError
	case track.Playing && track.Highlighted:
		return StylePlayingHighlighted
	case track.Playing:
		return StylePlaying
	case track.Selected && track.Highlighted:
		return StyleSelectedHighlighted
	case track.Selected:
		return StyleSelected
	case track.Highlighted:
		return StyleHighlighted
	default:
		return StyleNormal
	}
}
