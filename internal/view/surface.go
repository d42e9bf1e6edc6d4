// Package view отрисовывает окно плейлиста на символьном терминале.
//
// Renderer пишет в абстрактную поверхность [Surface]: заголовок в строке 0,
// до rows-3 треков начиная со смещения прокрутки и нижнюю строку состояния.
// Полная перерисовка нужна только при прокрутке или изменении размера окна,
// перемещение подсветки внутри окна обновляет атрибуты одной-двух строк.
package view

// Style - класс оформления строки экрана
type Style int

// Классы оформления. Для каждого флага трека есть вариант с подсветкой и без.
const (
	StyleNormal Style = iota
	StyleHighlighted
	StyleError
	StyleErrorHighlighted
	StylePlaying
	StylePlayingHighlighted
	StyleSelected
	StyleSelectedHighlighted
	StyleHeader
	StyleFooter
)

// Surface - символьный экран размером rows x cols
type Surface interface {
	// Size возвращает число строк и столбцов
	Size() (rows, cols int)
	// Clear очищает экран и сбрасывает атрибуты строк
	Clear()
	// WriteAt пишет строку с позиции (row, col), обрезая по правому краю
	WriteAt(row, col int, s string)
	// SetRowStyle задает атрибут оформления всей строки
	SetRowStyle(row int, style Style)
	// MoveCursor перемещает курсор терминала
	MoveCursor(row, col int)
	// Refresh сбрасывает изменения на терминал
	Refresh()
}
