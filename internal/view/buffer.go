package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer - поверхность в памяти. Хранит текст и атрибут каждой строки,
// а bubbletea выводит ее содержимое в View.
type Buffer struct {
	rows, cols int
	lines      [][]rune
	styles     []Style
	cursorRow  int
	cursorCol  int
	refreshes  int
}

// NewBuffer создает буфер заданного размера
func NewBuffer(rows, cols int) *Buffer {
	b := &Buffer{}
	b.Resize(rows, cols)
	return b
}

// Resize меняет размер буфера и очищает его
func (b *Buffer) Resize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	b.rows, b.cols = rows, cols
	b.lines = make([][]rune, rows)
	b.styles = make([]Style, rows)
	b.Clear()
}

// Size возвращает число строк и столбцов
func (b *Buffer) Size() (int, int) {
	return b.rows, b.cols
}

// Clear заполняет буфер пробелами
func (b *Buffer) Clear() {
	for i := range b.lines {
		b.lines[i] = []rune(strings.Repeat(" ", b.cols))
		b.styles[i] = StyleNormal
	}
}

// WriteAt пишет строку начиная с ячейки (row, col).
// Широкие символы занимают две ячейки, вторая хранится как нулевая руна.
func (b *Buffer) WriteAt(row, col int, s string) {
	if row < 0 || row >= b.rows || col < 0 {
		return
	}
	line := b.lines[row]
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > b.cols {
			break
		}
		line[col] = r
		if w == 2 {
			line[col+1] = 0
		}
		col += w
	}
}

// SetRowStyle задает атрибут строки
func (b *Buffer) SetRowStyle(row int, style Style) {
	if row < 0 || row >= b.rows {
		return
	}
	b.styles[row] = style
}

// MoveCursor запоминает позицию курсора
func (b *Buffer) MoveCursor(row, col int) {
	b.cursorRow, b.cursorCol = row, col
}

// Refresh считает сбросы на терминал; сам вывод делает bubbletea
func (b *Buffer) Refresh() {
	b.refreshes++
}

// Cursor возвращает позицию курсора
func (b *Buffer) Cursor() (row, col int) {
	return b.cursorRow, b.cursorCol
}

// Line возвращает текст строки row
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	for _, r := range b.lines[row] {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// RowStyle возвращает атрибут строки row
func (b *Buffer) RowStyle(row int) Style {
	if row < 0 || row >= b.rows {
		return StyleNormal
	}
	return b.styles[row]
}

// Render собирает экран построчно, оформляя каждую строку функцией paint
func (b *Buffer) Render(paint func(style Style, line string) string) string {
	out := make([]string, b.rows)
	for i := range out {
		line := b.Line(i)
		if paint != nil {
			line = paint(b.styles[i], line)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// String возвращает текст экрана без оформления
func (b *Buffer) String() string {
	return b.Render(nil)
}
