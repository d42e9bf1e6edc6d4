package nav

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/hazadus/go-comp/internal/playlist"
	"github.com/hazadus/go-comp/internal/view"
)

// newTestNavigator создает навигатор над count треками с окном в visibleRows строк
func newTestNavigator(t *testing.T, count, visibleRows int) (*Navigator, *view.Buffer, *view.Renderer) {
	t.Helper()
	tracks := make([]playlist.Track, count)
	for i := range tracks {
		tracks[i] = playlist.Track{
			Title: fmt.Sprintf("Track %02d", i),
			URI:   fmt.Sprintf("uri-%02d", i),
		}
	}

	buf := view.NewBuffer(visibleRows+3, 80)
	renderer := view.NewRenderer(buf, tracks, view.Status{Mode: "normal"})
	n, err := New(tracks, renderer)
	if err != nil {
		t.Fatalf("Ошибка создания навигатора: %v", err)
	}
	return n, buf, renderer
}

// checkInvariants проверяет инварианты состояния навигатора
func checkInvariants(t *testing.T, n *Navigator) {
	t.Helper()
	count := len(n.Tracks())
	maxOffset := max(0, count-n.VisibleRows())

	if n.ScrollOffset() < 0 || n.ScrollOffset() > maxOffset {
		t.Fatalf("Смещение %d вне [0, %d]", n.ScrollOffset(), maxOffset)
	}
	if n.CursorRow() < 1 || n.CursorRow() > min(n.VisibleRows(), count) {
		t.Fatalf("Строка курсора %d вне [1, %d]", n.CursorRow(), min(n.VisibleRows(), count))
	}

	highlighted := 0
	for i, track := range n.Tracks() {
		if track.Highlighted {
			highlighted++
			if i != n.Index() {
				t.Fatalf("Подсвечен трек %d, а курсор на треке %d", i, n.Index())
			}
		}
	}
	if highlighted != 1 {
		t.Fatalf("Ожидался ровно один подсвеченный трек, получено %d", highlighted)
	}
}

func assertState(t *testing.T, n *Navigator, offset, row int) {
	t.Helper()
	if n.ScrollOffset() != offset || n.CursorRow() != row {
		t.Fatalf("Ожидалось состояние (%d, %d), получено (%d, %d)", offset, row, n.ScrollOffset(), n.CursorRow())
	}
	checkInvariants(t, n)
}

func TestNewNavigator(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 50, 20)

	assertState(t, n, 0, 1)
	if !n.Tracks()[0].Highlighted {
		t.Error("Первый трек должен быть подсвечен")
	}
	if buf.RowStyle(1) != view.StyleHighlighted {
		t.Errorf("Строка 1 должна быть подсвечена, получено %v", buf.RowStyle(1))
	}
	if row, _ := buf.Cursor(); row != 1 {
		t.Errorf("Курсор терминала должен быть в строке 1, получено %d", row)
	}
}

func TestNewNavigatorEmpty(t *testing.T) {
	renderer := view.NewRenderer(view.NewBuffer(10, 80), nil, view.Status{})
	_, err := New(nil, renderer)
	if !errors.Is(err, ErrNoTracks) {
		t.Errorf("Ожидалась ошибка ErrNoTracks, получено: %v", err)
	}
}

func TestMoveZeroIsIdempotent(t *testing.T) {
	n, _, _ := newTestNavigator(t, 50, 20)
	n.Move(7)
	n.Move(30)
	offset, row, index := n.ScrollOffset(), n.CursorRow(), n.Index()

	n.Move(0)

	assertState(t, n, offset, row)
	if n.Index() != index {
		t.Errorf("Ожидался подсвеченный трек %d, получено %d", index, n.Index())
	}
}

func TestMoveUpFromFirstTrack(t *testing.T) {
	n, _, _ := newTestNavigator(t, 50, 20)

	row := n.Move(-1)

	if row != 1 {
		t.Errorf("Ожидалась строка 1, получено %d", row)
	}
	assertState(t, n, 0, 1)
	if !n.Tracks()[0].Highlighted {
		t.Error("Первый трек должен оставаться подсвеченным")
	}
}

func TestMoveDownFromLastTrack(t *testing.T) {
	n, _, _ := newTestNavigator(t, 50, 20)
	n.Handle(End)
	assertState(t, n, 30, 20)

	row := n.Move(1)

	if row != 20 {
		t.Errorf("Ожидалась строка 20, получено %d", row)
	}
	assertState(t, n, 30, 20)
	if !n.Tracks()[49].Highlighted {
		t.Error("Последний трек должен оставаться подсвеченным")
	}
}

func TestMoveScrollsPastBottom(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 50, 20)

	row := n.Move(25)

	if row != 20 {
		t.Errorf("Ожидалась строка 20, получено %d", row)
	}
	assertState(t, n, 6, 20)
	if n.Index() != 25 || !n.Tracks()[25].Highlighted {
		t.Errorf("Ожидался подсвеченный трек 25, получено %d", n.Index())
	}
	if buf.Line(1)[:8] != "Track 06" {
		t.Errorf("Первая строка окна должна показывать трек 6: %q", buf.Line(1))
	}
}

func TestMoveScrollsPastTop(t *testing.T) {
	n, _, _ := newTestNavigator(t, 50, 20)
	n.Move(30) // смещение 11, строка 20, трек 30
	assertState(t, n, 11, 20)

	n.Move(-25) // трек 5, выше окна
	assertState(t, n, 5, 1)
	if n.Index() != 5 {
		t.Errorf("Ожидался трек 5, получено %d", n.Index())
	}
}

func TestMoveWithinWindowUpdatesTwoRows(t *testing.T) {
	n, buf, renderer := newTestNavigator(t, 50, 20)
	repaints := renderer.FullRepaints()
	updates := renderer.RowUpdates()

	n.Move(1)

	if renderer.FullRepaints() != repaints {
		t.Error("Перемещение внутри окна не должно вызывать полную перерисовку")
	}
	if got := renderer.RowUpdates() - updates; got != 2 {
		t.Errorf("Ожидалось 2 пересчета строк, получено %d", got)
	}
	if buf.RowStyle(1) != view.StyleNormal || buf.RowStyle(2) != view.StyleHighlighted {
		t.Errorf("Неожиданное оформление строк: %v, %v", buf.RowStyle(1), buf.RowStyle(2))
	}
}

func TestPageAndJumpEvents(t *testing.T) {
	n, _, _ := newTestNavigator(t, 50, 20)

	n.Handle(PageDown)
	assertState(t, n, 1, 20)
	n.Handle(PageDown)
	assertState(t, n, 21, 20)
	n.Handle(PageDown)
	assertState(t, n, 30, 20) // прижат к последнему треку
	n.Handle(PageUp)
	assertState(t, n, 29, 1)
	n.Handle(Home)
	assertState(t, n, 0, 1)
	n.Handle(End)
	assertState(t, n, 30, 20)
	n.Handle(MoveUp)
	assertState(t, n, 30, 19)
	n.Handle(MoveDown)
	assertState(t, n, 30, 20)
}

func TestToggleSelectPersists(t *testing.T) {
	n, _, _ := newTestNavigator(t, 50, 20)
	n.Move(3)

	n.Handle(ToggleSelect)
	if !n.Tracks()[3].Selected {
		t.Fatal("Трек 3 должен быть отмечен")
	}
	if n.Index() != 4 {
		t.Errorf("После отметки курсор должен перейти на трек 4, получено %d", n.Index())
	}

	// Уходим далеко с прокруткой и возвращаемся
	n.Handle(End)
	n.Handle(Home)
	n.Move(3)

	if !n.Tracks()[3].Selected {
		t.Error("Отметка трека 3 должна сохраняться")
	}
	checkInvariants(t, n)

	// Повторное переключение снимает отметку
	n.Handle(ToggleSelect)
	if n.Tracks()[3].Selected {
		t.Error("Повторное переключение должно снимать отметку")
	}
}

func TestToggleSelectOnLastTrack(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 5, 20)
	n.Handle(End)

	n.Handle(ToggleSelect)

	if !n.Tracks()[4].Selected {
		t.Fatal("Последний трек должен быть отмечен")
	}
	assertState(t, n, 0, 5)
	if buf.RowStyle(5) != view.StyleSelectedHighlighted {
		t.Errorf("Ожидалось оформление отмеченного подсвеченного трека, получено %v", buf.RowStyle(5))
	}
}

func TestResizeKeepsHighlightedTrack(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 50, 20)
	n.Move(14)
	assertState(t, n, 0, 15)

	buf.Resize(13, 80) // окно на 10 строк
	n.Handle(Resize)

	if n.VisibleRows() != 10 {
		t.Fatalf("Ожидалось окно на 10 строк, получено %d", n.VisibleRows())
	}
	if n.Index() != 14 {
		t.Errorf("Подсвеченный трек должен остаться 14, получено %d", n.Index())
	}
	assertState(t, n, 5, 10)
}

func TestResizeGrow(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 50, 20)
	n.Handle(End)

	buf.Resize(43, 80) // окно на 40 строк
	n.Handle(Resize)

	if n.Index() != 49 {
		t.Errorf("Подсвеченный трек должен остаться 49, получено %d", n.Index())
	}
	assertState(t, n, 10, 40)

	buf.Resize(103, 80) // окно больше списка
	n.Handle(Resize)
	assertState(t, n, 0, 50)
}

func TestShortList(t *testing.T) {
	n, _, _ := newTestNavigator(t, 3, 20)

	n.Handle(PageDown)
	assertState(t, n, 0, 3)
	n.Handle(MoveDown)
	assertState(t, n, 0, 3)
	n.Handle(PageUp)
	assertState(t, n, 0, 1)
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	events := []Event{MoveDown, MoveUp, PageDown, PageUp, Home, End, ToggleSelect}
	rnd := rand.New(rand.NewSource(7))

	for _, size := range []struct{ count, rows int }{{50, 20}, {5, 20}, {20, 20}, {1, 3}, {100, 1}} {
		n, buf, _ := newTestNavigator(t, size.count, size.rows)
		for i := 0; i < 500; i++ {
			if rnd.Intn(40) == 0 {
				buf.Resize(rnd.Intn(30)+1, 80)
				n.Handle(Resize)
			} else if rnd.Intn(10) == 0 {
				n.Move(rnd.Intn(2*size.count+1) - size.count)
			} else {
				n.Handle(events[rnd.Intn(len(events))])
			}
			checkInvariants(t, n)
		}
	}
}

func TestHandleIntents(t *testing.T) {
	n, _, _ := newTestNavigator(t, 10, 5)

	if n.Handle(PlayCurrent) != IntentPlay {
		t.Error("Ожидалось намерение IntentPlay")
	}
	if n.Handle(Quit) != IntentQuit {
		t.Error("Ожидалось намерение IntentQuit")
	}
	if n.Handle(MoveDown) != IntentNone {
		t.Error("Перемещение не должно возвращать намерение")
	}
	// Намерения не меняют состояние
	assertState(t, n, 0, 2)
}

func TestMarkPlayingAndFinished(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 10, 5)

	n.MarkPlaying(2)
	if !n.Tracks()[2].Playing {
		t.Fatal("Трек 2 должен воспроизводиться")
	}
	if buf.RowStyle(3) != view.StylePlaying {
		t.Errorf("Ожидалось оформление воспроизводимого трека, получено %v", buf.RowStyle(3))
	}

	// Воспроизводиться может только один трек
	n.MarkPlaying(3)
	if n.Tracks()[2].Playing {
		t.Error("Флаг playing трека 2 должен сняться")
	}
	if buf.RowStyle(3) != view.StyleNormal {
		t.Errorf("Строка трека 2 должна перерисоваться, получено %v", buf.RowStyle(3))
	}

	n.MarkFinished(3, errors.New("mpv завершился с ошибкой"))
	if n.Tracks()[3].Playing || !n.Tracks()[3].Error {
		t.Errorf("Ожидалась ошибка без воспроизведения: %+v", n.Tracks()[3])
	}
	if buf.RowStyle(4) != view.StyleError {
		t.Errorf("Ожидалось оформление ошибки, получено %v", buf.RowStyle(4))
	}

	// Повторный запуск сбрасывает ошибку
	n.MarkPlaying(3)
	n.MarkFinished(3, nil)
	if n.Tracks()[3].Error || n.Tracks()[3].Playing {
		t.Errorf("Флаги должны быть сброшены: %+v", n.Tracks()[3])
	}

	// Трек вне окна меняет флаги без перерисовки
	n.MarkPlaying(9)
	if !n.Tracks()[9].Playing {
		t.Error("Трек 9 должен воспроизводиться")
	}
	n.MarkPlaying(42)
	checkInvariants(t, n)
}

func TestRepaintIsStable(t *testing.T) {
	n, buf, _ := newTestNavigator(t, 30, 10)
	n.Move(17)
	n.Handle(ToggleSelect)
	before := buf.String()

	n.Repaint()

	if buf.String() != before {
		t.Errorf("Перерисовка изменила экран:\n%s\n---\n%s", before, buf.String())
	}
	checkInvariants(t, n)
}

func TestEventString(t *testing.T) {
	if PlayCurrent.String() != "play-current" {
		t.Errorf("Неожиданное имя события: %s", PlayCurrent.String())
	}
	if Event(99).String() != "unknown" {
		t.Errorf("Неожиданное имя события: %s", Event(99).String())
	}
}
