// Package nav управляет курсором и прокруткой окна над плейлистом.
//
// Навигатор владеет смещением прокрутки и строкой курсора, переводит
// входные события в перемещения и отметки, а намерения пользователя
// (воспроизвести, выйти) возвращает вызывающему коду.
package nav

// Event - входное событие, не зависящее от конкретной терминальной библиотеки
type Event int

// Входные события
const (
	MoveDown Event = iota
	MoveUp
	PageDown
	PageUp
	Home
	End
	ToggleSelect
	PlayCurrent
	Quit
	Resize
)

var eventNames = map[Event]string{
	MoveDown:     "move-down",
	MoveUp:       "move-up",
	PageDown:     "page-down",
	PageUp:       "page-up",
	Home:         "home",
	End:          "end",
	ToggleSelect: "toggle-select",
	PlayCurrent:  "play-current",
	Quit:         "quit",
	Resize:       "resize",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// Intent - действие, которое должен выполнить внешний код после обработки события
type Intent int

// Намерения пользователя
const (
	IntentNone Intent = iota
	IntentPlay
	IntentQuit
)
