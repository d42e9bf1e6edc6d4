package playlist

import (
	"math/rand"
	"strings"
)

// Mode определяет, что воспроизводится после завершения трека
type Mode string

// Режимы воспроизведения
const (
	ModeNormal     Mode = "normal"     // только выбранный трек
	ModeRepeat     Mode = "repeat"     // повтор того же трека
	ModeContinuous Mode = "continuous" // следующий трек в области
	ModeRandom     Mode = "random"     // случайный трек в области
)

var modeOrder = []Mode{ModeNormal, ModeRepeat, ModeContinuous, ModeRandom}

// ParseMode разбирает название режима; неизвестные значения дают ModeNormal
func ParseMode(s string) Mode {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range modeOrder {
		if m == known {
			return m
		}
	}
	return ModeNormal
}

// Cycle возвращает следующий режим по кругу
func (m Mode) Cycle() Mode {
	for i, known := range modeOrder {
		if m == known {
			return modeOrder[(i+1)%len(modeOrder)]
		}
	}
	return ModeNormal
}

// Next выбирает индекс трека, который нужно воспроизвести после current.
// При selectedOnly в область попадают только отмеченные треки.
// Второе значение false означает, что воспроизведение нужно остановить.
func Next(tracks []Track, current int, mode Mode, selectedOnly bool, rnd *rand.Rand) (int, bool) {
	inScope := func(i int) bool {
		return !selectedOnly || tracks[i].Selected
	}

	switch mode {
	case ModeRepeat:
		if current >= 0 && current < len(tracks) {
			return current, true
		}
	case ModeContinuous:
		for i := current + 1; i < len(tracks); i++ {
			if inScope(i) {
				return i, true
			}
		}
	case ModeRandom:
		var scope []int
		for i := range tracks {
			if inScope(i) {
				scope = append(scope, i)
			}
		}
		if len(scope) > 0 {
			return scope[rnd.Intn(len(scope))], true
		}
	}
	return -1, false
}
