// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString обрезает строку до указанной ширины в ячейках терминала, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return Clip(s, maxLen)
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// Clip обрезает строку до ширины width без добавления многоточия
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// AlignRight выравнивает строку по правому краю поля шириной width.
// Слишком длинная строка обрезается справа.
func AlignRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillLeft(Clip(s, width), width)
}

// AlignLeft дополняет строку пробелами справа до ширины width
func AlignLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Clip(s, width), width)
}

// Width возвращает ширину строки в ячейках терминала
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// ExpandHome раскрывает тильду в начале пути
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path, err
	}
	return strings.Replace(path, "~", home, 1), nil
}
