package playlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "playlist.json", `[
		{"title": "First", "url": "dQw4w9WgXcQ"},
		{"title": "Second", "url": "https://example.com/second.mp3"}
	]`)

	tracks, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки плейлиста: %v", err)
	}

	if len(tracks) != 2 {
		t.Fatalf("Ожидалось 2 трека, получено %d", len(tracks))
	}
	if tracks[0].Title != "First" || tracks[0].URI != "dQw4w9WgXcQ" {
		t.Errorf("Неожиданный первый трек: %+v", tracks[0])
	}
	// Порядок треков сохраняется
	if tracks[1].Title != "Second" {
		t.Errorf("Ожидался второй трек Second, получено: %s", tracks[1].Title)
	}
	for i, track := range tracks {
		if track.Error || track.Playing || track.Selected || track.Highlighted {
			t.Errorf("Флаги трека %d должны быть сброшены: %+v", i, track)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "playlist.yaml", "- title: Song\n  url: https://example.com/song.mp3\n")

	tracks, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки плейлиста: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Title != "Song" {
		t.Errorf("Неожиданный результат: %+v", tracks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Ожидалась ошибка для отсутствующего файла")
	}
	if !strings.Contains(err.Error(), "ошибка чтения плейлиста") {
		t.Errorf("Неожиданный текст ошибки: %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"broken.json", `[{"title": "x"`, "ошибка разбора плейлиста"},
		{"object.json", `{"title": "x", "url": "y"}`, "ошибка разбора плейлиста"},
		{"nourl.json", `[{"title": "x"}]`, "отсутствует url"},
	}

	for _, test := range tests {
		_, err := Load(writeFile(t, test.name, test.content))
		if err == nil {
			t.Errorf("%s: ожидалась ошибка", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.errText) {
			t.Errorf("%s: неожиданный текст ошибки: %v", test.name, err)
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(writeFile(t, "empty.json", `[]`))
	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("Ожидалась ошибка ErrEmptyPlaylist, получено: %v", err)
	}
}

func TestLoadFillsMissingTitles(t *testing.T) {
	dir := t.TempDir()
	media := filepath.Join(dir, "Band - Tune.mp3")
	if err := os.WriteFile(media, []byte("not really mp3"), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}
	path := filepath.Join(dir, "playlist.json")
	content := `[{"url": "` + media + `"}, {"url": "https://example.com/a.mp3"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи файла: %v", err)
	}

	tracks, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки плейлиста: %v", err)
	}

	if tracks[0].Title != "Band - Tune" {
		t.Errorf("Ожидалось название из имени файла, получено: %s", tracks[0].Title)
	}
	if tracks[1].Title != "https://example.com/a.mp3" {
		t.Errorf("Ожидалось название из адреса, получено: %s", tracks[1].Title)
	}
}

func TestBuildURI(t *testing.T) {
	localFile := writeFile(t, "local.mp3", "x")

	tests := []struct {
		locator  string
		expected string
	}{
		{"dQw4w9WgXcQ", "https://youtu.be/dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"http://radio.example.com/stream", "http://radio.example.com/stream"},
		{localFile, localFile},
		{"not-an-id", "not-an-id"},
	}

	for _, test := range tests {
		if got := BuildURI(test.locator); got != test.expected {
			t.Errorf("BuildURI(%q) = %q; expected %q", test.locator, got, test.expected)
		}
	}

	track := Track{URI: "dQw4w9WgXcQ"}
	if track.PlayURI() != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("Неожиданный PlayURI: %s", track.PlayURI())
	}
}
