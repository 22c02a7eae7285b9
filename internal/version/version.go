package version

import (
	"fmt"
	"time"
)

// Протокол клиент-сервер. Protocol поднимается при любом несовместимом
// изменении снапшота или сообщений клиента.
const (
	Project          = "new-haven-server"
	Protocol         = 1
	SnapshotEncoding = "msgpack"
	EventEncoding    = "json"
)

// Вшиваются через -ldflags "-X new-haven-server/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Номер сборки - дни от первой сборки сервера
var epoch = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

// Build - то, что отдает /version: сборка и формат кадров на /ws
type Build struct {
	Project   string `json:"project"`
	Protocol  int    `json:"protocol"`
	Snapshots string `json:"snapshots"`
	Events    string `json:"events"`
	Number    int    `json:"build"`
	Date      string `json:"date,omitempty"`
	Commit    string `json:"commit,omitempty"`
	// Note - почему номер сборки неизвестен (локальная сборка без ldflags)
	Note string `json:"note,omitempty"`
}

// Info собирает Build. Можно вызывать в любой момент.
func Info() Build {
	b := Build{
		Project:   Project,
		Protocol:  Protocol,
		Snapshots: SnapshotEncoding,
		Events:    EventEncoding,
		Date:      BuildDate,
		Commit:    BuildCommit,
	}
	n, err := buildNumber(BuildDate)
	if err != nil {
		b.Note = err.Error()
		return b
	}
	b.Number = n
	return b
}

// Compatible - понимает ли сервер снапшот с этой версией протокола
func Compatible(protocol int) bool {
	return protocol == Protocol
}

func buildNumber(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date not set")
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}
	// Обе даты в UTC, сутки ровно 24 часа
	return int(t.Sub(epoch).Hours() / 24), nil
}

// String - строка для лога старта
func String() string {
	b := Info()
	build := "dev"
	if b.Note == "" {
		build = fmt.Sprintf("%d (%s)", b.Number, b.Date)
	}
	commit := b.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("%s build %s commit[%s] protocol v%d (%s snapshots, %s events)",
		b.Project, build, commit, b.Protocol, b.Snapshots, b.Events)
}
