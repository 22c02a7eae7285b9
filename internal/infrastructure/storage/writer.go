package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"new-haven-server/internal/engine"

	"gopkg.in/yaml.v3"
)

const (
	MagicHeader string = `NHPF` // 4 байта
	Version1    uint32 = 1
)

// ProfileFileHeader - заголовок сохранения фиксированного размера.
// binary.Write пишет его целиком: внутри только массивы и числа.
type ProfileFileHeader struct {
	Magic   [4]byte // 4 байта
	Version uint32  // 4 байта
	SavedAt int64   // 8 байт, unix-секунды
	Seed    int64   // 8 байт
	LevelID int32   // 4 байта
	BodyLen uint32  // 4 байта
}

// ProfileRecord - то, что переживает перезапуск сервера
type ProfileRecord struct {
	SavedAt int64              `yaml:"-"`
	Seed    int64              `yaml:"-"`
	LevelID int                `yaml:"-"`
	Stats   engine.PlayerStats `yaml:"stats"`
}

func writeProfile(w io.Writer, rec *ProfileRecord) error {
	// Тело в YAML: профиль удобно читать и править руками
	body, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	header := ProfileFileHeader{
		Version: Version1,
		SavedAt: rec.SavedAt,
		Seed:    rec.Seed,
		LevelID: int32(rec.LevelID),
		BodyLen: uint32(len(body)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write body: %w", err)
	}
	return nil
}
