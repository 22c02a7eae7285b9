package storage

import (
	"encoding/binary"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MaxBodyLen - защита от битого заголовка
const MaxBodyLen = 1 << 20

func readProfile(r io.Reader) (*ProfileRecord, error) {
	var header ProfileFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.BodyLen > MaxBodyLen {
		return nil, fmt.Errorf("body too long: %d", header.BodyLen)
	}

	body := make([]byte, header.BodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	rec := &ProfileRecord{}
	if err := yaml.Unmarshal(body, rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	rec.SavedAt = header.SavedAt
	rec.Seed = header.Seed
	rec.LevelID = int(header.LevelID)
	return rec, nil
}
