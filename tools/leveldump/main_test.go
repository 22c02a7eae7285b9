package main

import (
	"bytes"
	"encoding/json"
	"new-haven-server/pkg/levels"
	"new-haven-server/pkg/logger"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Silence()
	os.Exit(m.Run())
}

func TestDump_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump(&buf, 42, 4, 5, "json"))

	var got []levels.LevelData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].ID)
	assert.True(t, got[1].IsBossLevel)
}

func TestDump_YAMLIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, dump(&a, 7, 10, 10, "yaml"))
	require.NoError(t, dump(&b, 7, 10, 10, "yaml"))
	assert.Equal(t, a.String(), b.String())

	var got []levels.LevelData
	require.NoError(t, yaml.Unmarshal(a.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].ID)
}

func TestDump_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		format   string
	}{
		{"Reversed range", 5, 4, "json"},
		{"Out of range", 100, 101, "json"},
		{"Unknown format", 1, 1, "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, dump(&bytes.Buffer{}, 1, tt.from, tt.to, tt.format))
		})
	}
}
