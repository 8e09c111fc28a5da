package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleWritesToFileAlways(t *testing.T) {
	var file bytes.Buffer
	h := NewHandler(&file, &slog.HandlerOptions{Level: slog.LevelInfo}, true)
	log := slog.New(h)

	log.Info("hello")
	assert.Contains(t, file.String(), "hello")
}

func TestFileReceivesAllLevelsRegardlessOfQuiet(t *testing.T) {
	var file bytes.Buffer
	h := NewHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}, true)
	log := slog.New(h)

	log.Info("quiet info")
	log.Warn("loud warning")

	assert.Contains(t, file.String(), "quiet info")
	assert.Contains(t, file.String(), "loud warning")
}

func TestDefaultReturnsUsableLogger(t *testing.T) {
	log := Default()
	assert.NotNil(t, log)
}
