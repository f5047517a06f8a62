package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("production"))
	assert.NotNil(t, NewLogger("development"))
}

func TestSet_ReplacesGlobal(t *testing.T) {
	prev := Get()
	defer Set(prev)

	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))

	Info("booking reserved", zap.Int64("flight_id", 7))
	Debug("hidden")
	With(zap.String("component", "audit")).Warn("violation")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "booking reserved", entries[0].Message)
		assert.Equal(t, int64(7), entries[0].ContextMap()["flight_id"])
		assert.Equal(t, "audit", entries[1].ContextMap()["component"])
	}

	Set(nil)
	assert.NotNil(t, Get())
}
