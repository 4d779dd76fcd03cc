package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.Info("The %s package does not exist. Creating it.", "UI")
	c.Success("created %s", "StudentModel.java")

	assert.Equal(t, "The UI package does not exist. Creating it.\ncreated StudentModel.java\n", buf.String())
}

func TestConsoleStyledKeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, false).Error("Could not create files.")
	assert.Contains(t, buf.String(), "Could not create files.")
}

func TestRecorderMessages(t *testing.T) {
	r := &Recorder{}
	r.Info("a")
	r.Warn("b")
	r.Info("c")

	assert.Equal(t, []string{"a", "c"}, r.Messages(LevelInfo))
	assert.Equal(t, []string{"b"}, r.Messages(LevelWarn))
	assert.Empty(t, r.Messages(LevelError))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, true)
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())

	Debug("resolving", "path", "com/example")
	assert.Contains(t, buf.String(), "resolving")
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, false)
	assert.Equal(t, log.InfoLevel, Logger.GetLevel())

	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}
