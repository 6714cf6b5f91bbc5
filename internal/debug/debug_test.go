package debug

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveAndRestoreState saves the debug package state and returns a cleanup function
func saveAndRestoreState() func() {
	originalDebug := EnableDebug
	originalOut := logger.Out
	originalLevel := logger.GetLevel()
	originalFormatter := logger.Formatter
	return func() {
		EnableDebug = originalDebug
		logger.SetOutput(originalOut)
		logger.SetLevel(originalLevel)
		logger.SetFormatter(originalFormatter)
	}
}

// TestIsDebugEnabled tests the is debug enabled.
func TestIsDebugEnabled(t *testing.T) {
	defer saveAndRestoreState()()
	t.Setenv("DEBUG", "")

	EnableDebug = "false"
	assert.False(t, IsDebugEnabled())

	EnableDebug = "true"
	assert.True(t, IsDebugEnabled())

	// Test invalid value defaults to false
	EnableDebug = "invalid"
	assert.False(t, IsDebugEnabled())

	t.Setenv("DEBUG", "1")
	assert.True(t, IsDebugEnabled())
}

// TestLog tests the log.
func TestLog(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	require.NoError(t, Configure("debug", "text"))
	Log("TEST", "Hello %s", "World")

	output := buf.String()
	assert.Contains(t, output, "component=TEST")
	assert.Contains(t, output, "Hello World")
}

// TestLog_BelowLevel tests that debug messages are dropped at the default warn level.
func TestLog_BelowLevel(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	require.NoError(t, Configure("warn", ""))
	LogSearch("hidden %d", 1)
	LogPipeline("hidden %d", 2)

	assert.Empty(t, buf.String())
}

func TestForComponent_JSONFormat(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)
	require.NoError(t, Configure("info", "json"))
	ForComponent(ComponentFilter).Warn("unreadable")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, ComponentFilter, entry["component"])
	assert.Equal(t, "unreadable", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
}

func TestConfigure_Invalid(t *testing.T) {
	defer saveAndRestoreState()()

	assert.Error(t, Configure("loud", "text"))
	assert.Error(t, Configure("info", "xml"))
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel(), "valid level applied before format error")
}

func TestSetDebugOutput_Nil(t *testing.T) {
	defer saveAndRestoreState()()

	SetDebugOutput(nil)
	require.NoError(t, Configure("debug", ""))
	Log("TEST", "goes nowhere")
	assert.NotNil(t, logger.Out)
}

func TestInitDebugLogFile(t *testing.T) {
	defer saveAndRestoreState()()

	path, err := InitDebugLogFile()
	require.NoError(t, err)
	defer os.Remove(path)

	require.NoError(t, Configure("info", "text"))
	ForComponent(ComponentOutput).Info("written to file")
	require.NoError(t, CloseDebugLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))

	// Closing twice is a no-op
	assert.NoError(t, CloseDebugLog())
}

func TestConfigure_EmptyKeepsCurrentSettings(t *testing.T) {
	defer saveAndRestoreState()()

	require.NoError(t, Configure("info", "json"))
	require.NoError(t, Configure("", ""))

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
