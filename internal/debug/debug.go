package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/lfind/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// Component names used as the "component" log field
const (
	ComponentDiscovery = "discovery"
	ComponentFilter    = "filter"
	ComponentOutput    = "output"
	ComponentPipeline  = "pipeline"
	ComponentListing   = "listing"
	ComponentConfig    = "config"
)

var (
	// logger is the process-wide logger; components derive entries from it
	logger = newLogger()

	// debugFile holds the open file handle if debug output goes to a file
	debugFile *os.File

	// debugMutex protects logger reconfiguration
	debugMutex sync.Mutex
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if IsDebugEnabled() {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Logger returns the process-wide logger.
func Logger() *logrus.Logger {
	return logger
}

// ForComponent returns a logger entry tagged with the component name.
func ForComponent(component string) logrus.FieldLogger {
	return logger.WithField("component", component)
}

// Configure sets the level ("trace".."panic") and format ("text" or "json").
// Empty values leave the current setting unchanged.
func Configure(level, format string) error {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "":
		// keep the current formatter
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", format)
	}
	return nil
}

// SetDebugOutput sets a custom writer for log output.
// Pass nil to discard output entirely.
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	if w == nil {
		w = io.Discard
	}
	logger.SetOutput(w)
}

// InitDebugLogFile initializes logging to a timestamped file in the temp directory.
// Returns the path to the log file. Call CloseDebugLog when done.
func InitDebugLogFile() (string, error) {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	logDir := filepath.Join(os.TempDir(), "lfind-debug-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create debug log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02T150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("debug-%s.log", timestamp))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugFile = file
	logger.SetOutput(file)
	return logPath, nil
}

// CloseDebugLog closes the debug log file if one is open and restores stderr output.
func CloseDebugLog() error {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	if debugFile != nil {
		err := debugFile.Close()
		debugFile = nil
		logger.SetOutput(os.Stderr)
		return err
	}
	return nil
}

// IsDebugEnabled returns true if debug mode is enabled by build flag or environment
func IsDebugEnabled() bool {
	if EnableDebug == "true" {
		return true
	}

	// Allow runtime override via environment variable
	return os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true"
}

// Log provides debug logging with component names
func Log(component, format string, args ...interface{}) {
	logger.WithField("component", component).Debugf(format, args...)
}

// LogSearch provides debug logging specifically for discovery and filtering
func LogSearch(format string, args ...interface{}) {
	Log(ComponentDiscovery, format, args...)
}

// LogPipeline provides debug logging specifically for pipeline stage transitions
func LogPipeline(format string, args ...interface{}) {
	Log(ComponentPipeline, format, args...)
}
