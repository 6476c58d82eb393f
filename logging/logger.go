package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	cfg   Config
	cfgMu sync.RWMutex
)

// SetConfig installs the logging configuration loaded from grove-pick.yml.
// Loggers created afterwards pick it up; already-created loggers keep their
// settings (one TUI session never reconfigures mid-flight).
func SetConfig(c Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	cfg = c
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	cfgMu.RLock()
	logCfg := cfg
	cfgMu.RUnlock()

	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if os.Getenv("GROVE_PICK_LOG_LEVEL") != "" {
		levelStr = os.Getenv("GROVE_PICK_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("GROVE_PICK_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: logCfg.Format.DisableTimestamp,
			FullTimestamp:    true,
		})
	}

	// Configure Output Sinks
	var writers []io.Writer

	// File sink: explicit path or .grove-pick/logs/<component>-<date>.log
	var logFilePath string
	if logCfg.File.Enabled && logCfg.File.Path != "" {
		logFilePath = expandPath(logCfg.File.Path)
	} else {
		cwd, err := os.Getwd()
		if err == nil {
			dateStr := time.Now().Format("2006-01-02")
			logFilePath = filepath.Join(cwd, ".grove-pick", "logs", fmt.Sprintf("%s-%s.log", component, dateStr))
		}
	}

	if logFilePath != "" {
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			if logCfg.File.Enabled {
				logger.Warnf("Failed to create log directory %s: %v", dir, err)
			}
		} else {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				writers = append(writers, file)
			} else if logCfg.File.Enabled {
				logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
			}
		}
	}

	// Determine if we should write logs to stderr. Writing to stderr while the
	// picker TUI owns the terminal would corrupt the display, so "auto" only
	// enables it for debug runs or non-interactive use (piped, CI).
	shouldLogToStderr := false
	stderrMode := "auto"
	if logCfg.Format.StructuredToStderr != "" {
		stderrMode = logCfg.Format.StructuredToStderr
	}

	switch stderrMode {
	case "always":
		shouldLogToStderr = true
	case "never":
		shouldLogToStderr = false
	case "auto":
		isDebug := os.Getenv("GROVE_PICK_DEBUG") == "1" || logger.GetLevel() == logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		if isDebug || !isInteractive {
			shouldLogToStderr = true
		}
	}

	if shouldLogToStderr {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		logger.SetOutput(io.Discard)
	} else if len(writers) == 1 {
		logger.SetOutput(writers[0])
	} else {
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
