package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/momorph/pathkit/internal/config"
	"github.com/rs/zerolog"
)

var (
	// Log is the global logger instance
	Log = zerolog.Nop()

	// logFile is the file Log currently writes to
	logFile *os.File
)

// Init initializes the logger. level is one of debug, info, warn or error;
// debug forces debug level and mirrors entries to stderr.
func Init(level string, debug bool) error {
	if err := config.EnsureLogsDir(); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	if debug {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	file, err := getLogFile()
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	Close()
	logFile = file

	var writers []io.Writer
	writers = append(writers, file)

	if debug {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		writers = append(writers, consoleWriter)
	}

	Log = zerolog.New(io.MultiWriter(writers...)).With().
		Timestamp().
		Str("app", "pathkit").
		Logger()

	Log.Debug().Str("level", logLevel.String()).Msg("Logger initialized")
	return nil
}

// getLogFile returns the log file for the current date
func getLogFile() (*os.File, error) {
	logsDir := config.GetLogsDir()

	logFileName := fmt.Sprintf("pathkit-%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logsDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	// Keep the last 7 days; the directory is small, so this runs inline
	cleanOldLogs(logsDir, 7)

	return file, nil
}

// Close closes the current log file. Log discards entries until the next Init.
func Close() {
	if logFile == nil {
		return
	}
	logFile.Close()
	logFile = nil
	Log = zerolog.Nop()
}

// cleanOldLogs removes log files older than the specified number of days
func cleanOldLogs(logsDir string, keepDays int) {
	files, err := os.ReadDir(logsDir)
	if err != nil {
		return
	}

	cutoffTime := time.Now().AddDate(0, 0, -keepDays)

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".log" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoffTime) {
			os.Remove(filepath.Join(logsDir, file.Name()))
		}
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Debug().Msg(format)
	} else {
		Log.Debug().Msgf(format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Info().Msg(format)
	} else {
		Log.Info().Msgf(format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Warn().Msg(format)
	} else {
		Log.Warn().Msgf(format, args...)
	}
}

// Error logs an error message
func Error(msg string, err error) {
	Log.Error().Err(err).Msg(msg)
}
