package output

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugOnce   sync.Once
	debugLogger *log.Logger
)

// debugf mirrors console messages into a rotated log file when GITFLOW_DEBUG
// is set. The file defaults to the user cache directory; rotation limits can
// be tuned with GITFLOW_LOG_MAX_SIZE / _MAX_BACKUPS / _MAX_AGE.
func debugf(format string, args ...interface{}) {
	debugOnce.Do(initDebugLogger)
	if debugLogger == nil {
		return
	}
	debugLogger.Output(2, fmt.Sprintf(format, args...))
}

func initDebugLogger() {
	if os.Getenv("GITFLOW_DEBUG") == "" {
		return
	}

	logPath := os.Getenv("GITFLOW_LOG_FILE")
	if logPath == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}
		logPath = filepath.Join(cacheDir, "gitflow", "gitflow.log")
	}

	debugLogger = log.New(newRotatingWriter(logPath), "", log.LstdFlags)
}

func newRotatingWriter(logPath string) *lumberjack.Logger {
	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,  // old files kept
		MaxAge:     30, // days
	}

	if v := os.Getenv("GITFLOW_LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			writer.MaxSize = n
		}
	}
	if v := os.Getenv("GITFLOW_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			writer.MaxBackups = n
		}
	}
	if v := os.Getenv("GITFLOW_LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			writer.MaxAge = n
		}
	}

	return writer
}
