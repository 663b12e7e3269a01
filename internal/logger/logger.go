package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var levelColors = map[Level]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
}

const colorReset = "\033[0m"

// Logger is a minimal leveled logger. covscope writes its rendered document
// to stdout, so all log output goes to stderr by default.
type Logger struct {
	mu          sync.Mutex
	level       Level
	output      io.Writer
	colorEnable bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

func ensureDefault() *Logger {
	once.Do(func() {
		defaultLogger = &Logger{
			level:       INFO,
			output:      os.Stderr,
			colorEnable: true,
		}
	})
	return defaultLogger
}

// SetLevel sets the logging level for the default logger.
func SetLevel(levelStr string) {
	l := ensureDefault()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = parseLevel(levelStr)
}

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	l := ensureDefault()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetColorEnable enables or disables color output.
func SetColorEnable(enable bool) {
	l := ensureDefault()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colorEnable = enable
}

func parseLevel(levelStr string) Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	message := fmt.Sprintf(format, args...)
	var line string
	if l.colorEnable {
		line = fmt.Sprintf("%s[%s]%s %s", levelColors[level], levelNames[level], colorReset, message)
	} else {
		line = fmt.Sprintf("[%s] %s", levelNames[level], message)
	}

	log.New(l.output, "", log.LstdFlags).Println(line)
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) {
	ensureDefault().log(DEBUG, format, args...)
}

// Info logs an info message.
func Info(format string, args ...interface{}) {
	ensureDefault().log(INFO, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...interface{}) {
	ensureDefault().log(WARN, format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	ensureDefault().log(ERROR, format, args...)
}
