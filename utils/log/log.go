package log

import (
	"fmt"
	golangLog "log"
	"os"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
)

// Logger is handed to every executable and to the registry.
// Log is plain user output, the other levels go through the CLI log level.
type Logger interface {
	Log(a ...interface{})
	Warn(a ...interface{})
	Error(a ...interface{})
	Debug(a ...interface{})
	Group()
	GroupEnd()
}

func GetCliLogLevel() log.LevelType {
	switch os.Getenv(coreutils.LogLevel) {
	case "ERROR":
		return log.ERROR
	case "WARN":
		return log.WARN
	case "DEBUG":
		return log.DEBUG
	default:
		return log.INFO
	}
}

func getToolkitLogTimestamp() int {
	switch os.Getenv(coreutils.LogTimestamp) {
	case "DATE_AND_TIME":
		return golangLog.Ldate | golangLog.Ltime | golangLog.Lmsgprefix
	case "OFF":
		return 0
	default:
		return golangLog.Ltime | golangLog.Lmsgprefix
	}
}

// SetDefaultLogger installs the process logger. Debug logging overrides the level read from the environment.
func SetDefaultLogger(debugLogging bool) {
	level := GetCliLogLevel()
	if debugLogging {
		level = log.DEBUG
	}
	log.SetLogger(log.NewLoggerWithFlags(level, nil, getToolkitLogTimestamp()))
}

// ToolkitLogger writes through the jfrog-client-go logger currently installed with log.SetLogger.
type ToolkitLogger struct {
	depth int
}

func NewLogger(debugLogging bool) *ToolkitLogger {
	SetDefaultLogger(debugLogging)
	return &ToolkitLogger{}
}

func (l *ToolkitLogger) Log(a ...interface{}) {
	log.Output(l.indent(a)...)
}

func (l *ToolkitLogger) Warn(a ...interface{}) {
	log.Warn(l.indent(a)...)
}

func (l *ToolkitLogger) Error(a ...interface{}) {
	log.Error(l.indent(a)...)
}

func (l *ToolkitLogger) Debug(a ...interface{}) {
	log.Debug(l.indent(a)...)
}

func (l *ToolkitLogger) Group() {
	l.depth++
}

func (l *ToolkitLogger) GroupEnd() {
	if l.depth > 0 {
		l.depth--
	}
}

func (l *ToolkitLogger) indent(a []interface{}) []interface{} {
	if l.depth == 0 || len(a) == 0 {
		return a
	}
	indented := append([]interface{}{}, a...)
	indented[0] = strings.Repeat("  ", l.depth) + fmt.Sprint(indented[0])
	return indented
}
