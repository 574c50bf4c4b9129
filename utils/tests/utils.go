package tests

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/log"
	corelog "github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

// Set new logger with output redirection to a buffer.
// Caller is responsible to set the old log back.
func RedirectLogOutputToBuffer() (outputBuffer, stderrBuffer *bytes.Buffer, previousLog log.Log) {
	stderrBuffer, outputBuffer = &bytes.Buffer{}, &bytes.Buffer{}
	previousLog = log.Logger
	newLog := log.NewLogger(corelog.GetCliLogLevel(), nil)
	newLog.SetOutputWriter(outputBuffer)
	newLog.SetLogsWriter(stderrBuffer, 0)
	log.SetLogger(newLog)
	return outputBuffer, stderrBuffer, previousLog
}

// RecordingLogger keeps every message it receives, per level.
type RecordingLogger struct {
	Logs     []string
	Warnings []string
	Errors   []string
	Debugs   []string
	Depth    int
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) Log(a ...interface{}) {
	l.Logs = append(l.Logs, join(a))
}

func (l *RecordingLogger) Warn(a ...interface{}) {
	l.Warnings = append(l.Warnings, join(a))
}

func (l *RecordingLogger) Error(a ...interface{}) {
	l.Errors = append(l.Errors, join(a))
}

func (l *RecordingLogger) Debug(a ...interface{}) {
	l.Debugs = append(l.Debugs, join(a))
}

func (l *RecordingLogger) Group() {
	l.Depth++
}

func (l *RecordingLogger) GroupEnd() {
	l.Depth--
}

// Reset forgets every recorded message.
func (l *RecordingLogger) Reset() {
	*l = RecordingLogger{}
}

func join(a []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(a...), "\n")
}

var _ corelog.Logger = (*RecordingLogger)(nil)
