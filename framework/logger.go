package framework

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used by the harness. *log.Logger and logrus loggers
// both satisfy it.
type Logger interface {
	Printf(message string, args ...interface{})
}

// FieldLogger is a Logger that can attach structured fields to the lines it writes.
type FieldLogger interface {
	Logger
	WithFields(fields logrus.Fields) Logger
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// WithFields returns a logger that writes fields with every line. CapturingLogger and
// *logrus.Logger keep them structured; other loggers get them appended as key=value text.
func WithFields(l Logger, fields logrus.Fields) Logger {
	switch fl := l.(type) {
	case FieldLogger:
		return fl.WithFields(fields)
	case logrus.FieldLogger:
		return fl.WithFields(fields)
	case nullLogger:
		return fl
	}
	return suffixLogger{target: l, suffix: formatFields(fields)}
}

type suffixLogger struct {
	target Logger
	suffix string
}

func (s suffixLogger) Printf(message string, args ...interface{}) {
	s.target.Printf("%s %s", fmt.Sprintf(message, args...), s.suffix)
}

type CapturedMessage struct {
	Time    time.Time
	Message string
	Fields  logrus.Fields
}

func (m CapturedMessage) String() string {
	if len(m.Fields) == 0 {
		return m.Message
	}
	return m.Message + " " + formatFields(m.Fields)
}

type CapturedOutput []CapturedMessage

// CapturingLogger accumulates debug messages for a single test so they can be shown only if
// the console logger asks for them.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.add(nil, message, args...)
}

func (l *CapturingLogger) WithFields(fields logrus.Fields) Logger {
	return capturingEntry{logger: l, fields: fields}
}

func (l *CapturingLogger) add(fields logrus.Fields, message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{
		Time:    time.Now(),
		Message: fmt.Sprintf(message, args...),
		Fields:  fields,
	})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

type capturingEntry struct {
	logger *CapturingLogger
	fields logrus.Fields
}

func (e capturingEntry) Printf(message string, args ...interface{}) {
	e.logger.add(e.fields, message, args...)
}

func (e capturingEntry) WithFields(fields logrus.Fields) Logger {
	merged := make(logrus.Fields, len(e.fields)+len(fields))
	for k, v := range e.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return capturingEntry{logger: e.logger, fields: merged}
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.String(),
		)
	}
}

// formatFields renders fields as key=value pairs sorted by key, quoting values that contain
// spaces or quotes.
func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fmt.Sprint(fields[k])
		if strings.ContainsAny(v, " \"=") {
			v = fmt.Sprintf("%q", v)
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}
