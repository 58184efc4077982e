package tracker

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rochers/feoblog/logger"
)

// Progress is handed to the wrapped task so it can report messages while
// running. Every message becomes a tracker entry, a log line, and a span
// event; none of them abort the task.
type Progress struct {
	tracker *Tracker
	span    trace.Span
}

// Log records an informational progress message.
func (p *Progress) Log(format string, args ...interface{}) {
	p.report(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn records a warning message.
func (p *Progress) Warn(format string, args ...interface{}) {
	p.report(LevelWarning, fmt.Sprintf(format, args...))
}

// Error records an error message without stopping the task.
func (p *Progress) Error(format string, args ...interface{}) {
	p.report(LevelError, fmt.Sprintf(format, args...))
}

func (p *Progress) report(level Level, msg string) {
	p.tracker.record(level, msg)
	p.span.AddEvent(msg, trace.WithAttributes(attribute.String("level", string(level))))

	fields := logger.Fields(logger.FieldTask, p.tracker.name)
	switch level {
	case LevelWarning:
		p.tracker.log.Warn(msg, fields)
	case LevelError:
		p.tracker.log.Error(msg, fields)
	default:
		p.tracker.log.Info(msg, fields)
	}
}
