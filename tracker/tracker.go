package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rochers/feoblog/logger"
	"github.com/rochers/feoblog/store"
)

const tracerName = "github.com/rochers/feoblog/tracker"

// ErrAlreadyRunning is returned by Run when a task is still in progress.
var ErrAlreadyRunning = errors.New("tracker: task already running")

// Tracker wraps a single long-running task. It records a timestamped,
// leveled entry for the task's start, every progress/warning/error message,
// and its completion, and publishes its full state to the bound store after
// every mutation.
type Tracker struct {
	mu      sync.Mutex
	name    string
	taskID  string
	running bool
	entries []Entry

	store  *store.Store[State]
	log    *logger.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger. Defaults to the global logger tagged with
// the tracker component.
func WithLogger(l *logger.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithClock overrides the entry timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a tracker for a named task, publishing state into st.
func New(name string, st *store.Store[State], opts ...Option) *Tracker {
	t := &Tracker{
		name:   name,
		store:  st,
		log:    logger.WithComponent("tracker"),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Running reports whether the wrapped task is currently executing.
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Entries returns a copy of the recorded log history.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Run executes fn, recording its lifecycle. The returned error is whatever
// fn returned (or a wrapped panic value); it has already been recorded as
// an error entry, so callers that only observe the tracker may ignore it.
// Run never panics: a panic inside fn is recovered and recorded.
func (t *Tracker) Run(ctx context.Context, fn func(ctx context.Context, p *Progress) error) (err error) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return ErrAlreadyRunning
	}
	t.running = true
	t.taskID = uuid.NewString()
	t.entries = nil
	taskID := t.taskID
	t.mu.Unlock()

	ctx, span := t.tracer.Start(ctx, t.name,
		trace.WithAttributes(attribute.String("task.id", taskID)))
	defer span.End()

	t.record(LevelInfo, fmt.Sprintf("%s: started", t.name))
	t.log.Info("task started", logger.Fields(logger.FieldTask, t.name, logger.FieldTaskID, taskID))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panic: %v", r)
		}
		t.finish(span, err)
	}()

	err = fn(ctx, &Progress{tracker: t, span: span})
	return err
}

// finish records the completion entry, flips the running flag, and closes
// out the span. Runs exactly once per Run call.
func (t *Tracker) finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		t.log.Error("task failed", logger.ErrorFields(t.name, err))
	} else {
		t.log.Info("task finished", logger.Fields(logger.FieldTask, t.name))
	}

	t.mu.Lock()
	t.running = false
	if err != nil {
		t.appendLocked(LevelError, fmt.Sprintf("%s: failed: %s", t.name, err))
	} else {
		t.appendLocked(LevelInfo, fmt.Sprintf("%s: finished", t.name))
	}
	snap := t.stateLocked()
	t.mu.Unlock()
	t.publish(snap)
}

// record appends an entry and publishes the new state.
func (t *Tracker) record(level Level, msg string) {
	t.mu.Lock()
	t.appendLocked(level, msg)
	snap := t.stateLocked()
	t.mu.Unlock()
	t.publish(snap)
}

func (t *Tracker) appendLocked(level Level, msg string) {
	t.entries = append(t.entries, Entry{
		Time:    t.now(),
		Level:   level,
		Message: msg,
	})
}

func (t *Tracker) stateLocked() State {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return State{
		Name:    t.name,
		TaskID:  t.taskID,
		Running: t.running,
		Entries: entries,
	}
}

func (t *Tracker) publish(s State) {
	if t.store != nil {
		t.store.Set(s)
	}
}
