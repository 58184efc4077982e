package tracker

import "time"

// Level classifies a tracker log entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Entry is one timestamped, leveled line in a task's log history.
type Entry struct {
	Time    time.Time `json:"time"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
}

// State is the tracker's full published state: what the UI binds to.
type State struct {
	Name    string  `json:"name"`
	TaskID  string  `json:"task_id"`
	Running bool    `json:"running"`
	Entries []Entry `json:"entries"`
}
