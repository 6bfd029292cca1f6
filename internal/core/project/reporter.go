package project

// EventKind identifies a progress step of Generate.
type EventKind int

const (
	EventProjectCreated EventKind = iota
	EventDirectoryCreated
	EventFileWritten
	EventInstallStarted
	EventInstallFinished
	EventInstallFailed
	EventInstallSkipped
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventProjectCreated:
		return "project_created"
	case EventDirectoryCreated:
		return "directory_created"
	case EventFileWritten:
		return "file_written"
	case EventInstallStarted:
		return "install_started"
	case EventInstallFinished:
		return "install_finished"
	case EventInstallFailed:
		return "install_failed"
	case EventInstallSkipped:
		return "install_skipped"
	}
	return "unknown"
}

// Event is a single progress notification. Path is relative to the project
// root, except for EventProjectCreated where it is the root itself.
type Event struct {
	Kind EventKind
	Path string
	Err  error
}

// Reporter receives progress events in the order steps complete.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) { f(e) }

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// NopReporter discards all events.
func NopReporter() Reporter { return nopReporter{} }
