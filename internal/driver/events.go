package driver

import "time"

// Stage is a step of converting one file.
type Stage string

const (
	StageLoad  Stage = "load"
	StageParse Stage = "parse"
	StagePatch Stage = "patch"
)

// Status is the progress of a file within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
	Cached  bool
}

// Sink consumes progress events. TranspileFiles calls it from several
// goroutines.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

type NopSink struct{}

func (NopSink) OnEvent(Event) {}
