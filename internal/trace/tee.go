package trace

import "errors"

// TeeTracer writes every event to a stream and keeps the recent ones in a
// ring, so a failed run can dump what led up to it.
type TeeTracer struct {
	stream *StreamTracer
	ring   *RingTracer
	level  Level
}

func NewTeeTracer(level Level, stream *StreamTracer, ring *RingTracer) *TeeTracer {
	return &TeeTracer{stream: stream, ring: ring, level: level}
}

// Emit copies ev for the ring; both sinks stamp their own Seq.
func (t *TeeTracer) Emit(ev *Event) {
	cp := *ev
	t.stream.Emit(ev)
	t.ring.Emit(&cp)
}

func (t *TeeTracer) Flush() error {
	return errors.Join(t.stream.Flush(), t.ring.Flush())
}

func (t *TeeTracer) Close() error {
	return errors.Join(t.stream.Close(), t.ring.Close())
}

func (t *TeeTracer) Level() Level  { return t.level }
func (t *TeeTracer) Enabled() bool { return t.level > LevelOff }

func (t *TeeTracer) Ring() *RingTracer { return t.ring }
