package core

import "fmt"

// ErrorKind classifies a fatal render error so callers (CLI, tests) can
// decide how to report it.
type ErrorKind int

const (
	// ConfigError marks an invalid RenderParams (e.g. max_depth = 0,
	// negative aperture). Signaled before any work is scheduled.
	ConfigError ErrorKind = iota
	// SceneBuildError marks a degenerate primitive or unresolved material
	// reference found while building the acceleration structure.
	SceneBuildError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigError:
		return "configuration error"
	case SceneBuildError:
		return "scene-build error"
	default:
		return "unknown error"
	}
}

// RenderError is a fatal error surfaced from the top-level render call.
// Numerical edges and unbounded contributions are not RenderErrors: they are
// recovered locally per spec and only ever show up as diagnostic counters.
type RenderError struct {
	Kind ErrorKind
	Msg  string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) error {
	return &RenderError{Kind: ConfigError, Msg: fmt.Sprintf(format, args...)}
}

// NewSceneBuildError builds a SceneBuildError with a formatted message.
func NewSceneBuildError(format string, args ...any) error {
	return &RenderError{Kind: SceneBuildError, Msg: fmt.Sprintf(format, args...)}
}

// DiagnosticCounters accumulates non-fatal numerical-edge events for a
// single render worker. Workers keep their own instance (no locking) and the
// render driver sums them after all tiles complete.
type DiagnosticCounters struct {
	SelfIntersections      uint64
	TotalInternalReflections uint64
	BackfacingNormalsFixed  uint64
	DroppedUnboundedSamples uint64
}

// Add merges another worker's counters into this one.
func (d *DiagnosticCounters) Add(other DiagnosticCounters) {
	d.SelfIntersections += other.SelfIntersections
	d.TotalInternalReflections += other.TotalInternalReflections
	d.BackfacingNormalsFixed += other.BackfacingNormalsFixed
	d.DroppedUnboundedSamples += other.DroppedUnboundedSamples
}
