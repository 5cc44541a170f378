package recorder

// State is the capture session lifecycle tag.
type State string

const (
	// StateUnsupported is terminal: the platform offers no capture
	// device or no usable encoder.
	StateUnsupported State = "unsupported"
	// StateInactive means no plan is currently active; controls are
	// disabled until the presenter reactivates the controller.
	StateInactive State = "inactive"
	// StateIdle means the controller is armed and no audio has been
	// produced yet.
	StateIdle State = "idle"
	// StateRequestingPermission covers the window between a start
	// request and the device access decision.
	StateRequestingPermission State = "requesting-permission"
	// StateRecording means the hardware session is live and chunks are
	// accumulating.
	StateRecording State = "recording"
	// StateProcessing covers the final flush between a stop request and
	// artifact assembly.
	StateProcessing State = "processing"
	// StateReady means an artifact was assembled and can be played or
	// saved.
	StateReady State = "ready"
	// StateError is transient: the next start request retries.
	StateError State = "error"
)

// StatusSignal is the user-facing status the presenter maps to
// localized text. It is deliberately separate from State: the Error
// state surfaces either a permission signal or a generic one depending
// on what failed.
type StatusSignal string

const (
	StatusIdle        StatusSignal = "idle"
	StatusRecording   StatusSignal = "recording"
	StatusProcessing  StatusSignal = "processing"
	StatusReady       StatusSignal = "ready"
	StatusPermission  StatusSignal = "permission"
	StatusUnsupported StatusSignal = "unsupported"
	StatusError       StatusSignal = "error"
	StatusInactive    StatusSignal = "inactive"
)
