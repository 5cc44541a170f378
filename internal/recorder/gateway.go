package recorder

import (
	"context"
	"errors"
)

// ErrPermissionDenied is returned by RequestAccess when the user or
// platform refused microphone access. Any other error is a device
// failure.
var ErrPermissionDenied = errors.New("microphone access denied")

// Format is one negotiable (encoding, file extension) pair. A zero
// MimeType means the device's default encoding. PCM marks encodings
// delivered as raw little-endian 16-bit samples, which artifact
// assembly wraps in a WAV container.
type Format struct {
	MimeType  string
	Extension string
	PCM       bool
}

// IsDefault reports whether this is the unnegotiated device default.
func (f Format) IsDefault() bool { return f.MimeType == "" }

// CaptureSpec describes the sample layout of a live session's chunks.
// Only meaningful for PCM formats.
type CaptureSpec struct {
	SampleRate int
	Channels   int
}

// DeviceEventKind enumerates the push notifications a capture device
// delivers.
type DeviceEventKind int

const (
	// EventChunk carries captured audio bytes.
	EventChunk DeviceEventKind = iota
	// EventError signals a terminal device failure; no further events
	// follow.
	EventError
	// EventStopped signals the final flush after a stop, whether user-
	// or device-initiated.
	EventStopped
)

// DeviceEvent is one push notification from the capture device.
type DeviceEvent struct {
	Kind  DeviceEventKind
	Chunk []byte
	Err   error
}

// CaptureGateway abstracts the platform capture device. One gateway
// serves many sessions, but only one session may be live at a time.
type CaptureGateway interface {
	// Supported reports whether this platform can capture at all.
	// Probed once at controller construction.
	Supported() bool
	// SupportsFormat answers the format negotiation capability query.
	SupportsFormat(f Format) bool
	// RequestAccess acquires the hardware device. Device notifications
	// are pushed to sink until Release. A denial is reported as
	// ErrPermissionDenied.
	RequestAccess(ctx context.Context, f Format, sink func(DeviceEvent)) (CaptureSession, error)
}

// CaptureSession is one acquired hardware capture handle.
type CaptureSession interface {
	// Start begins delivering EventChunk notifications.
	Start() error
	// Stop requests the final flush; an EventStopped follows.
	Stop() error
	// Release frees the hardware handle. Idempotent.
	Release()
	// Spec reports the session's sample layout.
	Spec() CaptureSpec
}
