package recorder

import (
	"context"
	"errors"
	"sync"
	"time"

	"selftalk/internal/domain"
)

// Controller is the per-locale recording state machine. It owns at
// most one live hardware session and at most one assembled artifact,
// and never lets a device failure escape as a panic or error return —
// every failure folds into the Error state plus a status signal.
//
// Entry points may be called from the UI event loop while device
// events arrive from the capture backend's own thread; the mutex keeps
// the overlapping orderings consistent with the state guards.
type Controller struct {
	locale  domain.Locale
	gateway CaptureGateway

	mu       sync.Mutex
	state    State
	status   StatusSignal
	format   Format
	spec     CaptureSpec
	chunks   [][]byte
	session  CaptureSession
	artifact *Artifact

	// clock is injectable for testing; defaults to time.Now.
	clock    func() time.Time
	onChange func()
	onReady  func(*Artifact)
}

// NewController probes the gateway once and creates the controller in
// Unsupported (probe failed, terminal) or Inactive (awaiting plan
// activation).
func NewController(locale domain.Locale, gateway CaptureGateway) *Controller {
	c := &Controller{
		locale:  locale,
		gateway: gateway,
		clock:   time.Now,
	}
	if gateway == nil || !gateway.Supported() {
		c.state, c.status = StateUnsupported, StatusUnsupported
		return c
	}
	c.state, c.status = StateInactive, StatusInactive
	return c
}

// SetOnChange registers a callback invoked after every state change,
// outside the controller lock. The TUI uses it to repaint on device
// events.
func (c *Controller) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// SetOnReady registers a callback invoked with each newly assembled
// artifact.
func (c *Controller) SetOnReady(fn func(*Artifact)) {
	c.mu.Lock()
	c.onReady = fn
	c.mu.Unlock()
}

// Locale returns the locale this controller serves.
func (c *Controller) Locale() domain.Locale { return c.locale }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Status returns the current user-facing status signal.
func (c *Controller) Status() StatusSignal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// NegotiatedFormat returns the encoding fixed for the current or most
// recent session.
func (c *Controller) NegotiatedFormat() Format {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

// Artifact returns the assembled artifact, or nil outside Ready.
func (c *Controller) Artifact() *Artifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return nil
	}
	return c.artifact
}

// SetActive toggles the controller with plan activation. Deactivating
// mid-session force-stops the hardware, discards buffered chunks and
// any artifact, and lands in Inactive; reactivating lands in Idle.
// Unsupported is terminal either way.
func (c *Controller) SetActive(active bool) {
	c.mu.Lock()
	if c.state == StateUnsupported {
		c.mu.Unlock()
		return
	}

	if !active {
		session := c.session
		c.session = nil
		c.chunks = nil
		c.artifact.Release()
		c.artifact = nil
		c.setStateLocked(StateInactive, StatusInactive)
		c.mu.Unlock()
		if session != nil {
			_ = session.Stop()
			session.Release()
		}
		c.notify()
		return
	}

	if c.state == StateInactive {
		c.setStateLocked(StateIdle, StatusIdle)
		c.mu.Unlock()
		c.notify()
		return
	}
	c.mu.Unlock()
}

// Start requests device access and begins capture. It is a no-op
// outside Idle, Ready, and Error — in particular a second start while
// requesting or recording acquires nothing. Starting from Ready
// releases the superseded artifact first.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	switch c.state {
	case StateIdle, StateReady, StateError:
	default:
		c.mu.Unlock()
		return
	}
	c.artifact.Release()
	c.artifact = nil
	c.chunks = nil
	c.setStateLocked(StateRequestingPermission, StatusPermission)
	gateway := c.gateway
	c.mu.Unlock()
	c.notify()

	format := NegotiateFormat(gateway)
	session, err := gateway.RequestAccess(ctx, format, c.handleDevice)

	c.mu.Lock()
	if c.state != StateRequestingPermission {
		// Deactivated while the request was pending: the session, if
		// granted, must not dangle.
		c.mu.Unlock()
		if session != nil {
			session.Release()
		}
		return
	}
	if err != nil {
		signal := StatusError
		if errors.Is(err, ErrPermissionDenied) {
			signal = StatusPermission
		}
		c.setStateLocked(StateError, signal)
		c.mu.Unlock()
		c.notify()
		return
	}

	c.format = format
	c.spec = session.Spec()
	c.session = session
	if err := session.Start(); err != nil {
		c.session = nil
		c.setStateLocked(StateError, StatusError)
		c.mu.Unlock()
		session.Release()
		c.notify()
		return
	}
	c.setStateLocked(StateRecording, StatusRecording)
	c.mu.Unlock()
	c.notify()
}

// Stop requests the final flush. No-op outside Recording. The session
// resolves through Processing to Ready or Error via the EventStopped
// notification; if the device refuses the stop request, finalization
// happens immediately with whatever accumulated.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state != StateRecording || c.session == nil {
		c.mu.Unlock()
		return
	}
	session := c.session
	c.setStateLocked(StateProcessing, StatusProcessing)
	c.mu.Unlock()
	c.notify()

	if err := session.Stop(); err != nil {
		c.handleDevice(DeviceEvent{Kind: EventStopped})
	}
}

// transition is the pure state function for device events: given the
// current state, the event kind, and whether any audio accumulated, it
// returns the next state and status. changed is false when the event
// is ignored in this state.
func transition(s State, kind DeviceEventKind, hasChunks bool) (next State, signal StatusSignal, changed bool) {
	switch kind {
	case EventError:
		switch s {
		case StateRequestingPermission, StateRecording, StateProcessing:
			return StateError, StatusError, true
		}
	case EventStopped:
		switch s {
		case StateRecording, StateProcessing:
			if hasChunks {
				return StateReady, StatusReady, true
			}
			return StateError, StatusError, true
		}
	}
	return s, "", false
}

// handleDevice consumes push notifications from the capture device.
func (c *Controller) handleDevice(ev DeviceEvent) {
	c.mu.Lock()

	if ev.Kind == EventChunk {
		if c.state == StateRecording && len(ev.Chunk) > 0 {
			buf := make([]byte, len(ev.Chunk))
			copy(buf, ev.Chunk)
			c.chunks = append(c.chunks, buf)
		}
		c.mu.Unlock()
		return
	}

	next, signal, changed := transition(c.state, ev.Kind, len(c.chunks) > 0)
	if !changed {
		c.mu.Unlock()
		return
	}

	// Detach the hardware handle now; the actual Release happens after
	// the unlock. Releasing under the lock can deadlock: the backend's
	// uninit waits for an in-flight data callback, and that callback is
	// blocked on this mutex.
	session := c.session
	c.session = nil

	var ready *Artifact
	if next == StateReady {
		art, err := assembleArtifact(c.chunks, c.format, c.spec, c.locale, c.clock())
		if err != nil {
			next, signal = StateError, StatusError
		} else {
			c.artifact = art
			ready = art
		}
	}
	c.chunks = nil
	c.setStateLocked(next, signal)
	onReady := c.onReady
	c.mu.Unlock()

	// Released before anyone is told about the new state.
	if session != nil {
		session.Release()
	}
	if ready != nil && onReady != nil {
		onReady(ready)
	}
	c.notify()
}

func (c *Controller) setStateLocked(s State, signal StatusSignal) {
	c.state = s
	c.status = signal
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
