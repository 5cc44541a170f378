package recorder

import (
	"context"
	"strings"
	"sync"

	"github.com/gen2brain/malgo"
)

const (
	captureSampleRate = 16000
	captureChannels   = 1
)

// MalgoGateway adapts the miniaudio capture backend to the
// CaptureGateway port. One gateway owns one backend context, shared by
// every session it grants.
type MalgoGateway struct {
	initOnce sync.Once
	ctx      *malgo.AllocatedContext
	initErr  error
}

// NewMalgoGateway creates the gateway without touching the hardware.
// The backend context is initialized lazily on the first capability
// probe.
func NewMalgoGateway() *MalgoGateway {
	return &MalgoGateway{}
}

func (g *MalgoGateway) init() (*malgo.AllocatedContext, error) {
	g.initOnce.Do(func() {
		g.ctx, g.initErr = malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	})
	return g.ctx, g.initErr
}

// Supported reports whether the backend initializes on this host.
func (g *MalgoGateway) Supported() bool {
	_, err := g.init()
	return err == nil
}

// SupportsFormat reports whether the backend can produce the given
// encoding natively. Raw capture yields PCM frames only, so anything
// beyond WAV is left to the fallback.
func (g *MalgoGateway) SupportsFormat(f Format) bool {
	if !f.PCM {
		return false
	}
	return strings.HasPrefix(f.MimeType, "audio/wav")
}

// RequestAccess opens the default capture device. Frames and lifecycle
// notifications are pushed to sink from the backend's audio thread.
func (g *MalgoGateway) RequestAccess(ctx context.Context, f Format, sink func(DeviceEvent)) (CaptureSession, error) {
	backend, err := g.init()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config := malgo.DefaultDeviceConfig(malgo.Capture)
	config.Capture.Format = malgo.FormatS16
	config.Capture.Channels = captureChannels
	config.SampleRate = captureSampleRate
	config.Alsa.NoMMap = 1

	session := &malgoSession{sink: sink}
	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			if len(input) == 0 {
				return
			}
			chunk := make([]byte, len(input))
			copy(chunk, input)
			sink(DeviceEvent{Kind: EventChunk, Chunk: chunk})
		},
		Stop: func() {
			session.emitStopped()
		},
	}

	device, err := malgo.InitDevice(backend.Context, config, callbacks)
	if err != nil {
		return nil, err
	}
	session.device = device
	return session, nil
}

type malgoSession struct {
	device   *malgo.Device
	sink     func(DeviceEvent)
	stopOnce sync.Once
}

func (s *malgoSession) Start() error {
	return s.device.Start()
}

func (s *malgoSession) Stop() error {
	err := s.device.Stop()
	// The backend fires the stop callback on a clean stop; on an error
	// path nothing comes, so the notification is forced here. The once
	// guard keeps the two paths from double-delivering.
	s.emitStopped()
	return err
}

func (s *malgoSession) Release() {
	s.device.Uninit()
}

func (s *malgoSession) Spec() CaptureSpec {
	return CaptureSpec{SampleRate: captureSampleRate, Channels: captureChannels}
}

func (s *malgoSession) emitStopped() {
	s.stopOnce.Do(func() {
		s.sink(DeviceEvent{Kind: EventStopped})
	})
}
