package recorder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"selftalk/internal/domain"
)

const (
	wavBytesPerSample = 2 // 16-bit little-endian PCM
	wavBitsPerSample  = 16
	wavPCMFormatTag   = 1
)

// fallbackMimeType labels artifacts recorded with the device default
// encoding.
const fallbackMimeType = "audio/webm"

// Artifact is the assembled, playable result of one capture session.
type Artifact struct {
	ID        string
	Locale    domain.Locale
	MimeType  string
	Extension string
	Filename  string
	Data      []byte
	CreatedAt time.Time

	released bool
}

// assembleArtifact concatenates the session's chunks into a playable
// blob. PCM formats get a WAV container; everything else is assumed
// container-framed by the device. Zero accumulated chunks is an error,
// never an empty artifact.
func assembleArtifact(chunks [][]byte, f Format, spec CaptureSpec, locale domain.Locale, now time.Time) (*Artifact, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no audio captured")
	}

	data := bytes.Join(chunks, nil)
	if f.PCM {
		data = encodeWAV(data, spec)
	}

	mime := f.MimeType
	if mime == "" {
		mime = fallbackMimeType
	}

	ext := f.Extension
	if ext == "" {
		ext = "webm"
	}

	stamp := now.UTC().Format("2006-01-02T15-04-05Z")
	return &Artifact{
		ID:        uuid.New().String(),
		Locale:    locale,
		MimeType:  mime,
		Extension: ext,
		Filename:  fmt.Sprintf("selftalk-practice-%s-%s.%s", locale, stamp, ext),
		Data:      data,
		CreatedAt: now,
	}, nil
}

// Release frees the artifact's audio data. Releasing twice is a bug;
// the guard keeps it harmless and observable.
func (a *Artifact) Release() {
	if a == nil || a.released {
		return
	}
	a.released = true
	a.Data = nil
}

// Released reports whether Release was called.
func (a *Artifact) Released() bool {
	return a != nil && a.released
}

// SaveTo writes the artifact under its generated filename and returns
// the full path.
func (a *Artifact) SaveTo(dir string) (string, error) {
	if a.released {
		return "", fmt.Errorf("artifact %s already released", a.ID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact directory: %w", err)
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact: %w", err)
	}
	return path, nil
}

// encodeWAV wraps raw 16-bit PCM in a RIFF/WAV container.
func encodeWAV(pcm []byte, spec CaptureSpec) []byte {
	sampleRate := spec.SampleRate
	if sampleRate <= 0 {
		sampleRate = 16000
	}
	channels := spec.Channels
	if channels <= 0 {
		channels = 1
	}
	byteRate := sampleRate * channels * wavBytesPerSample
	blockAlign := channels * wavBytesPerSample

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(wavPCMFormatTag))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(wavBitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
