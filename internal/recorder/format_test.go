package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateFormatPrefersOpusWebm(t *testing.T) {
	gw := &fakeGateway{supported: true, mimeTypes: map[string]bool{
		"audio/webm;codecs=opus": true,
		"audio/webm":             true,
		"audio/wav":              true,
	}}

	f := NegotiateFormat(gw)

	assert.Equal(t, "audio/webm;codecs=opus", f.MimeType)
	assert.Equal(t, "webm", f.Extension)
	assert.False(t, f.PCM)
	assert.False(t, f.IsDefault())
}

func TestNegotiateFormatWalksPreferenceOrder(t *testing.T) {
	gw := &fakeGateway{supported: true, mimeTypes: map[string]bool{
		"audio/ogg;codecs=opus": true,
		"audio/ogg":             true,
	}}

	f := NegotiateFormat(gw)

	assert.Equal(t, "audio/ogg;codecs=opus", f.MimeType)
	assert.Equal(t, "ogg", f.Extension)
}

func TestNegotiateFormatWavIsPCM(t *testing.T) {
	gw := &fakeGateway{supported: true, mimeTypes: map[string]bool{
		"audio/wav": true,
	}}

	f := NegotiateFormat(gw)

	assert.Equal(t, "audio/wav", f.MimeType)
	assert.Equal(t, "wav", f.Extension)
	assert.True(t, f.PCM)
}

func TestNegotiateFormatFallsBackToDeviceDefault(t *testing.T) {
	gw := &fakeGateway{supported: true, mimeTypes: map[string]bool{}}

	f := NegotiateFormat(gw)

	assert.True(t, f.IsDefault())
	assert.Empty(t, f.MimeType)
	assert.Equal(t, "webm", f.Extension)
}

func TestNegotiateFormatNilGateway(t *testing.T) {
	assert.True(t, NegotiateFormat(nil).IsDefault())
}
