package recorder

// preferredFormats is the fixed negotiation order. The first format
// the gateway supports wins and stays fixed for the session.
var preferredFormats = []Format{
	{MimeType: "audio/webm;codecs=opus", Extension: "webm"},
	{MimeType: "audio/webm", Extension: "webm"},
	{MimeType: "audio/wav", Extension: "wav", PCM: true},
	{MimeType: "audio/mp4;codecs=mp4a", Extension: "m4a"},
	{MimeType: "audio/ogg;codecs=opus", Extension: "ogg"},
	{MimeType: "audio/ogg", Extension: "ogg"},
}

// defaultFormat is the fallback when the gateway supports none of the
// preferred encodings (or cannot be queried): the device's default
// encoding, labeled webm.
var defaultFormat = Format{Extension: "webm"}

// NegotiateFormat picks the session encoding: the first supported
// entry of the preferred list, else the device default.
func NegotiateFormat(gw CaptureGateway) Format {
	if gw == nil {
		return defaultFormat
	}
	for _, f := range preferredFormats {
		if gw.SupportsFormat(f) {
			return f
		}
	}
	return defaultFormat
}
