package domain

import "time"

// RecordingLog is one assembled practice recording, logged when a
// capture session reaches Ready.
type RecordingLog struct {
	ID        string
	Locale    Locale
	Filename  string
	MimeType  string
	ByteSize  int
	CreatedAt time.Time
}
