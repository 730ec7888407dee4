package transcriber

import "errors"

var (
	// ErrUnsupportedSource indicates the URL points at media the worker cannot handle.
	ErrUnsupportedSource = errors.New("unsupported media source")

	// ErrNotConfigured indicates the selected transcriber is missing required configuration.
	ErrNotConfigured = errors.New("transcriber not configured")

	// ErrWorkerFailed indicates the transcription worker exited without producing a result.
	ErrWorkerFailed = errors.New("transcription worker failed")
)
