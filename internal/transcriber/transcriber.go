package transcriber

import "context"

// MediaInfo holds probed metadata for a media URL.
type MediaInfo struct {
	Title           string  `json:"title"`
	DurationSeconds float64 `json:"duration_seconds"`
	Language        string  `json:"language"`
}

// Request carries the parameters for a transcription run.
type Request struct {
	SourceURL string
	// Language is a hint; empty means auto-detect.
	Language string
}

// Result is the output of a completed transcription run.
type Result struct {
	Title           string  `json:"title"`
	DurationSeconds float64 `json:"duration_seconds"`
	Language        string  `json:"language"`
	Transcript      string  `json:"transcript"`
}

// Transcriber fetches media and produces transcripts. Both the Docker
// whisper runner (local) and the mock (tests/dev) implement it.
type Transcriber interface {
	// Probe fetches metadata for a media URL without transcribing.
	Probe(ctx context.Context, sourceURL string) (*MediaInfo, error)

	// Transcribe downloads the media's audio and runs transcription.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
