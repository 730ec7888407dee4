package transcriber

import (
	"context"
	"strings"
	"sync"
)

// Mock is a test double for the Transcriber interface.
type Mock struct {
	mu         sync.Mutex
	calls      []string
	failNext   error
	transcript string
}

// NewMock creates a new Mock that returns a canned transcript.
func NewMock() *Mock {
	return &Mock{transcript: "mock transcript"}
}

// SetFailNext makes the next Probe or Transcribe call return err.
func (m *Mock) SetFailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// SetTranscript overrides the canned transcript text.
func (m *Mock) SetTranscript(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcript = text
}

// Calls returns the source URLs passed to Probe and Transcribe.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *Mock) take(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, url)
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *Mock) Probe(ctx context.Context, sourceURL string) (*MediaInfo, error) {
	if err := m.take(sourceURL); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(sourceURL, "http") {
		return nil, ErrUnsupportedSource
	}
	return &MediaInfo{Title: "Mock Media", DurationSeconds: 42, Language: "en"}, nil
}

func (m *Mock) Transcribe(ctx context.Context, req Request) (*Result, error) {
	if err := m.take(req.SourceURL); err != nil {
		return nil, err
	}
	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	m.mu.Lock()
	text := m.transcript
	m.mu.Unlock()
	return &Result{
		Title:           "Mock Media",
		DurationSeconds: 42,
		Language:        lang,
		Transcript:      text,
	}, nil
}
