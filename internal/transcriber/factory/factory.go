package factory

import (
	"fmt"

	"github.com/nolan/scribecloud/internal/config"
	"github.com/nolan/scribecloud/internal/transcriber"
	"github.com/nolan/scribecloud/internal/transcriber/docker"
)

// NewTranscriber creates a Transcriber based on the configured backend.
func NewTranscriber(cfg *config.Config) (transcriber.Transcriber, error) {
	switch cfg.Transcriber {
	case "docker":
		return docker.New(cfg.WhisperImage)
	case "mock":
		return transcriber.NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown transcriber %q", cfg.Transcriber)
	}
}
