package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/google/uuid"

	"github.com/nolan/scribecloud/internal/transcriber"
)

const labelPrefix = "scribecloud."

// Transcriber implements transcriber.Transcriber by running a whisper
// worker container per job on the local Docker daemon. The worker
// image accepts "probe <url>" or "transcribe <url>" and prints a JSON
// document on stdout.
type Transcriber struct {
	cli   *client.Client
	image string
}

// New creates a new Docker transcriber using the given worker image.
func New(image string) (*Transcriber, error) {
	if image == "" {
		return nil, transcriber.ErrNotConfigured
	}
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return &Transcriber{cli: cli, image: image}, nil
}

// Probe fetches media metadata via a short-lived worker container.
func (t *Transcriber) Probe(ctx context.Context, sourceURL string) (*transcriber.MediaInfo, error) {
	out, err := t.runWorker(ctx, []string{"probe", sourceURL}, nil)
	if err != nil {
		return nil, err
	}

	var info transcriber.MediaInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("parse probe output: %w", err)
	}
	return &info, nil
}

// Transcribe runs a full transcription job in a worker container.
func (t *Transcriber) Transcribe(ctx context.Context, req transcriber.Request) (*transcriber.Result, error) {
	var env []string
	if req.Language != "" {
		env = append(env, "WHISPER_LANGUAGE="+req.Language)
	}

	out, err := t.runWorker(ctx, []string{"transcribe", req.SourceURL}, env)
	if err != nil {
		return nil, err
	}

	var result transcriber.Result
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("parse transcribe output: %w", err)
	}
	return &result, nil
}

// runWorker creates, runs to completion, and removes a worker
// container, returning its stdout.
func (t *Transcriber) runWorker(ctx context.Context, cmd, env []string) ([]byte, error) {
	name := fmt.Sprintf("scribe-job-%s", uuid.NewString()[:8])

	resp, err := t.cli.ContainerCreate(ctx,
		&container.Config{
			Image: t.image,
			Cmd:   cmd,
			Env:   env,
			Labels: map[string]string{
				labelPrefix + "managed": "true",
			},
		},
		&container.HostConfig{
			AutoRemove: false, // removed explicitly after logs are read
		},
		nil,
		nil,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("create worker: %w", err)
	}
	defer func() {
		removeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = t.cli.ContainerRemove(removeCtx, resp.ID, container.RemoveOptions{Force: true})
	}()

	if err := t.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("start worker: %w", err)
	}

	statusCh, errCh := t.cli.ContainerWait(ctx, resp.ID, container.WaitConditionNotRunning)
	select {
	case err := <-errCh:
		if err != nil {
			return nil, fmt.Errorf("wait worker: %w", err)
		}
	case status := <-statusCh:
		if status.StatusCode != 0 {
			return nil, fmt.Errorf("%w: exit code %d", transcriber.ErrWorkerFailed, status.StatusCode)
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	logs, err := t.cli.ContainerLogs(ctx, resp.ID, container.LogsOptions{ShowStdout: true, ShowStderr: true})
	if err != nil {
		return nil, fmt.Errorf("worker logs: %w", err)
	}
	defer logs.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, logs); err != nil {
		return nil, fmt.Errorf("read worker logs: %w", err)
	}
	return bytes.TrimSpace(stdout.Bytes()), nil
}
