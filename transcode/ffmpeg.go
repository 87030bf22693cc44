// Package transcode converts synthesized audio into the format the
// downstream animation tool expects.
package transcode

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Transcoder converts one audio file to another format on disk.
type Transcoder interface {
	Transcode(ctx context.Context, inPath, outPath string) error
}

// FFmpeg shells out to ffmpeg to resample audio. Audio2Face wants 16 kHz
// mono PCM, which is the default target.
type FFmpeg struct {
	Binary     string
	SampleRate int
	Channels   int
	Timeout    time.Duration
}

func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		Binary:     "ffmpeg",
		SampleRate: 16000,
		Channels:   1,
		Timeout:    60 * time.Second,
	}
}

func (f *FFmpeg) args(inPath, outPath string) []string {
	return []string{
		"-y",
		"-i", inPath,
		"-ar", strconv.Itoa(f.SampleRate),
		"-ac", strconv.Itoa(f.Channels),
		outPath,
	}
}

// Transcode runs ffmpeg under the configured timeout. Stderr goes into the
// error because ffmpeg reports everything there.
func (f *FFmpeg) Transcode(ctx context.Context, inPath, outPath string) error {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.Binary, f.args(inPath, outPath)...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("ffmpeg timed out after %s processing %s", f.Timeout, inPath)
		}
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg %s: %w: %s", inPath, err, msg)
		}
		return fmt.Errorf("ffmpeg %s: %w", inPath, err)
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
