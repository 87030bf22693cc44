// Package animate invokes the external Audio2Face/Unreal asset generator
// against a workspace, producing unreal_assets/.
package animate

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner wraps the external animation tool. Command holds the argv prefix,
// for example ["python3", "audio2face_unreal.py"]; the workspace path is
// appended per invocation.
type Runner struct {
	Command []string
	Timeout time.Duration
}

func NewRunner(command []string) *Runner {
	return &Runner{Command: command, Timeout: 3 * time.Minute}
}

// Run processes every audio file in the workspace. The tool owns its own
// per-file error handling; a non-zero exit is the only failure surfaced
// here, with the tool's output attached.
func (r *Runner) Run(ctx context.Context, workspacePath string) error {
	if len(r.Command) == 0 {
		return errors.New("animation tool command not configured")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, r.Command[1:]...), workspacePath)
	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("animation tool timed out after %s", r.Timeout)
		}
		return fmt.Errorf("animation tool: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
