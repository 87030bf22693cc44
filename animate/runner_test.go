package animate

import (
	"context"
	"testing"
)

func TestRunRequiresCommand(t *testing.T) {
	r := NewRunner(nil)
	if err := r.Run(context.Background(), "workspace/x"); err == nil {
		t.Error("Run succeeded without a configured command")
	}
}

func TestRunAppendsWorkspacePath(t *testing.T) {
	dir := t.TempDir()
	// "true" ignores its arguments and exits zero on any unix system.
	r := NewRunner([]string{"true"})
	if err := r.Run(context.Background(), dir); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestRunSurfacesToolFailure(t *testing.T) {
	r := NewRunner([]string{"false"})
	if err := r.Run(context.Background(), t.TempDir()); err == nil {
		t.Error("Run ignored a non-zero exit")
	}
}
