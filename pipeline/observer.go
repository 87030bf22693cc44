package pipeline

import "github.com/charmbracelet/log"

// Observer receives pipeline lifecycle events. The orchestrator stays free
// of output formatting; callers decide how events are rendered.
type Observer interface {
	StageStarted(runID, stage, workspacePath string)
	LineSynthesized(runID string, index int, speaker, path string)
	LineFailed(runID string, index int, speaker string, err error)
	StageCompleted(runID, stage, workspacePath string, produced int)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) StageStarted(string, string, string)         {}
func (NopObserver) LineSynthesized(string, int, string, string) {}
func (NopObserver) LineFailed(string, int, string, error)       {}
func (NopObserver) StageCompleted(string, string, string, int)  {}

// LogObserver renders events through a charmbracelet logger.
type LogObserver struct {
	Logger *log.Logger
}

func (l LogObserver) StageStarted(runID, stage, ws string) {
	l.Logger.Info("stage started", "run", runID, "stage", stage, "workspace", ws)
}

func (l LogObserver) LineSynthesized(runID string, index int, speaker, path string) {
	l.Logger.Info("line synthesized", "run", runID, "line", index, "speaker", speaker, "path", path)
}

func (l LogObserver) LineFailed(runID string, index int, speaker string, err error) {
	l.Logger.Error("line failed", "run", runID, "line", index, "speaker", speaker, "err", err)
}

func (l LogObserver) StageCompleted(runID, stage, ws string, produced int) {
	l.Logger.Info("stage complete", "run", runID, "stage", stage, "workspace", ws, "produced", produced)
}
