// Package pipeline sequences the script and voice stages for one artwork.
// Each stage is independently invocable against a workspace; the full
// pipeline is their composition.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"artdialogue/dialogue"
	"artdialogue/scriptgen"
	"artdialogue/transcode"
	"artdialogue/voice"
	"artdialogue/workspace"
)

// Orchestrator wires the collaborators behind the pipeline stages. All
// dependencies are injected; there is no package-level state. Generator is
// only needed by RunScript, Synthesizer only by RunVoice, and a nil
// Transcoder skips the derived-format step.
type Orchestrator struct {
	Store       *workspace.Store
	Generator   scriptgen.Generator
	Synthesizer voice.Synthesizer
	Voices      voice.Map
	Transcoder  transcode.Transcoder
	Observer    Observer
}

// ScriptRequest describes one script-generation run.
type ScriptRequest struct {
	Image  scriptgen.Image
	Title  string
	Artist string
	// Workspace reuses an existing workspace instead of creating one.
	Workspace string
}

// ScriptResult is what the script stage produced.
type ScriptResult struct {
	RunID     string
	Workspace string
	Raw       string
	Lines     []dialogue.Line
}

func (o *Orchestrator) observer() Observer {
	if o.Observer == nil {
		return NopObserver{}
	}
	return o.Observer
}

// RunScript generates a script for one artwork, parses it, and persists the
// raw text and the parsed dialogue into a workspace. Precondition failures
// (missing image data, empty title or artist, invalid workspace) are fatal.
func (o *Orchestrator) RunScript(ctx context.Context, req ScriptRequest) (*ScriptResult, error) {
	if len(req.Image.Data) == 0 {
		return nil, fmt.Errorf("script stage: image data is required")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Artist) == "" {
		return nil, fmt.Errorf("script stage: title and artist are required")
	}

	ws := req.Workspace
	if ws == "" {
		created, err := o.Store.Create(req.Title)
		if err != nil {
			return nil, err
		}
		ws = created
	} else if status := o.Store.Validate(ws); status != workspace.StatusValid {
		return nil, fmt.Errorf("script stage: invalid workspace %s: %s", ws, status)
	}

	obs := o.observer()
	runID := uuid.NewString()
	obs.StageStarted(runID, workspace.StageScript, ws)

	raw, err := o.Generator.Generate(ctx, scriptgen.Request{
		Image:  req.Image,
		Title:  req.Title,
		Artist: req.Artist,
	})
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}

	paths := o.Store.Paths(ws)
	if err := os.WriteFile(paths.Script, []byte(raw), 0o644); err != nil {
		return nil, fmt.Errorf("write script artifact: %w", err)
	}

	lines := dialogue.Parse(raw)
	if err := dialogue.Save(paths.Dialogue, lines); err != nil {
		return nil, fmt.Errorf("write dialogue artifact: %w", err)
	}

	obs.StageCompleted(runID, workspace.StageScript, ws, len(lines))
	return &ScriptResult{RunID: runID, Workspace: ws, Raw: raw, Lines: lines}, nil
}

// RunVoice synthesizes audio for every dialogue line in an existing
// workspace, in order, naming artifacts by 1-based index and sanitized
// speaker. One failed line is reported through the observer and skipped; it
// never aborts the batch. The returned paths cover the lines that
// succeeded, so the count may be shorter than the dialogue.
func (o *Orchestrator) RunVoice(ctx context.Context, ws string) ([]string, error) {
	if !o.Store.CheckRequirements(ws, workspace.StageVoice) {
		return nil, fmt.Errorf("voice stage: workspace %s is missing %s; run the script stage first", ws, workspace.DialogueFile)
	}

	paths := o.Store.Paths(ws)
	lines, err := dialogue.Load(paths.Dialogue)
	if err != nil {
		return nil, fmt.Errorf("voice stage: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("voice stage: %s contains no dialogue lines", paths.Dialogue)
	}

	if err := os.MkdirAll(paths.Audio, 0o755); err != nil {
		return nil, fmt.Errorf("ensure audio dir: %w", err)
	}

	obs := o.observer()
	runID := uuid.NewString()
	obs.StageStarted(runID, workspace.StageVoice, ws)

	var produced []string
	for i, line := range lines {
		index := i + 1
		target := filepath.Join(paths.Audio, fmt.Sprintf("%02d_%s.mp3", index, SanitizeSpeaker(line.Speaker)))

		audio, err := o.Synthesizer.Synthesize(ctx, line.Line, o.Voices.Resolve(line.Speaker))
		if err != nil {
			obs.LineFailed(runID, index, line.Speaker, fmt.Errorf("synthesize: %w", err))
			continue
		}
		if err := os.WriteFile(target, audio, 0o644); err != nil {
			obs.LineFailed(runID, index, line.Speaker, fmt.Errorf("write %s: %w", target, err))
			continue
		}
		obs.LineSynthesized(runID, index, line.Speaker, target)
		produced = append(produced, target)

		if o.Transcoder != nil {
			wav := strings.TrimSuffix(target, ".mp3") + ".wav"
			if err := o.Transcoder.Transcode(ctx, target, wav); err != nil {
				obs.LineFailed(runID, index, line.Speaker, fmt.Errorf("transcode: %w", err))
			}
		}
	}

	obs.StageCompleted(runID, workspace.StageVoice, ws, len(produced))
	return produced, nil
}

// Run executes the full pipeline: script stage, then voice stage against
// the resulting workspace. Either stage's fatal error aborts the remainder.
// There is no rollback; partial artifacts stay on disk for inspection and
// retry by re-invoking a stage against the same workspace.
func (o *Orchestrator) Run(ctx context.Context, req ScriptRequest) (*ScriptResult, []string, error) {
	res, err := o.RunScript(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	audio, err := o.RunVoice(ctx, res.Workspace)
	if err != nil {
		return res, nil, err
	}
	return res, audio, nil
}

var speakerWS = regexp.MustCompile(`\s+`)

// SanitizeSpeaker turns a speaker label into an audio filename component:
// whitespace becomes underscore, the rest is lowercased.
func SanitizeSpeaker(speaker string) string {
	return strings.ToLower(speakerWS.ReplaceAllString(strings.TrimSpace(speaker), "_"))
}
