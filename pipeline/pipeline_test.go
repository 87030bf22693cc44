package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"artdialogue/dialogue"
	"artdialogue/scriptgen"
	"artdialogue/voice"
	"artdialogue/workspace"
)

type fakeGen struct {
	text string
	err  error
}

func (f fakeGen) Generate(context.Context, scriptgen.Request) (string, error) {
	return f.text, f.err
}

// fakeSynth fails for utterances containing failOn, records resolved voices.
type fakeSynth struct {
	failOn string
	voices []string
}

func (f *fakeSynth) Synthesize(_ context.Context, text, voiceID string) ([]byte, error) {
	f.voices = append(f.voices, voiceID)
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, errors.New("synthesis refused")
	}
	return []byte("audio:" + text), nil
}

type fakeTranscoder struct {
	calls []string
	err   error
}

func (f *fakeTranscoder) Transcode(_ context.Context, in, out string) error {
	f.calls = append(f.calls, out)
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(out, []byte("wav"), 0o644)
}

type countingObserver struct {
	NopObserver
	failed int
}

func (c *countingObserver) LineFailed(string, int, string, error) { c.failed++ }

const script = "A title line\n[Elena]: One\n[Marcus]: Two\n[Elena]: Three\n"

func testImage() scriptgen.Image {
	return scriptgen.Image{Data: []byte{1, 2, 3}, Mime: "image/png"}
}

func newOrchestrator(t *testing.T) (*Orchestrator, *fakeSynth) {
	t.Helper()
	synth := &fakeSynth{}
	return &Orchestrator{
		Store:       workspace.NewStore(filepath.Join(t.TempDir(), "workspace")),
		Generator:   fakeGen{text: script},
		Synthesizer: synth,
		Voices:      voice.NewMap(map[string]string{"elena": "v-elena", "marcus": "v-marcus"}, "v-default"),
	}, synth
}

func TestRunScript(t *testing.T) {
	orch, _ := newOrchestrator(t)

	res, err := orch.RunScript(context.Background(), ScriptRequest{
		Image: testImage(), Title: "My Art!", Artist: "Someone",
	})
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if res.RunID == "" {
		t.Error("missing run id")
	}
	if len(res.Lines) != 3 {
		t.Fatalf("parsed %d lines, want 3", len(res.Lines))
	}

	paths := orch.Store.Paths(res.Workspace)
	raw, err := os.ReadFile(paths.Script)
	if err != nil || string(raw) != script {
		t.Errorf("script artifact not persisted verbatim: %q, %v", raw, err)
	}
	persisted, err := dialogue.Load(paths.Dialogue)
	if err != nil || len(persisted) != 3 {
		t.Errorf("dialogue artifact broken: %v, %v", persisted, err)
	}
}

func TestRunScriptPreconditions(t *testing.T) {
	orch, _ := newOrchestrator(t)
	ctx := context.Background()

	if _, err := orch.RunScript(ctx, ScriptRequest{Title: "t", Artist: "a"}); err == nil {
		t.Error("accepted empty image")
	}
	if _, err := orch.RunScript(ctx, ScriptRequest{Image: testImage(), Artist: "a"}); err == nil {
		t.Error("accepted empty title")
	}
	if _, err := orch.RunScript(ctx, ScriptRequest{Image: testImage(), Title: "t", Artist: "a", Workspace: "does/not/exist"}); err == nil {
		t.Error("accepted invalid workspace")
	}
}

func TestRunScriptReusesWorkspace(t *testing.T) {
	orch, _ := newOrchestrator(t)
	ws, err := orch.Store.Create("existing")
	if err != nil {
		t.Fatal(err)
	}

	res, err := orch.RunScript(context.Background(), ScriptRequest{
		Image: testImage(), Title: "t", Artist: "a", Workspace: ws,
	})
	if err != nil {
		t.Fatalf("RunScript: %v", err)
	}
	if res.Workspace != ws {
		t.Errorf("workspace = %q, want reuse of %q", res.Workspace, ws)
	}
}

func TestRunVoiceRequiresDialogue(t *testing.T) {
	orch, _ := newOrchestrator(t)
	ws, err := orch.Store.Create("fresh")
	if err != nil {
		t.Fatal(err)
	}

	_, err = orch.RunVoice(context.Background(), ws)
	if err == nil || !strings.Contains(err.Error(), workspace.DialogueFile) {
		t.Errorf("error %v does not name the missing dialogue artifact", err)
	}
}

func TestRunVoiceRejectsEmptyDialogue(t *testing.T) {
	orch, _ := newOrchestrator(t)
	ws, err := orch.Store.Create("empty")
	if err != nil {
		t.Fatal(err)
	}
	if err := dialogue.Save(orch.Store.Paths(ws).Dialogue, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := orch.RunVoice(context.Background(), ws); err == nil {
		t.Error("accepted an empty dialogue artifact")
	}
}

func TestRunVoiceNamingAndVoices(t *testing.T) {
	orch, synth := newOrchestrator(t)
	res, _, err := runFull(orch)
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(orch.Store.Paths(res.Workspace).Audio)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"01_elena.mp3", "02_marcus.mp3", "03_elena.mp3"}
	if fmt.Sprint(names) != fmt.Sprint(want) {
		t.Errorf("audio files %v, want %v", names, want)
	}

	wantVoices := []string{"v-elena", "v-marcus", "v-elena"}
	if fmt.Sprint(synth.voices) != fmt.Sprint(wantVoices) {
		t.Errorf("voices %v, want %v", synth.voices, wantVoices)
	}
}

func TestRunVoicePerLineIsolation(t *testing.T) {
	orch, synth := newOrchestrator(t)
	synth.failOn = "Two"
	obs := &countingObserver{}
	orch.Observer = obs

	res, audio, err := runFull(orch)
	if err != nil {
		t.Fatalf("batch aborted by a single bad line: %v", err)
	}
	if len(audio) != 2 {
		t.Errorf("produced %d artifacts, want 2", len(audio))
	}
	if obs.failed != 1 {
		t.Errorf("observer saw %d failures, want 1", obs.failed)
	}

	audioDir := orch.Store.Paths(res.Workspace).Audio
	if _, err := os.Stat(filepath.Join(audioDir, "02_marcus.mp3")); err == nil {
		t.Error("failed line left an artifact behind")
	}
	for _, name := range []string{"01_elena.mp3", "03_elena.mp3"} {
		if _, err := os.Stat(filepath.Join(audioDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestRunVoiceIdempotent(t *testing.T) {
	orch, _ := newOrchestrator(t)
	res, first, err := runFull(orch)
	if err != nil {
		t.Fatal(err)
	}

	second, err := orch.RunVoice(context.Background(), res.Workspace)
	if err != nil {
		t.Fatalf("second RunVoice: %v", err)
	}
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Errorf("reruns produced different paths:\n%v\n%v", first, second)
	}

	entries, err := os.ReadDir(orch.Store.Paths(res.Workspace).Audio)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("rerun duplicated artifacts: %d files, want 3", len(entries))
	}
}

func TestRunVoiceTranscodeIsolation(t *testing.T) {
	orch, _ := newOrchestrator(t)
	tc := &fakeTranscoder{err: errors.New("resample failed")}
	orch.Transcoder = tc
	obs := &countingObserver{}
	orch.Observer = obs

	_, audio, err := runFull(orch)
	if err != nil {
		t.Fatalf("transcode failures aborted the batch: %v", err)
	}
	if len(audio) != 3 {
		t.Errorf("primary artifacts lost to transcode failures: %d, want 3", len(audio))
	}
	if len(tc.calls) != 3 {
		t.Errorf("transcoder invoked %d times, want 3", len(tc.calls))
	}
	if obs.failed != 3 {
		t.Errorf("observer saw %d failures, want 3", obs.failed)
	}
	for _, out := range tc.calls {
		if !strings.HasSuffix(out, ".wav") {
			t.Errorf("derived artifact %q does not share the base name with a .wav extension", out)
		}
	}
}

func TestRunGeneratorFailureIsFatal(t *testing.T) {
	orch, _ := newOrchestrator(t)
	orch.Generator = fakeGen{err: errors.New("api down")}

	if _, _, err := orch.Run(context.Background(), ScriptRequest{
		Image: testImage(), Title: "t", Artist: "a",
	}); err == nil {
		t.Error("generator failure did not abort the pipeline")
	}
}

func TestSanitizeSpeaker(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Elena", "elena"},
		{"Critic 1", "critic_1"},
		{"  Art  Critic  ", "art_critic"},
		{"MARCUS", "marcus"},
	}
	for _, tc := range cases {
		if got := SanitizeSpeaker(tc.in); got != tc.want {
			t.Errorf("SanitizeSpeaker(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func runFull(orch *Orchestrator) (*ScriptResult, []string, error) {
	return orch.Run(context.Background(), ScriptRequest{
		Image: testImage(), Title: "My Art!", Artist: "Someone",
	})
}
