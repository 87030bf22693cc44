package scriptgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"artdialogue/dialogue"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Starry Night", "Vincent van Gogh")

	for _, want := range []string{
		`"Starry Night"`,
		"Vincent van Gogh",
		"[Elena]: text",
		"[Marcus]: text",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestMockOutputParses(t *testing.T) {
	raw, err := Mock{}.Generate(context.Background(), Request{Title: "Test", Artist: "Nobody"})
	if err != nil {
		t.Fatal(err)
	}

	lines := dialogue.Parse(raw)
	if len(lines) != 4 {
		t.Fatalf("mock script parsed to %d lines, want 4", len(lines))
	}
	if lines[0].Speaker != SpeakerElena || lines[1].Speaker != SpeakerMarcus {
		t.Errorf("unexpected speakers: %q, %q", lines[0].Speaker, lines[1].Speaker)
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	jpg := filepath.Join(dir, "art.jpg")
	if err := os.WriteFile(jpg, []byte{0xff, 0xd8, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(jpg)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Mime != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", img.Mime)
	}
	if !strings.HasPrefix(img.DataURL(), "data:image/jpeg;base64,") {
		t.Errorf("unexpected data URL: %q", img.DataURL())
	}

	empty := filepath.Join(dir, "empty.png")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(empty); err == nil {
		t.Error("LoadImage accepted an empty file")
	}

	bad := filepath.Join(dir, "art.tiff")
	if err := os.WriteFile(bad, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(bad); err == nil {
		t.Error("LoadImage accepted an unsupported extension")
	}

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("LoadImage accepted a missing file")
	}
}
