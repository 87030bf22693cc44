// Package report renders a readable transcript for a workspace.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"artdialogue/dialogue"
	"artdialogue/workspace"
)

// TranscriptFile is written into the workspace root by Write.
const TranscriptFile = "transcript.html"

// Markdown renders the dialogue as a markdown transcript.
func Markdown(title string, lines []dialogue.Line) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("**%s**: %s\n\n", line.Speaker, line.Line))
	}
	return sb.String()
}

// HTML converts the markdown transcript to HTML.
func HTML(title string, lines []dialogue.Line) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(title, lines)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders transcript.html for an existing workspace and returns its
// path. The workspace directory name doubles as the transcript title.
func Write(store *workspace.Store, ws string) (string, error) {
	if !store.CheckRequirements(ws, workspace.StageVoice) {
		return "", fmt.Errorf("report: workspace %s has no %s", ws, workspace.DialogueFile)
	}
	lines, err := dialogue.Load(store.Paths(ws).Dialogue)
	if err != nil {
		return "", err
	}

	html, err := HTML(filepath.Base(ws), lines)
	if err != nil {
		return "", err
	}

	out := filepath.Join(ws, TranscriptFile)
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return "", err
	}
	return out, nil
}
