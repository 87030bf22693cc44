// Package workspace owns the on-disk layout for one artwork run: a uniquely
// named directory holding the raw script, the parsed dialogue, and the
// generated audio and animation assets.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Artifact names inside one workspace directory. Downstream tools address
// these by convention, so they never change.
const (
	ScriptFile   = "script.txt"
	DialogueFile = "dialogue.json"
	AudioDir     = "audio"
	UnrealDir    = "unreal_assets"
)

// Stage names accepted by CheckRequirements.
const (
	StageScript = "script"
	StageVoice  = "voice"
)

// Status classifies a workspace path.
type Status int

const (
	StatusValid Status = iota
	StatusNotFound
	StatusNotADirectory
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusNotFound:
		return "not found"
	case StatusNotADirectory:
		return "not a directory"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Paths holds the canonical artifact locations for one workspace.
type Paths struct {
	Script   string
	Dialogue string
	Audio    string
	Unreal   string
}

// Store creates and validates workspaces under a base directory.
type Store struct {
	Base string
}

func NewStore(base string) *Store {
	if base == "" {
		base = "workspace"
	}
	return &Store{Base: base}
}

var (
	unsafeChars   = regexp.MustCompile(`[^a-zA-Z0-9\s_-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// SanitizeTitle reduces an artwork title to a lowercase, path-safe name
// component: disallowed characters stripped, whitespace runs collapsed to a
// single underscore.
func SanitizeTitle(title string) string {
	s := unsafeChars.ReplaceAllString(title, "")
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// Create materializes a new workspace, audio subdirectory included, named
// after the sanitized title and the current UTC time, and returns its path.
// Second precision keeps names unique across normal interactive use;
// workspaces are never deleted by this system.
func (s *Store) Create(title string) (string, error) {
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	path := filepath.Join(s.Base, SanitizeTitle(title)+"_"+stamp)
	if err := os.MkdirAll(filepath.Join(path, AudioDir), 0o755); err != nil {
		return "", fmt.Errorf("create workspace %s: %w", path, err)
	}
	return path, nil
}

// Validate reports whether path is a usable workspace directory.
func (s *Store) Validate(path string) Status {
	info, err := os.Stat(path)
	if err != nil {
		return StatusNotFound
	}
	if !info.IsDir() {
		return StatusNotADirectory
	}
	return StatusValid
}

// Paths resolves the canonical artifact paths. Pure path joining, no I/O.
func (s *Store) Paths(path string) Paths {
	return Paths{
		Script:   filepath.Join(path, ScriptFile),
		Dialogue: filepath.Join(path, DialogueFile),
		Audio:    filepath.Join(path, AudioDir),
		Unreal:   filepath.Join(path, UnrealDir),
	}
}

// CheckRequirements reports whether a workspace satisfies the preconditions
// of the named stage. The script stage has none; the voice stage needs a
// valid workspace with a dialogue artifact. Unknown stages are never
// satisfied.
func (s *Store) CheckRequirements(path, stage string) bool {
	switch stage {
	case StageScript:
		return true
	case StageVoice:
		if s.Validate(path) != StatusValid {
			return false
		}
		_, err := os.Stat(s.Paths(path).Dialogue)
		return err == nil
	default:
		return false
	}
}
