package dialogue

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes lines to path as a pretty-printed JSON array, the format the
// voice stage and downstream tools read back.
func Save(path string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads a dialogue artifact written by Save.
func Load(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("parse dialogue file %s: %w", path, err)
	}
	return lines, nil
}
