package voice

import "strings"

// Stock voices for the two critics the prompt asks for.
const (
	elenaVoiceID  = "21m00Tcm4TlvDq8ikWAM"
	marcusVoiceID = "TxGEqnHWrfWFTfGW9XjX"
)

// Map resolves speaker labels to voice IDs. Lookup is case-insensitive and
// unknown speakers fall back to the default voice rather than failing, so a
// model inventing a third speaker never breaks the voice stage.
type Map struct {
	voices    map[string]string
	defaultID string
}

// NewMap builds a Map from speaker→voice entries; keys are normalized to
// lowercase. An empty defaultID falls back to Elena's voice.
func NewMap(entries map[string]string, defaultID string) Map {
	voices := make(map[string]string, len(entries))
	for speaker, id := range entries {
		if id == "" {
			continue
		}
		voices[strings.ToLower(strings.TrimSpace(speaker))] = id
	}
	if defaultID == "" {
		defaultID = elenaVoiceID
	}
	return Map{voices: voices, defaultID: defaultID}
}

// DefaultMap covers the speakers the prompt asks for.
func DefaultMap() Map {
	return NewMap(map[string]string{
		"elena":  elenaVoiceID,
		"marcus": marcusVoiceID,
	}, elenaVoiceID)
}

// Resolve returns the voice for a speaker label, or the default voice.
func (m Map) Resolve(speaker string) string {
	if id, ok := m.voices[strings.ToLower(strings.TrimSpace(speaker))]; ok {
		return id
	}
	return m.defaultID
}
