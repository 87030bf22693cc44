package scriptgen

import (
	"fmt"
	"strings"
)

// Speakers the prompt asks the model for. The parser does not enforce them;
// the voice stage maps unrecognized labels to a default voice.
const (
	SpeakerElena  = "Elena"
	SpeakerMarcus = "Marcus"
)

const systemPrompt = "You write short spoken dialogues between two art critics. " +
	"Output only the dialogue lines, no stage directions, headings, or commentary."

// BuildPrompt renders the user instructions for one artwork.
func BuildPrompt(title, artist string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("The attached image is %q by %s.\n", title, artist))
	sb.WriteString("Write a natural conversation between two critics standing in front of it:\n")
	sb.WriteString(fmt.Sprintf("- %s: warm, observant, drawn to color and composition.\n", SpeakerElena))
	sb.WriteString(fmt.Sprintf("- %s: dry, analytical, interested in technique and art history.\n", SpeakerMarcus))
	sb.WriteString("Rules:\n")
	sb.WriteString("- 8 to 12 lines total, alternating naturally.\n")
	sb.WriteString(fmt.Sprintf("- Format every line exactly as [%s]: text or [%s]: text.\n", SpeakerElena, SpeakerMarcus))
	sb.WriteString("- Keep each line to one or two sentences, on a single line.\n")
	sb.WriteString("- They should disagree at least once.\n")
	return sb.String()
}
