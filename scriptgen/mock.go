package scriptgen

import (
	"context"
	"fmt"
	"strings"
)

// Mock emits a fixed short script without calling any model. Useful for
// offline runs and tests.
type Mock struct{}

func (Mock) Generate(_ context.Context, req Request) (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("A conversation about %q by %s.\n\n", req.Title, req.Artist))
	sb.WriteString(fmt.Sprintf("[%s]: I keep coming back to the light in the upper corner.\n", SpeakerElena))
	sb.WriteString(fmt.Sprintf("[%s]: That's the underpainting showing through. Deliberate, I'd say.\n", SpeakerMarcus))
	sb.WriteString(fmt.Sprintf("[%s]: It makes the whole piece feel unfinished, in a good way.\n", SpeakerElena))
	sb.WriteString(fmt.Sprintf("[%s]: Unfinished is generous. But it does hold your attention.\n", SpeakerMarcus))
	return sb.String(), nil
}
