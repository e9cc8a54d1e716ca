package agent

import (
	"fmt"
	"strings"
)

// maxListedAttributes bounds the hint list embedded in load errors.
const maxListedAttributes = 10

// LoadError reports a locator that could not be resolved. Available
// lists up to 10 attributes of the module (or registered modules, when
// the module itself is unknown) to guide the caller.
type LoadError struct {
	Locator   string
	Reason    string
	Available []string
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("cannot load agent %q: %s", e.Locator, e.Reason)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

// SignatureError reports a registered value whose shape cannot be
// adapted to the Agent interface.
type SignatureError struct {
	Locator string
	Reason  string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("agent %q has an unusable signature: %s", e.Locator, e.Reason)
}

func truncateAvailable(names []string) []string {
	if len(names) > maxListedAttributes {
		return names[:maxListedAttributes]
	}
	return names
}
