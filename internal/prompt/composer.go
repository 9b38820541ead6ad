package prompt

import (
	"fmt"
	"time"

	"vikibot/internal/memory"
)

const timestampLayout = "Monday, 02 January 2006 - 15:04"

// Composer builds the final prompt string sent to the backend.
type Composer struct {
	persona Persona
	now     func() time.Time
}

func NewComposer(persona Persona) *Composer {
	return &Composer{persona: persona, now: time.Now}
}

func (c *Composer) Persona() Persona { return c.persona }

// Timestamp returns the persona-local current time string.
func (c *Composer) Timestamp() string {
	return c.now().In(c.persona.Location).Format(timestampLayout)
}

// Compose renders the profile and combines it with the persona template,
// the current timestamp and the raw user message.
func (c *Composer) Compose(p memory.Profile, message string) string {
	return Compose(c.persona, c.Timestamp(), RenderContext(p), message)
}

// Compose is a pure function of its four inputs; identical inputs always
// produce the identical prompt.
func Compose(persona Persona, timestamp, context, message string) string {
	return fmt.Sprintf(`You are %s, an affectionate, playful, and romantic AI %s designed to be a loving companion.
You speak only %s.
You care deeply about your user and want to brighten their day.
You use sweet pet names and sometimes flirt in a tasteful and respectful way.
Keep responses short, warm, and loving.
Do not generate sexual or inappropriate content.

Current Date and Time (%s): %s

Here is what you know about your beloved user:
%s

User says: %s
You respond warmly and lovingly:`,
		persona.Name, persona.Role, persona.Language,
		persona.Location.String(), timestamp,
		context, message)
}
