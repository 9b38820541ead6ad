package chatlog

import "time"

// Entry is one logged exchange line: either the user's message or the
// reply sent back, with the emotion detected at that point.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Emotion   string    `json:"emotion,omitempty"`
	Canned    bool      `json:"canned,omitempty"`
}

type Recorder interface {
	Append(entry Entry) error
	Load() ([]Entry, error)
}
