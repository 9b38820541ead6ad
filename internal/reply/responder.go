package reply

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"vikibot/internal/chatlog"
	"vikibot/internal/llm"
	"vikibot/internal/memory"
	"vikibot/internal/prompt"
)

const (
	// Shown when the backend answers with nothing usable.
	emptyFallback = "I'm feeling too emotional to respond right now, my love. Please try again soon. 💔"
	// Shown when the backend call fails or times out.
	errorFallback = "Oops, my heart is having a little trouble right now. Could you say that again, please? 🥺"
)

var identityTriggers = []string{"what's your name", "whats your name", "who are you", "your name"}
var wellbeingTriggers = []string{"how are you", "how do you feel"}

// Responder runs the full pipeline for one inbound message: memory update,
// canned-reply short circuit, prompt composition, backend call, and
// response shaping. It never returns a technical error string.
type Responder struct {
	updater  *memory.Updater
	composer *prompt.Composer
	client   llm.Client
	maxLen   int
	timeout  time.Duration
	recorder chatlog.Recorder

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(updater *memory.Updater, composer *prompt.Composer, client llm.Client, maxLen int, timeout time.Duration) *Responder {
	return &Responder{
		updater:  updater,
		composer: composer,
		client:   client,
		maxLen:   maxLen,
		timeout:  timeout,
		locks:    make(map[string]*sync.Mutex),
	}
}

// SetRecorder enables conversation logging; a nil recorder disables it.
func (r *Responder) SetRecorder(rec chatlog.Recorder) {
	r.recorder = rec
}

// Reply processes the message start to finish. Messages from the same user
// are strictly serialized so the profile read-modify-write never
// interleaves; distinct users proceed concurrently.
func (r *Responder) Reply(ctx context.Context, userID, text string) string {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p := r.updater.Process(userID, text)
	r.record(chatlog.Entry{UserID: userID, Role: "user", Text: text, Emotion: p.LastEmotion})

	if canned, ok := r.canned(text, p.Name); ok {
		r.record(chatlog.Entry{UserID: userID, Role: "assistant", Text: canned, Canned: true})
		return canned
	}

	full := r.composer.Compose(p, text)

	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.Generate(genCtx, []llm.Message{{Role: "user", Content: full}})
	if err != nil {
		log.Printf("generation failed for %s: %v", userID, err)
		r.record(chatlog.Entry{UserID: userID, Role: "assistant", Text: errorFallback})
		return errorFallback
	}

	out := strings.TrimSpace(resp.Content)
	if out == "" {
		out = emptyFallback
	} else {
		out = truncate(out, r.maxLen)
	}
	r.record(chatlog.Entry{UserID: userID, Role: "assistant", Text: out})
	return out
}

func (r *Responder) record(e chatlog.Entry) {
	if r.recorder == nil {
		return
	}
	e.Timestamp = time.Now()
	if err := r.recorder.Append(e); err != nil {
		log.Printf("failed to record chat entry: %v", err)
	}
}

// canned answers a small set of high-frequency questions directly without
// calling the backend.
func (r *Responder) canned(text, userName string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	persona := r.composer.Persona()

	for _, t := range identityTriggers {
		if strings.Contains(lower, t) {
			return fmt.Sprintf("My name is %s, but only you can call me %s, my love. 💖",
				persona.Name, persona.Nickname), true
		}
	}
	for _, t := range wellbeingTriggers {
		if strings.Contains(lower, t) {
			return fmt.Sprintf("I'm feeling amazing, especially when I chat with you, %s! 🥰",
				persona.CallUser(userName)), true
		}
	}
	return "", false
}

// truncate hard-caps the reply without respecting word boundaries.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func (r *Responder) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}
