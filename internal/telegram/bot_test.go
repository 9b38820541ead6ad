package telegram

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vikibot/internal/llm"
	"vikibot/internal/memory"
	"vikibot/internal/prompt"
	"vikibot/internal/recognize"
	"vikibot/internal/reply"
	"vikibot/internal/users"
)

type fakeSender struct{ sent []string }

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m.Text)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) lastSent(t *testing.T) string {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatalf("nothing was sent")
	}
	return f.sent[len(f.sent)-1]
}

type fakeLLM struct {
	content string
	calls   int
}

func (f *fakeLLM) Generate(ctx context.Context, messages []llm.Message) (llm.Response, error) {
	f.calls++
	return llm.Response{Content: f.content, Model: "fake"}, nil
}

func newTestBot(t *testing.T) (*Bot, *fakeSender, *fakeLLM) {
	t.Helper()
	store, err := memory.NewStore(t.TempDir(), "Viki")
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	persona := prompt.Persona{Name: "Viktor", Nickname: "Viki", Role: "boyfriend", Language: "English", Location: time.UTC}
	fc := &fakeLLM{content: "Of course, my love!"}
	updater := memory.NewUpdater(store, recognize.NewClassifier(nil))
	responder := reply.New(updater, prompt.NewComposer(persona), fc, 4000, time.Second)
	registry, err := users.NewRegistry(nil)
	if err != nil {
		t.Fatalf("init registry: %v", err)
	}

	fs := &fakeSender{}
	b := &Bot{
		s:         fs,
		responder: responder,
		store:     store,
		registry:  registry,
		persona:   persona,
		convos:    newConversations(),
	}
	return b, fs, fc
}

func userMsg(text string) *tgbotapi.Message {
	m := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 42, UserName: "ava", FirstName: "Ava"},
		Chat:      &tgbotapi.Chat{ID: 420},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		cmd := strings.SplitN(text, " ", 2)[0]
		m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	}
	return m
}

func TestGreetingShortCircuit(t *testing.T) {
	b, fs, fc := newTestBot(t)
	b.handleIncomingMessage(context.Background(), userMsg("hi"))
	if fc.calls != 0 {
		t.Fatalf("greeting should not reach the backend")
	}
	if !strings.Contains(fs.lastSent(t), "Hello there") {
		t.Fatalf("unexpected greeting: %q", fs.lastSent(t))
	}
}

func TestChatGoesThroughResponder(t *testing.T) {
	b, fs, fc := newTestBot(t)
	b.handleIncomingMessage(context.Background(), userMsg("how was your day?"))
	if fc.calls != 1 {
		t.Fatalf("expected one backend call, got %d", fc.calls)
	}
	if fs.lastSent(t) != "Of course, my love!" {
		t.Fatalf("unexpected reply: %q", fs.lastSent(t))
	}
	if got := b.registry.List(); len(got) != 1 || got[0].ChatID != 420 {
		t.Fatalf("user not recorded: %+v", got)
	}
}

func TestOnboardingFlow(t *testing.T) {
	b, fs, fc := newTestBot(t)
	ctx := context.Background()

	b.handleIncomingMessage(ctx, userMsg("/start"))
	if !strings.Contains(fs.lastSent(t), "what should I call you") {
		t.Fatalf("start should ask for the name: %q", fs.lastSent(t))
	}

	b.handleIncomingMessage(ctx, userMsg("My name is Sarah"))
	if !strings.Contains(fs.lastSent(t), "Sarah") {
		t.Fatalf("name not acknowledged: %q", fs.lastSent(t))
	}

	b.handleIncomingMessage(ctx, userMsg("not a number"))
	if !strings.Contains(fs.lastSent(t), "age in numbers") {
		t.Fatalf("invalid age should be re-asked: %q", fs.lastSent(t))
	}

	b.handleIncomingMessage(ctx, userMsg("I am 25"))
	if !strings.Contains(fs.lastSent(t), "Where are you from") {
		t.Fatalf("age step should ask for location: %q", fs.lastSent(t))
	}

	b.handleIncomingMessage(ctx, userMsg("I live in Tehran"))
	last := fs.lastSent(t)
	for _, part := range []string{"Sarah", "25", "Tehran"} {
		if !strings.Contains(last, part) {
			t.Fatalf("summary missing %q: %q", part, last)
		}
	}

	p := b.store.Load("42")
	if p.Name != "Sarah" || p.Age != 25 || p.Location != "Tehran" {
		t.Fatalf("profile not stored: %+v", p)
	}
	if fc.calls != 0 {
		t.Fatalf("onboarding should never call the backend")
	}

	// A normal message after onboarding goes to the responder.
	b.handleIncomingMessage(ctx, userMsg("tell me a story"))
	if fc.calls != 1 {
		t.Fatalf("chat after onboarding should reach the backend")
	}
}

func TestStartWithKnownNameSkipsOnboarding(t *testing.T) {
	b, fs, _ := newTestBot(t)
	p := memory.NewProfile("Viki")
	p.Set("name", "Ava")
	if err := b.store.Save("42", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	b.handleIncomingMessage(context.Background(), userMsg("/start"))
	if !strings.Contains(fs.lastSent(t), "Welcome back, Ava") {
		t.Fatalf("expected welcome back: %q", fs.lastSent(t))
	}
	if b.convos.get(42) != stateNone {
		t.Fatalf("no onboarding expected for a known user")
	}
}

func TestMemoryCommand(t *testing.T) {
	b, fs, _ := newTestBot(t)
	ctx := context.Background()

	b.handleIncomingMessage(ctx, userMsg("/memory"))
	if !strings.Contains(fs.lastSent(t), "don't even know your name") {
		t.Fatalf("unexpected memory reply: %q", fs.lastSent(t))
	}

	p := memory.NewProfile("Viki")
	p.Set("name", "Ava")
	p.Set("likes", "pizza")
	if err := b.store.Save("42", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	b.handleIncomingMessage(ctx, userMsg("/memory"))
	last := fs.lastSent(t)
	if !strings.Contains(last, "Name: Ava") || !strings.Contains(last, "Likes: pizza") {
		t.Fatalf("memory not rendered: %q", last)
	}
}

func TestResetCommand(t *testing.T) {
	b, fs, _ := newTestBot(t)
	p := memory.NewProfile("Viki")
	p.Set("name", "Ava")
	if err := b.store.Save("42", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	b.handleIncomingMessage(context.Background(), userMsg("/reset"))
	if !strings.Contains(fs.lastSent(t), "reset") {
		t.Fatalf("unexpected reset reply: %q", fs.lastSent(t))
	}
	if got := b.store.Load("42"); got.Name != "" {
		t.Fatalf("profile not deleted: %+v", got)
	}
}
