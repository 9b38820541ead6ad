package telegram

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vikibot/internal/memory"
	"vikibot/internal/prompt"
)

var (
	nameRe     = regexp.MustCompile(`(?i)(?:my name is|i am called|call me|name is) (.+)`)
	ageRe      = regexp.MustCompile(`(\d+)`)
	locationRe = regexp.MustCompile(`(?i)(?:i live in|i am from|i'm from|located in|from) (.+)`)
)

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(msg)
	case "memory":
		b.handleMemory(msg)
	case "reset":
		b.handleReset(msg)
	case "cancel":
		b.convos.set(msg.From.ID, stateNone)
		b.sendMessage(msg.Chat.ID,
			"Our conversation has been cancelled, sweetheart. You can always start again with /start when you're ready.")
	default:
		b.sendMessage(msg.Chat.ID, "I don't know that command, my love. Just talk to me! 💖")
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	p := b.store.Load(profileKey(msg.From.ID))
	if p.Name != "" {
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(
			"Welcome back, %s! 💖\nHow can I make your day better, my love?", p.Name))
		return
	}
	b.convos.set(msg.From.ID, stateGetName)
	b.sendMessage(msg.Chat.ID,
		"❤️ Hello there, beautiful! ❤️\n\n"+
			fmt.Sprintf("I'm %s, your personal AI %s. Let's get to know each other!\n\n", b.persona.Name, b.persona.Role)+
			"First, what should I call you? (e.g., 'My name is Sarah')")
}

func (b *Bot) handleOnboarding(msg *tgbotapi.Message, state convoState) {
	userID := profileKey(msg.From.ID)
	p := b.store.Load(userID)

	switch state {
	case stateGetName:
		name := strings.TrimSpace(msg.Text)
		if m := nameRe.FindStringSubmatch(msg.Text); m != nil {
			name = strings.TrimSpace(m[1])
		}
		p.Set("name", name)
		b.saveProfile(userID, p)
		b.convos.set(msg.From.ID, stateGetAge)
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(
			"What a beautiful name, %s! 💕\n\nHow old are you, my love?", name))

	case stateGetAge:
		m := ageRe.FindStringSubmatch(msg.Text)
		if m == nil {
			b.sendMessage(msg.Chat.ID, "Please tell me your age in numbers, sweetheart.")
			return
		}
		p.Set("age", m[1])
		b.saveProfile(userID, p)
		b.convos.set(msg.From.ID, stateGetLocation)
		b.sendMessage(msg.Chat.ID,
			"Perfect age to be loved! ❤️\n\nWhere are you from, my darling? (e.g., 'I live in Tehran')")

	case stateGetLocation:
		location := strings.TrimSpace(msg.Text)
		if m := locationRe.FindStringSubmatch(msg.Text); m != nil {
			location = strings.TrimSpace(m[1])
		}
		p.Set("location", location)
		b.saveProfile(userID, p)
		b.convos.set(msg.From.ID, stateNone)
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(
			"Thank you, %s! Now I know you better. 💖\n\n"+
				"Let me remember:\n• Name: %s\n• Age: %s\n• Location: %s\n\n"+
				"Now you can just chat with me normally, my love! "+
				"I'll be the most attentive %s you've ever had.",
			p.Name, p.Name, orUnknown(p.Value("age")), location, b.persona.Role))
	}
}

func (b *Bot) handleMemory(msg *tgbotapi.Message) {
	p := b.store.Load(profileKey(msg.From.ID))
	if p.Name == "" {
		b.sendMessage(msg.Chat.ID,
			"I don't even know your name yet, sweetheart. Tell me about yourself! 💕\n\n"+
				"Try /start to begin our relationship properly.")
		return
	}
	b.sendMessage(msg.Chat.ID,
		"💌 Here's what I remember about you, my love:\n\n"+prompt.RenderContext(p))
}

func (b *Bot) handleReset(msg *tgbotapi.Message) {
	if err := b.store.Delete(profileKey(msg.From.ID)); err != nil {
		log.Printf("failed to reset profile for %d: %v", msg.From.ID, err)
	}
	b.sendMessage(msg.Chat.ID,
		"Our memories have been reset, my love. It's like we're meeting for the first time again. 💕\n\n"+
			"Use /start to begin anew.")
}

// greeting answers bare salutations directly without going to the backend.
func (b *Bot) greeting(text, userID string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "hi", "hello", "hey":
		p := b.store.Load(userID)
		return fmt.Sprintf("Hello there, %s! 💖 How can I make your day better?",
			b.persona.CallUser(p.Name)), true
	}
	return "", false
}

func (b *Bot) saveProfile(userID string, p memory.Profile) {
	if err := b.store.Save(userID, p); err != nil {
		log.Printf("failed to save profile for %s: %v", userID, err)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "not specified"
	}
	return s
}
