package telegram

import (
	"context"
	"log"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vikibot/internal/memory"
	"vikibot/internal/prompt"
	"vikibot/internal/reply"
	"vikibot/internal/users"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	responder   *reply.Responder
	store       *memory.Store
	registry    *users.Registry
	persona     prompt.Persona
	typingDelay time.Duration
	convos      *conversations
}

func New(botToken string, responder *reply.Responder, store *memory.Store, registry *users.Registry, persona prompt.Persona, typingDelay time.Duration) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		responder:   responder,
		store:       store,
		registry:    registry,
		persona:     persona,
		typingDelay: typingDelay,
		convos:      newConversations(),
	}, nil
}

// Start consumes the update long poll until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleIncomingMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	if err := b.registry.Seen(users.User{
		ID:        msg.From.ID,
		ChatID:    msg.Chat.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
	}); err != nil {
		log.Printf("failed to record user %d: %v", msg.From.ID, err)
	}

	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	if state := b.convos.get(msg.From.ID); state != stateNone {
		b.handleOnboarding(msg, state)
		return
	}

	b.handleChat(ctx, msg)
}

func (b *Bot) handleChat(ctx context.Context, msg *tgbotapi.Message) {
	userID := profileKey(msg.From.ID)

	if text, ok := b.greeting(msg.Text, userID); ok {
		b.sendMessage(msg.Chat.ID, text)
		return
	}

	b.sendTyping(msg.Chat.ID)
	if b.typingDelay > 0 {
		time.Sleep(b.typingDelay)
	}

	b.sendMessage(msg.Chat.ID, b.responder.Reply(ctx, userID, msg.Text))
}

func (b *Bot) sendTyping(chatID int64) {
	if _, err := b.s.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		log.Printf("failed to send typing action: %v", err)
	}
}

// SendTo delivers an out-of-band message, used by the daily check-in.
func (b *Bot) SendTo(chatID int64, text string) {
	b.sendMessage(chatID, text)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func profileKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
