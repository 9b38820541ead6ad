package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"vikibot/internal/chatlog"
	"vikibot/internal/config"
	"vikibot/internal/llm"
	"vikibot/internal/memory"
	"vikibot/internal/prompt"
	"vikibot/internal/recognize"
	"vikibot/internal/reply"
	"vikibot/internal/scheduler"
	"vikibot/internal/telegram"
	"vikibot/internal/users"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if cfg.TelegramBotToken == "" {
		log.Fatalf("TELEGRAM_BOT_TOKEN is required")
	}

	persona := prompt.NewPersona(cfg.BotName, cfg.BotNickname, cfg.BotRole, cfg.BotLanguage, cfg.Timezone)

	store, err := memory.NewStore(cfg.MemoryDir, persona.Nickname)
	if err != nil {
		log.Fatalf("failed to init memory store: %v", err)
	}

	var repo users.Repository
	if cfg.UsersFilePath != "" {
		r, err := users.NewFileRepository(cfg.UsersFilePath)
		if err != nil {
			log.Printf("failed to init users repo: %v", err)
		} else {
			repo = r
		}
	}
	registry, err := users.NewRegistry(repo)
	if err != nil {
		log.Fatalf("failed to init user registry: %v", err)
	}

	llmClient, err := llm.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	updater := memory.NewUpdater(store, recognize.NewClassifier(cfg.EmotionPriority))
	composer := prompt.NewComposer(persona)
	responder := reply.New(updater, composer, llmClient, cfg.MaxReplyLength, cfg.GenTimeout)

	if cfg.ChatLogPath != "" {
		rec, err := chatlog.NewFileRecorder(cfg.ChatLogPath)
		if err != nil {
			log.Printf("failed to init chat log: %v", err)
		} else {
			responder.SetRecorder(rec)
		}
	}

	bot, err := telegram.New(cfg.TelegramBotToken, responder, store, registry, persona, cfg.TypingDelay)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.CheckinCron != "" {
		sched := scheduler.New(persona.Location)
		sched.SetCheckinFunction(func(ctx context.Context) error {
			for _, u := range registry.List() {
				p := store.Load(strconv.FormatInt(u.ID, 10))
				bot.SendTo(u.ChatID, fmt.Sprintf(
					"Good morning, %s! ☀️ I woke up thinking about you. How did you sleep?",
					persona.CallUser(p.Name)))
			}
			return nil
		})
		if err := sched.Start(cfg.CheckinCron); err != nil {
			log.Printf("failed to start check-in scheduler: %v", err)
		} else {
			defer sched.Stop()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("💖 %s companion bot is running", persona.Name)
	bot.Start(ctx)
	log.Printf("👋 %s is shutting down", persona.Name)
}
