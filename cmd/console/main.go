package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"vikibot/internal/chatlog"
	"vikibot/internal/config"
	"vikibot/internal/llm"
	"vikibot/internal/memory"
	"vikibot/internal/prompt"
	"vikibot/internal/recognize"
	"vikibot/internal/reply"
)

// The console variant talks to a single local user; the profile record is
// keyed by the configured user name instead of a chat platform identity.
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	persona := prompt.NewPersona(cfg.BotName, cfg.BotNickname, cfg.BotRole, cfg.BotLanguage, cfg.Timezone)

	store, err := memory.NewStore(cfg.MemoryDir, persona.Nickname)
	if err != nil {
		log.Fatalf("failed to init memory store: %v", err)
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

	userID := recognize.NormalizeField(cfg.ConsoleUserName)

	fmt.Printf(`🚀 Starting %s - your personal companion
-----------------------------------------------
🔧 Memory dir: %s
🔌 LLM provider: %s
✅ Ready to chat. Type 'exit' to quit.
-----------------------------------------------
`, persona.Name, cfg.MemoryDir, cfg.LLMProvider)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n%s: ", cfg.ConsoleUserName)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			break
		}
		fmt.Printf("\n%s: %s\n", persona.Name, responder.Reply(ctx, userID, input))
	}
	fmt.Printf("\n👋 Goodbye, %s!\n", cfg.ConsoleUserName)
}
