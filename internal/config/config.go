package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
	ProviderOllama LLMProvider = "ollama"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	// Persona
	BotName     string `env:"BOT_NAME" envDefault:"Viktor"`
	BotNickname string `env:"BOT_NICKNAME" envDefault:"Viki"`
	BotRole     string `env:"BOT_ROLE" envDefault:"boyfriend"`
	BotLanguage string `env:"BOT_LANGUAGE" envDefault:"English"`
	Timezone    string `env:"BOT_TIMEZONE" envDefault:"Asia/Tehran"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`
	OllamaBaseURL    string      `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaModel      string      `env:"OLLAMA_MODEL" envDefault:"gemma2:2b"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Generation limits
	MaxReplyLength int           `env:"MAX_REPLY_LENGTH" envDefault:"4000"`
	MaxTokens      int           `env:"MAX_TOKENS" envDefault:"150"`
	GenTimeout     time.Duration `env:"GEN_TIMEOUT" envDefault:"30s"`

	// Emotion rule priority, highest first. The emotion keyword sets
	// overlap ("miss you" is both sad and love), so order is policy.
	EmotionPriority []string `env:"EMOTION_PRIORITY" envSeparator:"," envDefault:"sad,happy,love,angry,flirty"`

	// Storage
	MemoryDir     string `env:"MEMORY_DIR" envDefault:"memory"`
	UsersFilePath string `env:"USERS_FILE_PATH" envDefault:"data/users.json"`
	ChatLogPath   string `env:"CHAT_LOG_PATH" envDefault:"logs/chat.jsonl"`

	// Daily check-in; empty disables the scheduler.
	CheckinCron string `env:"CHECKIN_CRON"`

	// Telegram behavior
	TypingDelay time.Duration `env:"TYPING_DELAY" envDefault:"500ms"`

	// Console variant
	ConsoleUserName string `env:"CONSOLE_USER_NAME" envDefault:"you"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
