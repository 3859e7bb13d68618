package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"lab-tutor/internal/config"
	"lab-tutor/internal/generation"
	"lab-tutor/internal/llm"
	"lab-tutor/internal/scheduler"
	"lab-tutor/internal/storage"
	"lab-tutor/internal/syllabus"
	"lab-tutor/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	systemPrompt := readSystemPrompt(cfg.SystemPromptPath)
	gw := generation.New(llmClient, systemPrompt)

	var rec storage.Recorder
	if cfg.LogFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.LogFilePath)
		if err != nil {
			log.Printf("failed to init file recorder: %v", err)
		} else {
			rec = fr
		}
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		gw,
		rec,
		cfg.AdminUserID,
		cfg.MessageParseMode,
		cfg.GenerateBatchSize,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	sched := scheduler.New(cfg.ReportCronSpec)
	sched.SetReportFunction(bot.DailyReport)
	if err := sched.Start(); err != nil {
		log.Printf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	bot.Start(context.Background())
}

func readSystemPrompt(path string) string {
	if path == "" {
		return syllabus.DefaultSystemPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return syllabus.DefaultSystemPrompt
	}
	return string(data)
}
