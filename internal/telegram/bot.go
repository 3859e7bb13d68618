package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lab-tutor/internal/analytics"
	"lab-tutor/internal/generation"
	"lab-tutor/internal/quiz"
	"lab-tutor/internal/storage"
	"lab-tutor/internal/syllabus"
	"lab-tutor/internal/tutor"
	"lab-tutor/internal/viva"
)

const tutorGreeting = "Hello! I'm your Linux Lab Tutor. I can help you understand commands, debug shell scripts, or explain concepts from CSEG1126. What are you working on?"

// chatSession bundles the per-chat study state. Each chat owns its own
// quiz, viva and tutor sessions; nothing is shared across chats.
type chatSession struct {
	quiz  *quiz.Session
	viva  *viva.Session
	tutor *tutor.Session
}

type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	gw          *generation.Gateway
	rec         storage.Recorder
	adminUserID int64
	parseMode   string
	batchSize   int

	mu       sync.Mutex
	sessions map[int64]*chatSession
}

func New(botToken string, gw *generation.Gateway, rec storage.Recorder, adminUserID int64, parseMode string, batchSize int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		gw:          gw,
		rec:         rec,
		adminUserID: adminUserID,
		parseMode:   parseMode,
		batchSize:   batchSize,
		sessions:    make(map[int64]*chatSession),
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
			continue
		}
		if update.CallbackQuery != nil {
			b.handleCallback(ctx, update.CallbackQuery)
			continue
		}
	}
}

// session returns the chat's study state, creating it with the seed
// banks on first contact.
func (b *Bot) session(chatID int64) *chatSession {
	b.mu.Lock()
	defer b.mu.Unlock()
	cs, ok := b.sessions[chatID]
	if !ok {
		cs = &chatSession{
			quiz:  quiz.NewSession(b.gw, b.batchSize, syllabus.SeedQuiz()),
			viva:  viva.NewSession(b.gw, b.batchSize, syllabus.SeedViva()),
			tutor: tutor.NewSession(b.gw),
		}
		b.sessions[chatID] = cs
	}
	return cs
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	// Plain text goes to the tutor chat.
	b.handleTutorMessage(ctx, msg.Chat.ID, msg.From.ID, msg.Text)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cs := b.session(msg.Chat.ID)
	switch msg.Command() {
	case "start", "help":
		b.sendPlain(msg.Chat.ID, strings.Join([]string{
			fmt.Sprintf("%s (%s) study aid.", syllabus.Course.Name, syllabus.Course.Code),
			"",
			"/notes <n> — study notes for experiment n",
			"/topics — list syllabus topics",
			"/quiz — practice MCQs",
			"/viva — oral exam flash cards",
			"/tutor — chat with the AI tutor (or just type a message)",
			"/reset — start a fresh tutor conversation",
			"/stats — today's study activity",
		}, "\n"))
	case "topics", "notes":
		if arg := strings.TrimSpace(msg.CommandArguments()); arg != "" {
			b.sendTopicNotes(msg.Chat.ID, arg)
			return
		}
		b.sendTopicList(msg.Chat.ID)
	case "quiz":
		b.sendQuizState(msg.Chat.ID, cs)
	case "viva":
		b.sendVivaCards(msg.Chat.ID, cs)
	case "tutor":
		b.sendPlain(msg.Chat.ID, tutorGreeting)
	case "reset":
		cs.tutor.Reset()
		b.sendPlain(msg.Chat.ID, "Tutor conversation reset.")
	case "stats":
		b.sendDailyStats(msg.Chat.ID)
	default:
		b.sendPlain(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleTutorMessage(ctx context.Context, chatID, userID int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	cs := b.session(chatID)
	reply, err := cs.tutor.PostMessage(ctx, text)
	if err != nil {
		b.sendPlain(chatID, "The tutor is still answering your previous message.")
		return
	}
	b.record(storage.Event{Timestamp: time.Now().UTC(), UserID: userID, Kind: storage.KindTutorChat})
	b.sendPlain(chatID, reply)
}

func (b *Bot) sendDailyStats(chatID int64) {
	if b.rec == nil {
		b.sendPlain(chatID, "No activity log configured.")
		return
	}
	events, err := b.rec.LoadEvents()
	if err != nil {
		log.Printf("failed to load events: %v", err)
		b.sendPlain(chatID, "Could not load the activity log.")
		return
	}
	stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
	b.sendPlain(chatID, stats.Summary())
}

// DailyReport posts the current day's stats to the admin chat. Wired
// into the cron scheduler by main.
func (b *Bot) DailyReport(ctx context.Context) error {
	if b.rec == nil || b.adminUserID == 0 {
		return nil
	}
	events, err := b.rec.LoadEvents()
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	stats := analytics.AnalyzeDailyLogs(events, time.Now().UTC())
	b.sendPlain(b.adminUserID, stats.Summary())
	return nil
}

func (b *Bot) record(ev storage.Event) {
	if b.rec == nil {
		return
	}
	if err := b.rec.AppendEvent(ev); err != nil {
		log.Printf("failed to record event: %v", err)
	}
}

func (b *Bot) sendPlain(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendHTML(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = b.parseMode
	if kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
