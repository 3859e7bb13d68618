package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lab-tutor/internal/content"
	"lab-tutor/internal/quiz"
	"lab-tutor/internal/storage"
	"lab-tutor/internal/syllabus"
	"lab-tutor/internal/viva"
)

// Callback data prefixes. Option letters index into the current item.
const (
	cbQuizAnswer  = "quiz:ans:"
	cbQuizNext    = "quiz:next"
	cbQuizRestart = "quiz:restart"
	cbQuizMore    = "quiz:more"
	cbQuizNew     = "quiz:new"
	cbQuizTopic   = "quiz:topic:"
	cbVivaReveal  = "viva:reveal:"
	cbVivaMore    = "viva:more"
)

const genNothingMsg = "The AI could not generate anything right now. Your current questions are untouched; try again in a moment."

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answerCallback(cb.ID, "")
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	cs := b.session(chatID)
	data := cb.Data

	switch {
	case strings.HasPrefix(data, cbQuizAnswer):
		idx, err := strconv.Atoi(strings.TrimPrefix(data, cbQuizAnswer))
		if err != nil {
			return
		}
		b.handleQuizAnswer(cb, cs, idx)
	case data == cbQuizNext:
		b.handleQuizNext(chatID, cs)
	case data == cbQuizRestart:
		cs.quiz.Progress().Restart()
		b.sendQuizState(chatID, cs)
	case data == cbQuizMore:
		b.handleQuizGenerate(ctx, chatID, cb.From.ID, cs, cs.quiz.Topic(), false)
	case data == cbQuizNew:
		b.sendTopicSelector(chatID)
	case strings.HasPrefix(data, cbQuizTopic):
		n, err := strconv.Atoi(strings.TrimPrefix(data, cbQuizTopic))
		if err != nil {
			return
		}
		topic := ""
		if t, ok := syllabus.TopicByOrdinal(n); ok {
			topic = t.Title
		}
		b.handleQuizGenerate(ctx, chatID, cb.From.ID, cs, topic, true)
	case strings.HasPrefix(data, cbVivaReveal):
		id, err := strconv.Atoi(strings.TrimPrefix(data, cbVivaReveal))
		if err != nil {
			return
		}
		b.handleVivaReveal(cb, cs, id)
	case data == cbVivaMore:
		b.handleVivaMore(ctx, chatID, cb.From.ID, cs)
	}
}

func (b *Bot) handleQuizAnswer(cb *tgbotapi.CallbackQuery, cs *chatSession, idx int) {
	p := cs.quiz.Progress()
	if p.State() != quiz.StateInProgress {
		return
	}
	item := p.Current()
	if idx < 0 || idx >= len(item.Options) {
		return
	}
	p.SelectOption(idx)

	correct := idx == item.CorrectAnswer
	b.record(storage.Event{Timestamp: time.Now().UTC(), UserID: cb.From.ID, Kind: storage.KindQuizAnswer, Correct: &correct})

	verdict := "❌ Wrong."
	if correct {
		verdict = "✅ Correct!"
	}
	text := fmt.Sprintf("%s\n\n%s\n\nYour answer: %s\nCorrect answer: %s\n\n<b>Explanation:</b> %s",
		quizHeader(p), html.EscapeString(item.Question),
		html.EscapeString(optionLabel(idx)+" "+item.Options[idx]),
		html.EscapeString(optionLabel(item.CorrectAnswer)+" "+item.Options[item.CorrectAnswer]),
		html.EscapeString(item.Explanation))
	text = verdict + "\n\n" + text

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next ➡️", cbQuizNext),
		),
	)
	b.editMessage(cb.Message.Chat.ID, cb.Message.MessageID, text, &kb)
}

func (b *Bot) handleQuizNext(chatID int64, cs *chatSession) {
	p := cs.quiz.Progress()
	if p.State() != quiz.StateAwaitingNext {
		return
	}
	p.Advance()
	b.sendQuizState(chatID, cs)
}

// handleQuizGenerate runs one generation call against the quiz session:
// fresh==true replaces the quiz, fresh==false appends to it. The session
// rejects re-entry while a call is outstanding.
func (b *Bot) handleQuizGenerate(ctx context.Context, chatID, userID int64, cs *chatSession, topic string, fresh bool) {
	if !fresh && cs.quiz.Progress().State() == quiz.StateAwaitingNext {
		// stale tap on an old completion message
		b.sendPlain(chatID, "Finish the current question first.")
		return
	}
	b.sendPlain(chatID, "Generating questions, give me a few seconds...")

	var added int
	var err error
	if fresh {
		added, err = cs.quiz.StartNew(ctx, topic)
	} else {
		added, err = cs.quiz.RequestMore(ctx, topic)
	}
	if errors.Is(err, quiz.ErrBusy) {
		b.sendPlain(chatID, "Still generating your previous request, hang on.")
		return
	}
	if added == 0 {
		b.sendPlain(chatID, genNothingMsg)
		return
	}

	b.record(storage.Event{Timestamp: time.Now().UTC(), UserID: userID, Kind: storage.KindGeneration, ContentKind: "quiz", Items: added, Topic: topic})
	b.sendQuizState(chatID, cs)
}

func (b *Bot) sendQuizState(chatID int64, cs *chatSession) {
	p := cs.quiz.Progress()
	switch p.State() {
	case quiz.StateEmpty:
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("New quiz", cbQuizNew),
			),
		)
		b.sendHTML(chatID, "No questions loaded yet.", &kb)
	case quiz.StateInProgress:
		item := p.Current()
		text := fmt.Sprintf("%s\n\n%s", quizHeader(p), html.EscapeString(item.Question))
		kb := optionKeyboard(item)
		b.sendHTML(chatID, text, &kb)
	case quiz.StateAwaitingNext:
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Next ➡️", cbQuizNext),
			),
		)
		b.sendHTML(chatID, quizHeader(p)+"\n\nAnswer locked in. Ready for the next question?", &kb)
	case quiz.StateCompleted:
		text := fmt.Sprintf("🎉 <b>Quiz completed!</b>\n\nYou scored <b>%d</b> out of <b>%d</b>.", p.Score(), p.Total())
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Restart", cbQuizRestart),
				tgbotapi.NewInlineKeyboardButtonData("Generate 10 more", cbQuizMore),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("New quiz", cbQuizNew),
			),
		)
		b.sendHTML(chatID, text, &kb)
	}
}

func (b *Bot) sendTopicSelector(chatID int64) {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("All topics (general)", cbQuizTopic+"0"),
		),
	}
	for _, t := range syllabus.Topics {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Exp %d: %s", t.Ordinal, t.Title),
				cbQuizTopic+strconv.Itoa(t.Ordinal),
			),
		))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.sendHTML(chatID, "Pick a topic for the new quiz:", &kb)
}

func (b *Bot) handleVivaReveal(cb *tgbotapi.CallbackQuery, cs *chatSession, id int) {
	items := cs.viva.Items()
	if id < 1 || id > len(items) {
		return
	}
	revealed := cs.viva.ToggleReveal(id)
	item := items[id-1]
	kb := vivaKeyboard(item, revealed)
	b.editMessage(cb.Message.Chat.ID, cb.Message.MessageID, vivaCardText(item, revealed), &kb)
}

func (b *Bot) handleVivaMore(ctx context.Context, chatID, userID int64, cs *chatSession) {
	b.sendPlain(chatID, "Generating viva cards, give me a few seconds...")

	before := cs.viva.Len()
	added, err := cs.viva.GenerateMore(ctx)
	if errors.Is(err, viva.ErrBusy) {
		b.sendPlain(chatID, "Still generating your previous request, hang on.")
		return
	}
	if added == 0 {
		b.sendPlain(chatID, genNothingMsg)
		return
	}

	b.record(storage.Event{Timestamp: time.Now().UTC(), UserID: userID, Kind: storage.KindGeneration, ContentKind: "viva", Items: added})

	items := cs.viva.Items()
	for _, item := range items[before:] {
		kb := vivaKeyboard(item, false)
		b.sendHTML(chatID, vivaCardText(item, false), &kb)
	}
	b.sendVivaFooter(chatID)
}

func (b *Bot) sendVivaCards(chatID int64, cs *chatSession) {
	for _, item := range cs.viva.Items() {
		revealed := cs.viva.Revealed(item.ID)
		kb := vivaKeyboard(item, revealed)
		b.sendHTML(chatID, vivaCardText(item, revealed), &kb)
	}
	b.sendVivaFooter(chatID)
}

func (b *Bot) sendVivaFooter(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Generate 10 more (AI)", cbVivaMore),
		),
	)
	b.sendHTML(chatID, "Master the oral exam questions. Tap a card to reveal its answer.", &kb)
}

func (b *Bot) sendTopicList(chatID int64) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s (%s)</b> — %d experiments\n\n", syllabus.Course.Name, syllabus.Course.Code, len(syllabus.Topics)))
	for _, t := range syllabus.Topics {
		sb.WriteString(fmt.Sprintf("%d. %s\n", t.Ordinal, html.EscapeString(t.Title)))
	}
	sb.WriteString("\nUse /notes <n> for the notes of one experiment.")
	b.sendHTML(chatID, sb.String(), nil)
}

func (b *Bot) sendTopicNotes(chatID int64, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		b.sendPlain(chatID, "Usage: /notes <experiment number>")
		return
	}
	t, ok := syllabus.TopicByOrdinal(n)
	if !ok {
		b.sendPlain(chatID, fmt.Sprintf("No experiment %d. There are %d experiments.", n, len(syllabus.Topics)))
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>Experiment %d: %s</b>\n\n", t.Ordinal, html.EscapeString(t.Title)))
	sb.WriteString(html.EscapeString(t.Summary))
	sb.WriteString("\n\n<b>Lab tasks:</b>\n")
	for i, task := range t.LabTasks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, html.EscapeString(task)))
	}
	b.sendHTML(chatID, sb.String(), nil)
}

func quizHeader(p *quiz.Progress) string {
	return fmt.Sprintf("<b>Q %d/%d</b> | Score: %d", p.Position()+1, p.Total(), p.Score())
}

func optionKeyboard(item content.QuizItem) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, opt := range item.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				optionLabel(i)+" "+opt,
				cbQuizAnswer+strconv.Itoa(i),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("New quiz", cbQuizNew),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func optionLabel(i int) string {
	return string(rune('A'+i)) + ")"
}

func vivaCardText(item content.VivaItem, revealed bool) string {
	text := fmt.Sprintf("<b>#%d · %s</b>\n\n%s", item.ID, item.Category, html.EscapeString(item.Question))
	if revealed {
		text += "\n\n<i>" + html.EscapeString(item.Answer) + "</i>"
	}
	return text
}

func vivaKeyboard(item content.VivaItem, revealed bool) tgbotapi.InlineKeyboardMarkup {
	label := "Show answer"
	if revealed {
		label = "Hide answer"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbVivaReveal+strconv.Itoa(item.ID)),
		),
	)
}

func (b *Bot) editMessage(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = b.parseMode
	if kb != nil {
		edit.ReplyMarkup = kb
	}
	if _, err := b.s.Send(edit); err != nil {
		log.Printf("failed to edit message: %v", err)
	}
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.s.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
}
