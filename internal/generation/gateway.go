package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"lab-tutor/internal/content"
	"lab-tutor/internal/llm"
	"lab-tutor/internal/syllabus"
)

// Apology is returned for chat replies when the remote call fails for
// any reason. Item requests degrade to an empty slice instead.
const Apology = "Sorry, I encountered an error communicating with the AI Tutor."

const emptyReply = "I couldn't generate a response."

// Gateway is the single seam where remote-generation failure is
// absorbed: no method ever returns an error. Callers must not trust
// identifiers on returned items; content sets renumber them.
type Gateway struct {
	client       llm.Client
	systemPrompt string
}

func New(client llm.Client, systemPrompt string) *Gateway {
	return &Gateway{client: client, systemPrompt: systemPrompt}
}

// QuizItems asks for count multiple-choice questions, optionally
// constrained to a topic. Returns an empty slice on any failure.
func (g *Gateway) QuizItems(ctx context.Context, count int, topicHint string) []content.QuizItem {
	scope := "covering the whole syllabus"
	if topicHint != "" {
		scope = fmt.Sprintf("specifically covering %s", topicHint)
	}
	prompt := fmt.Sprintf(`Generate %d multiple choice questions about %s (%s) %s.
The syllabus is: %s.
Return ONLY a JSON array of objects with exactly these fields:
"id" (integer), "question" (string), "options" (array of strings),
"correctAnswer" (integer, zero-based index of the correct option),
"explanation" (string).`,
		count, syllabus.Course.Name, syllabus.Course.Code, scope, syllabus.DomainContext())

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		log.Printf("quiz generation failed: %v", err)
		return nil
	}

	var items []content.QuizItem
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &items); err != nil {
		log.Printf("quiz generation returned unparseable reply: %v", err)
		return nil
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			log.Printf("quiz generation returned malformed item, dropping batch: %v", err)
			return nil
		}
	}
	return items
}

// VivaItems asks for count oral-exam question/answer cards.
// Returns an empty slice on any failure.
func (g *Gateway) VivaItems(ctx context.Context, count int) []content.VivaItem {
	prompt := fmt.Sprintf(`Generate %d Viva Voce questions and answers for a %s End Semester Exam.
Syllabus Context: %s.
Focus on oral exam style questions (e.g., "Explain...", "How would you...", "Difference between...").
Return ONLY a JSON array of objects with exactly these fields:
"id" (integer), "question" (string), "answer" (string),
"category" (one of "Basic", "Intermediate", "Advanced").`,
		count, syllabus.Course.Name, syllabus.DomainContext())

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		log.Printf("viva generation failed: %v", err)
		return nil
	}

	var items []content.VivaItem
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &items); err != nil {
		log.Printf("viva generation returned unparseable reply: %v", err)
		return nil
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			log.Printf("viva generation returned malformed item, dropping batch: %v", err)
			return nil
		}
	}
	return items
}

// Reply sends the full conversation history plus the new message and
// returns the assistant's text. The remote model is stateless; the
// transcript must be replayed on every call. Failure degrades to the
// fixed apology string.
func (g *Gateway) Reply(ctx context.Context, history []llm.Message, message string) string {
	if g.client == nil {
		return Apology
	}
	msgs := make([]llm.Message, 0, len(history)+2)
	if g.systemPrompt != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: g.systemPrompt})
	}
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: "user", Content: message})

	resp, err := g.client.Generate(ctx, msgs)
	if err != nil {
		log.Printf("tutor reply failed: %v", err)
		return Apology
	}
	logUsage("tutor reply", resp)
	if resp.Content == "" {
		return emptyReply
	}
	return resp.Content
}

func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("no llm client configured")
	}
	var msgs []llm.Message
	if g.systemPrompt != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: g.systemPrompt})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: prompt})
	resp, err := g.client.Generate(ctx, msgs)
	if err != nil {
		return "", err
	}
	logUsage("item generation", resp)
	return resp.Content, nil
}

func logUsage(op string, resp llm.Response) {
	log.Printf("%s: model=%s tokens=%d (prompt %d, completion %d)",
		op, resp.Model, resp.TotalTokens, resp.PromptTokens, resp.CompletionTokens)
}

// extractJSONArray strips markdown code fences and surrounding prose,
// leaving the outermost JSON array of the reply.
func extractJSONArray(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		start := 3
		if nl := strings.Index(s[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.Index(s[start:], "```"); end != -1 {
			s = s[start : start+end]
		} else {
			s = s[start:]
		}
	}
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "["); i != -1 {
		if j := strings.LastIndex(s, "]"); j > i {
			s = s[i : j+1]
		}
	}
	return strings.TrimSpace(s)
}
