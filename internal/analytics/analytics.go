package analytics

import (
	"fmt"
	"sort"
	"time"

	"lab-tutor/internal/storage"
)

// DailyStats aggregates one day of study activity.
type DailyStats struct {
	Date           string         `json:"date"`
	QuizAnswers    int            `json:"quiz_answers"`
	CorrectAnswers int            `json:"correct_answers"`
	TutorMessages  int            `json:"tutor_messages"`
	ItemsGenerated map[string]int `json:"items_generated"`
	UniqueUsers    int            `json:"unique_users"`
	AnswersByUser  map[int64]int  `json:"answers_by_user"`
}

// AnalyzeDailyLogs folds the recorded events of the given date into
// per-day study stats.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:           startOfDay.Format("2006-01-02"),
		ItemsGenerated: make(map[string]int),
		AnswersByUser:  make(map[int64]int),
	}

	uniqueUsers := make(map[int64]bool)

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		uniqueUsers[event.UserID] = true

		switch event.Kind {
		case storage.KindQuizAnswer:
			stats.QuizAnswers++
			stats.AnswersByUser[event.UserID]++
			if event.Correct != nil && *event.Correct {
				stats.CorrectAnswers++
			}
		case storage.KindGeneration:
			stats.ItemsGenerated[event.ContentKind] += event.Items
		case storage.KindTutorChat:
			stats.TutorMessages++
		}
	}

	stats.UniqueUsers = len(uniqueUsers)
	return stats
}

// Summary renders a human-readable report for the admin chat.
func (ds *DailyStats) Summary() string {
	out := fmt.Sprintf(`Study activity for %s:

- Quiz answers: %d (%d correct)
- Tutor messages: %d
- Active users: %d
`, ds.Date, ds.QuizAnswers, ds.CorrectAnswers, ds.TutorMessages, ds.UniqueUsers)

	if ds.QuizAnswers > 0 {
		out += fmt.Sprintf("- Accuracy: %.0f%%\n", 100*float64(ds.CorrectAnswers)/float64(ds.QuizAnswers))
	}

	if len(ds.ItemsGenerated) > 0 {
		out += "\nGenerated content:\n"
		kinds := make([]string, 0, len(ds.ItemsGenerated))
		for k := range ds.ItemsGenerated {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			out += fmt.Sprintf("- %s items: %d\n", k, ds.ItemsGenerated[k])
		}
	}
	return out
}
