package flashcards

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prepmate/engine/internal/llm"
)

// ParseCards parses generator output into cards. Markdown code fences
// are stripped first; models wrap JSON in them no matter how firmly
// the prompt says not to. Cards missing a question or answer are
// dropped, and a missing difficulty inherits the requested one.
func ParseCards(raw, difficulty string) ([]Card, error) {
	text := llm.StripFences(raw)

	var decoded []struct {
		Question   string  `json:"question"`
		Answer     string  `json:"answer"`
		Difficulty string  `json:"difficulty"`
		Hint       *string `json:"hint"`
	}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, fmt.Errorf("parse card array: %w", err)
	}

	var cards []Card
	for _, d := range decoded {
		if d.Question == "" || d.Answer == "" {
			continue
		}
		card := Card{
			Question:   d.Question,
			Answer:     d.Answer,
			Difficulty: d.Difficulty,
			Hint:       d.Hint,
		}
		if card.Difficulty == "" {
			card.Difficulty = difficulty
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ExtractCards is the degraded path when generator output is
// unusable: it mines the source content for definition sentences
// ("X is Y", "X are Y") and turns them into basic cards.
func ExtractCards(content string, count int, difficulty string) []Card {
	var cards []Card
	for _, sentence := range strings.Split(content, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 10 {
			continue
		}

		lower := strings.ToLower(sentence)
		sep := ""
		switch {
		case strings.Contains(lower, " is "):
			sep = " is "
		case strings.Contains(lower, " are "):
			sep = " are "
		default:
			continue
		}

		idx := strings.Index(lower, sep)
		subject := strings.TrimSpace(sentence[:idx])
		definition := strings.TrimSpace(sentence[idx+len(sep):])
		if subject == "" || definition == "" {
			continue
		}

		cards = append(cards, Card{
			Question:   fmt.Sprintf("What is %s?", subject),
			Answer:     definition,
			Difficulty: difficulty,
		})
		if len(cards) >= count {
			break
		}
	}
	return cards
}
