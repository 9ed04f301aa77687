package flashcards

import "testing"

func TestParseCards(t *testing.T) {
	raw := `[{"question":"q1","answer":"a1","difficulty":"hard","hint":"h1"},
		{"question":"q2","answer":"a2"},
		{"question":"","answer":"orphan"},
		{"question":"no answer","answer":""}]`

	cards, err := ParseCards(raw, "medium")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2 (invalid ones dropped)", len(cards))
	}
	if cards[0].Difficulty != "hard" {
		t.Errorf("explicit difficulty overridden: %s", cards[0].Difficulty)
	}
	if cards[0].Hint == nil || *cards[0].Hint != "h1" {
		t.Error("hint lost")
	}
	if cards[1].Difficulty != "medium" {
		t.Errorf("missing difficulty not defaulted: %s", cards[1].Difficulty)
	}
	if cards[1].Hint != nil {
		t.Error("absent hint should stay nil")
	}
}

func TestParseCardsRejectsNonArray(t *testing.T) {
	if _, err := ParseCards(`{"question":"q","answer":"a"}`, "medium"); err == nil {
		t.Error("expected error for non-array JSON")
	}
	if _, err := ParseCards("plain prose", "medium"); err == nil {
		t.Error("expected error for prose")
	}
}

func TestExtractCards(t *testing.T) {
	content := "A stack is a LIFO data structure. Queues are FIFO structures. Tiny. This sentence has no definition pattern in it whatsoever."

	cards := ExtractCards(content, 5, "medium")
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if cards[0].Question != "What is A stack?" {
		t.Errorf("question = %q", cards[0].Question)
	}
	if cards[0].Answer != "a LIFO data structure" {
		t.Errorf("answer = %q", cards[0].Answer)
	}
	if cards[1].Question != "What is Queues?" {
		t.Errorf("question = %q", cards[1].Question)
	}
}

func TestExtractCardsHonorsCount(t *testing.T) {
	content := "Alpha is first. Beta is second. Gamma is third. Delta is fourth."
	cards := ExtractCards(content, 2, "easy")
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
}

func TestExtractCardsEmptyWhenNoPatterns(t *testing.T) {
	if cards := ExtractCards("No definitions here. Just chatter without the magic words.", 3, "medium"); len(cards) != 0 {
		t.Errorf("got %d cards, want 0", len(cards))
	}
}
