package resources

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestClassifyTypePriorityOrder(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		body  string
		want  string
	}{
		{"youtube", "https://www.youtube.com/watch?v=abc", "Sorting", "", TypeVideo},
		{"coursera", "https://www.coursera.org/learn/algos", "Algos", "", TypeCourse},
		{"docs subdomain", "https://docs.python.org/3/library", "Library", "", TypeDocumentation},
		{"developer subdomain", "https://developer.mozilla.org/en-US", "MDN", "", TypeDocumentation},
		{"leetcode", "https://leetcode.com/problems/two-sum", "Two Sum", "", TypePractice},
		{"arxiv", "https://arxiv.org/abs/1234.5678", "Paper", "", TypePaper},
		{"tutorial title", "https://example.com/x", "A Complete Tutorial", "", TypeDocumentation},
		{"course title", "https://example.com/x", "Full Course for 2025", "", TypeCourse},
		{"exercise body", "https://example.com/x", "Stuff", "practice problem sets here", TypePractice},
		{"fallback", "https://example.com/x", "Stuff", "plain text", TypeGeneral},
		// URL classes outrank title heuristics.
		{"video beats tutorial title", "https://youtube.com/watch", "Go Tutorial", "", TypeVideo},
	}
	for _, tt := range tests {
		if got := ClassifyType(tt.url, tt.title, tt.body); got != tt.want {
			t.Errorf("%s: ClassifyType = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestQualityScoreBlend(t *testing.T) {
	s := NewScorer()

	// All boosts firing: 0.8*0.3 + 0.2 title + 0.2 length + 0.2 domain
	// + 0.1 type = 0.94.
	snip := Snippet{
		Title:     "DSA crash course on YouTube",
		Body:      strings.Repeat("x", 1500),
		URL:       "https://www.youtube.com/watch?v=abc",
		BaseScore: 0.8,
	}
	got := s.Score(snip, Filters{Subject: "DSA", ResourceType: TypeVideo})
	if !almostEqual(got.QualityScore, 0.94) {
		t.Errorf("QualityScore = %v, want 0.94", got.QualityScore)
	}

	// Nothing firing: base only.
	bare := Snippet{Title: "notes", Body: "short", URL: "https://example.com", BaseScore: 0.5}
	got = s.Score(bare, Filters{})
	if !almostEqual(got.QualityScore, 0.15) {
		t.Errorf("QualityScore = %v, want 0.15", got.QualityScore)
	}
}

func TestQualityScoreLengthTiers(t *testing.T) {
	s := NewScorer()
	tests := []struct {
		length int
		want   float64
	}{
		{400, 0.0},
		{501, 0.1},
		{1000, 0.1},
		{1001, 0.2},
	}
	for _, tt := range tests {
		snip := Snippet{Title: "t", Body: strings.Repeat("x", tt.length), URL: "https://example.com"}
		got := s.Score(snip, Filters{})
		if !almostEqual(got.QualityScore, tt.want) {
			t.Errorf("length %d: QualityScore = %v, want %v", tt.length, got.QualityScore, tt.want)
		}
	}
}

func TestQualityScoreCappedAtOne(t *testing.T) {
	s := NewScorer()
	snip := Snippet{
		Title:     "DSA DSA DSA",
		Body:      strings.Repeat("x", 2000),
		URL:       "https://www.youtube.com/watch",
		BaseScore: 1.0,
	}
	got := s.Score(snip, Filters{Subject: "DSA", ResourceType: TypeVideo})
	if got.QualityScore != 1.0 {
		t.Errorf("QualityScore = %v, want capped 1.0", got.QualityScore)
	}
}

func TestRelevance(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		subject string
		want    float64
	}{
		{"no subject is neutral", "anything", "", 0.5},
		{"general is neutral", "anything", "General", 0.5},
		{"full match", "algorithm data structure programming complexity", "DSA", 1.0},
		{"half match", "algorithm and some programming", "DSA", 0.5},
		{"no match", "cooking recipes", "DSA", 0.0},
		{"unknown subject", "anything", "Quantum Basket Weaving", 0.0},
		{"case insensitive", "ALGORITHM basics", "DSA", 0.25},
	}
	for _, tt := range tests {
		if got := Relevance(tt.body, tt.subject); !almostEqual(got, tt.want) {
			t.Errorf("%s: Relevance = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetectDifficulty(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		title string
		want  string
	}{
		{"empty defaults beginner", "", "", DifficultyBeginner},
		{"beginner keywords", "a basic introduction for getting started", "Tutorial", DifficultyBeginner},
		{"intermediate dominates", "intermediate deep dive, comprehensive", "", DifficultyIntermediate},
		{"expert dominates", "expert master professional enterprise", "", DifficultyAdvanced},
		{"expert tie falls through", "expert basics", "", DifficultyBeginner},
	}
	for _, tt := range tests {
		if got := DetectDifficulty(tt.body, tt.title); got != tt.want {
			t.Errorf("%s: DetectDifficulty = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestExtractExcerpts(t *testing.T) {
	long1 := "This first sentence is comfortably longer than fifty characters in total"
	long2 := "The second sentence also clears the fifty character minimum easily enough"
	long3 := "A third qualifying sentence that is long enough to be kept as an excerpt"
	body := long1 + ". short. " + long2 + ". tiny. " + long3 + ". trailing filler sentence that is also over fifty characters long here."

	got := ExtractExcerpts(body, 3)
	if len(got) != 3 {
		t.Fatalf("got %d excerpts, want 3", len(got))
	}
	if got[0] != long1+"." {
		t.Errorf("excerpt[0] = %q", got[0])
	}
	if got[1] != long2+"." {
		t.Errorf("excerpt[1] = %q", got[1])
	}

	if got := ExtractExcerpts("short. bits. only.", 3); len(got) != 0 {
		t.Errorf("got %d excerpts from short sentences, want 0", len(got))
	}
}

func TestRankOrdersByQualityThenRelevance(t *testing.T) {
	s := NewScorer()
	snips := []Snippet{
		{Title: "plain", Body: "nothing here", URL: "https://example.com/a", BaseScore: 0.1},
		{Title: "DSA guide", Body: strings.Repeat("algorithm data structure ", 60), URL: "https://geeksforgeeks.org/x", BaseScore: 0.9},
		{Title: "middling", Body: strings.Repeat("x", 600), URL: "https://example.com/b", BaseScore: 0.5},
	}
	ranked := s.Rank(snips, Filters{Subject: "DSA"})
	if len(ranked) != 3 {
		t.Fatalf("got %d, want 3", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].QualityScore > ranked[i-1].QualityScore {
			t.Errorf("rank %d out of order: %v > %v", i, ranked[i].QualityScore, ranked[i-1].QualityScore)
		}
	}
	if ranked[0].Title != "DSA guide" {
		t.Errorf("ranked[0] = %s, want DSA guide", ranked[0].Title)
	}
}

func TestScoreTruncatesContentAndFillsDomain(t *testing.T) {
	s := NewScorer()
	snip := Snippet{
		Title: "t",
		Body:  strings.Repeat("a", 600),
		URL:   "https://docs.python.org/3/",
	}
	got := s.Score(snip, Filters{})
	if len(got.Content) != maxContentLen+3 || !strings.HasSuffix(got.Content, "...") {
		t.Errorf("content not truncated: len %d", len(got.Content))
	}
	if got.Domain != "docs.python.org" {
		t.Errorf("Domain = %s, want docs.python.org", got.Domain)
	}
	if got.PublishedDate != "Unknown" {
		t.Errorf("PublishedDate = %s, want Unknown", got.PublishedDate)
	}
}
