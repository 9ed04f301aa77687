// Package resources scores retrieved study-resource snippets for
// quality and subject relevance. Scoring is deterministic; fetching
// the snippets is the caller's problem.
package resources

import (
	"net/url"
	"sort"
	"strings"
)

// Snippet is one retrieved content snippet to score.
type Snippet struct {
	Title string
	Body  string
	URL   string

	// BaseScore is the upstream search ranking in [0,1].
	BaseScore float64

	PublishedDate string
}

// Filters narrow a resource search; each field is optional.
type Filters struct {
	Subject      string
	Difficulty   string
	ResourceType string
}

// Scored is a snippet with derived scoring attributes.
type Scored struct {
	Title           string
	URL             string
	Content         string
	Excerpts        []string
	ResourceType    string
	DifficultyLevel string
	QualityScore    float64
	RelevanceScore  float64
	Domain          string
	PublishedDate   string
}

// Resource types in classification priority order. First match wins.
const (
	TypeVideo         = "video"
	TypeCourse        = "course"
	TypeDocumentation = "documentation"
	TypePractice      = "practice"
	TypePaper         = "paper"
	TypeGeneral       = "general"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// maxContentLen bounds the content carried on a scored result.
const maxContentLen = 500

var videoDomains = []string{"youtube.com", "vimeo.com"}
var courseDomains = []string{"coursera.org", "edx.org", "udemy.com"}
var docMarkers = []string{"docs.", "developer.", ".dev"}
var practiceDomains = []string{"leetcode.com", "hackerrank.com", "geeksforgeeks.org"}
var paperDomains = []string{"arxiv.org", "ieee.org", "acm.org"}

// trustedDomains is the fixed authority allow-list for the quality
// boost.
var trustedDomains = []string{
	"youtube.com", "coursera.org", "edx.org", "khanacademy.org",
	"geeksforgeeks.org", "stackoverflow.com", "docs.python.org",
	"developer.mozilla.org", "react.dev", "arxiv.org",
}

// subjectKeywords maps a subject to the keywords its relevance score
// counts in the snippet body.
var subjectKeywords = map[string][]string{
	"DSA":        {"algorithm", "data structure", "programming", "complexity"},
	"OS":         {"operating system", "process", "memory", "kernel"},
	"DBMS":       {"database", "sql", "query", "table"},
	"CN":         {"network", "protocol", "tcp", "ip"},
	"SE":         {"software", "development", "engineering", "architecture"},
	"AI":         {"artificial intelligence", "machine learning", "neural"},
	"ML":         {"machine learning", "model", "training", "prediction"},
	"Web Dev":    {"web", "html", "css", "javascript", "react"},
	"Mobile Dev": {"mobile", "ios", "android", "app"},
}

var beginnerKeywords = []string{"beginner", "basic", "introduction", "getting started", "tutorial"}
var intermediateKeywords = []string{"intermediate", "advanced", "deep dive", "comprehensive"}
var expertKeywords = []string{"expert", "master", "professional", "enterprise"}

// Scorer scores and ranks snippets. Stateless; the zero value is
// usable.
type Scorer struct{}

// NewScorer creates a snippet scorer.
func NewScorer() *Scorer { return &Scorer{} }

// Score derives all scoring attributes for one snippet under the
// given filters.
func (s *Scorer) Score(snip Snippet, f Filters) Scored {
	resourceType := ClassifyType(snip.URL, snip.Title, snip.Body)

	content := snip.Body
	if len(content) > maxContentLen {
		content = content[:maxContentLen] + "..."
	}

	published := snip.PublishedDate
	if published == "" {
		published = "Unknown"
	}

	return Scored{
		Title:           snip.Title,
		URL:             snip.URL,
		Content:         content,
		Excerpts:        ExtractExcerpts(snip.Body, 3),
		ResourceType:    resourceType,
		DifficultyLevel: DetectDifficulty(snip.Body, snip.Title),
		QualityScore:    s.quality(snip, f, resourceType),
		RelevanceScore:  Relevance(snip.Body, f.Subject),
		Domain:          extractDomain(snip.URL),
		PublishedDate:   published,
	}
}

// Rank scores every snippet and orders the results by quality then
// relevance, both descending.
func (s *Scorer) Rank(snips []Snippet, f Filters) []Scored {
	out := make([]Scored, len(snips))
	for i, snip := range snips {
		out[i] = s.Score(snip, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].QualityScore != out[j].QualityScore {
			return out[i].QualityScore > out[j].QualityScore
		}
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}

// quality blends the upstream base score with snippet heuristics,
// capped at 1.0.
func (s *Scorer) quality(snip Snippet, f Filters, resourceType string) float64 {
	score := snip.BaseScore * 0.3

	title := strings.ToLower(snip.Title)
	if f.Subject != "" && strings.Contains(title, strings.ToLower(f.Subject)) {
		score += 0.2
	}

	switch {
	case len(snip.Body) > 1000:
		score += 0.2
	case len(snip.Body) > 500:
		score += 0.1
	}

	rawURL := strings.ToLower(snip.URL)
	for _, domain := range trustedDomains {
		if strings.Contains(rawURL, domain) {
			score += 0.2
			break
		}
	}

	if f.ResourceType != "" && resourceType == f.ResourceType {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// ClassifyType maps a snippet onto one resource type, checking the
// type classes in priority order: video, course, documentation,
// practice, paper, then title/content heuristics, then general.
func ClassifyType(rawURL, title, body string) string {
	urlLower := strings.ToLower(rawURL)
	titleLower := strings.ToLower(title)
	bodyLower := strings.ToLower(body)

	switch {
	case containsAny(urlLower, videoDomains):
		return TypeVideo
	case containsAny(urlLower, courseDomains):
		return TypeCourse
	case containsAny(urlLower, docMarkers):
		return TypeDocumentation
	case containsAny(urlLower, practiceDomains):
		return TypePractice
	case containsAny(urlLower, paperDomains):
		return TypePaper
	case strings.Contains(titleLower, "tutorial") || strings.Contains(titleLower, "guide"):
		return TypeDocumentation
	case strings.Contains(titleLower, "course") || strings.Contains(titleLower, "curriculum"):
		return TypeCourse
	case strings.Contains(bodyLower, "exercise") || strings.Contains(bodyLower, "problem"):
		return TypePractice
	}
	return TypeGeneral
}

// Relevance returns the fraction of the subject's keyword list found
// in the body. No subject (or the General catch-all) is neutral 0.5,
// not 0 — an unfiltered search should not bury every result.
func Relevance(body, subject string) float64 {
	if subject == "" || subject == "General" {
		return 0.5
	}
	keywords := subjectKeywords[subject]
	if len(keywords) == 0 {
		return 0
	}
	bodyLower := strings.ToLower(body)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(bodyLower, kw) {
			matches++
		}
	}
	frac := float64(matches) / float64(len(keywords))
	if frac > 1.0 {
		frac = 1.0
	}
	return frac
}

// DetectDifficulty buckets a snippet by keyword counts over body and
// title. Expert keywords must strictly dominate to rate advanced;
// ties fall toward beginner.
func DetectDifficulty(body, title string) string {
	text := strings.ToLower(body + " " + title)

	beginner := countHits(text, beginnerKeywords)
	intermediate := countHits(text, intermediateKeywords)
	expert := countHits(text, expertKeywords)

	switch {
	case expert > intermediate && expert > beginner:
		return DifficultyAdvanced
	case intermediate > beginner:
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}

// ExtractExcerpts pulls up to max sentences of meaningful length from
// the body.
func ExtractExcerpts(body string, max int) []string {
	sentences := strings.Split(body, ". ")
	var excerpts []string
	limit := max * 2
	if limit > len(sentences) {
		limit = len(sentences)
	}
	for _, sentence := range sentences[:limit] {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) > 50 {
			excerpts = append(excerpts, strings.TrimSuffix(trimmed, ".")+".")
		}
		if len(excerpts) == max {
			break
		}
	}
	return excerpts
}

func extractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	return parsed.Host
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
