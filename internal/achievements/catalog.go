package achievements

// Aggregates are the owner-level counts the rule predicates inspect.
// They are produced by store-level aggregate queries, never by
// scanning full tables in-process.
type Aggregates struct {
	NoteCount       int
	FlashcardCount  int
	SubmissionCount int
	Streak          int
}

// Rule is one entry in the achievement catalog.
type Rule struct {
	Type        string
	Title       string
	Description string
	Icon        string
	Rarity      Rarity
	Qualifies   func(Aggregates) bool
}

// Catalog returns the fixed, ordered achievement rule set. Rules are
// evaluated in this order; every qualifying rule fires in the same
// invocation.
func Catalog() []Rule {
	return []Rule{
		{
			Type:        "first_note",
			Title:       "First Note",
			Description: "Created your first note",
			Icon:        "📝",
			Rarity:      RarityCommon,
			Qualifies:   func(a Aggregates) bool { return a.NoteCount >= 1 },
		},
		{
			Type:        "note_master",
			Title:       "Note Master",
			Description: "Created 50 notes",
			Icon:        "📚",
			Rarity:      RarityRare,
			Qualifies:   func(a Aggregates) bool { return a.NoteCount >= 50 },
		},
		{
			Type:        "week_streak",
			Title:       "Week Warrior",
			Description: "Maintained a 7-day study streak",
			Icon:        "🔥",
			Rarity:      RarityUncommon,
			Qualifies:   func(a Aggregates) bool { return a.Streak >= 7 },
		},
		{
			Type:        "month_streak",
			Title:       "Month Dominator",
			Description: "Maintained a 30-day study streak",
			Icon:        "💪",
			Rarity:      RarityEpic,
			Qualifies:   func(a Aggregates) bool { return a.Streak >= 30 },
		},
		{
			Type:        "pyq_master",
			Title:       "PYQ Master",
			Description: "Completed 20 practice questions",
			Icon:        "🎯",
			Rarity:      RarityRare,
			Qualifies:   func(a Aggregates) bool { return a.SubmissionCount >= 20 },
		},
		{
			Type:        "flashcard_creator",
			Title:       "Flashcard Creator",
			Description: "Generated 100 flashcards",
			Icon:        "🎴",
			Rarity:      RarityRare,
			Qualifies:   func(a Aggregates) bool { return a.FlashcardCount >= 100 },
		},
	}
}
