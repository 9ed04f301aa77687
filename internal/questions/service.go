// Package questions generates exam-style practice questions,
// evaluates submitted answers, and records submissions for the
// achievement aggregates.
package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/prepmate/engine/internal/errs"
	"github.com/prepmate/engine/internal/llm"
	"github.com/prepmate/engine/internal/points"
	"github.com/prepmate/engine/internal/store"
)

// Question is one generated exam-style question.
type Question struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Marks      int      `json:"marks"`
	Topic      string   `json:"topic"`
	Year       int      `json:"year"`
	Difficulty string   `json:"difficulty"`
	KeyPoints  []string `json:"key_points"`
}

// Evaluation is the graded assessment of a submitted answer.
type Evaluation struct {
	Score           float64  `json:"score"`
	MaxScore        float64  `json:"max_score"`
	Feedback        string   `json:"feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MissingConcepts []string `json:"missing_concepts"`
	ExamTips        []string `json:"exam_tips"`
}

// Submission is the persisted outcome of one answered question.
type Submission struct {
	SubmissionID  string
	Evaluation    Evaluation
	PointsAwarded int
}

// pointsPerMark scales an evaluation score into reward points.
const pointsPerMark = 10

// defaultYear is stamped on questions the generator leaves undated.
const defaultYear = 2024

// Service generates and grades practice questions.
type Service struct {
	gen    llm.Generator
	subs   store.SubmissionRepo
	ledger *points.Ledger
}

// NewService creates a practice-question service.
func NewService(gen llm.Generator, subs store.SubmissionRepo, ledger *points.Ledger) *Service {
	return &Service{gen: gen, subs: subs, ledger: ledger}
}

// Generate produces exam-style questions for a subject and topic.
// Unlike flashcard generation there is no degraded path: a question
// paper mined from heuristics is worthless, so unusable output fails
// with *errs.UpstreamGenerationError.
func (s *Service) Generate(ctx context.Context, subject, topic, difficulty string, count int) ([]Question, error) {
	if subject == "" {
		return nil, &errs.ValidationError{Field: "subject", Msg: "must not be empty"}
	}
	if topic == "" {
		return nil, &errs.ValidationError{Field: "topic", Msg: "must not be empty"}
	}
	if count <= 0 {
		count = 10
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)
	res, err := s.gen.Generate(ctx, llm.Request{
		System:    "You are an examiner who writes rigorous university-level exam questions.",
		Prompt:    questionPrompt(subject, topic, difficulty, count),
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, &errs.UpstreamGenerationError{Err: err}
	}

	questions, err := ParseQuestions(string(res.Content), topic, difficulty)
	if err != nil {
		return nil, &errs.UpstreamGenerationError{Err: err}
	}
	return questions, nil
}

// SubmitAnswer grades an answer, records the submission, and awards
// points proportional to the score.
func (s *Service) SubmitAnswer(ctx context.Context, ownerID, questionID, questionText, answerText, subject string, maxMarks int) (*Submission, error) {
	if ownerID == "" {
		return nil, &errs.ValidationError{Field: "owner id", Msg: "must not be empty"}
	}
	if strings.TrimSpace(answerText) == "" {
		return nil, &errs.ValidationError{Field: "answer", Msg: "must not be empty"}
	}
	if subject == "" {
		subject = "General"
	}
	if maxMarks <= 0 {
		maxMarks = 10
	}

	eval, err := s.evaluate(ctx, questionText, answerText, subject, maxMarks)
	if err != nil {
		return nil, err
	}

	submissionID := uuid.NewString()
	score := eval.Score
	err = s.subs.Append(ctx, store.SubmissionEventData{
		OwnerID:    ownerID,
		QuestionID: questionID,
		Subject:    subject,
		AnswerText: answerText,
		Score:      &score,
	})
	if err != nil {
		return nil, fmt.Errorf("record submission: %w", err)
	}

	awarded := int(eval.Score * pointsPerMark)
	err = s.ledger.Append(ctx, points.Award{
		OwnerID:        ownerID,
		Amount:         awarded,
		ActionType:     points.ActionQuestionSubmitted,
		ReferenceID:    submissionID,
		IdempotencyKey: "submission:" + submissionID,
	})
	if err != nil {
		return nil, fmt.Errorf("award submission points: %w", err)
	}

	return &Submission{
		SubmissionID:  submissionID,
		Evaluation:    *eval,
		PointsAwarded: awarded,
	}, nil
}

// Hints asks the generator for three progressive hints. Hints are
// best-effort: any failure degrades to generic study advice rather
// than surfacing an error for a cosmetic feature.
func (s *Service) Hints(ctx context.Context, questionText, subject string) []string {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)
	res, err := s.gen.Generate(ctx, llm.Request{
		Prompt:    hintPrompt(questionText, subject),
		MaxTokens: 512,
	})
	if err == nil {
		var hints []string
		if jsonErr := json.Unmarshal([]byte(llm.StripFences(string(res.Content))), &hints); jsonErr == nil && len(hints) > 0 {
			return hints
		}
	}
	return []string{
		"Think about the core concepts",
		"Break down the problem",
		"Review your notes on this topic",
	}
}

func (s *Service) evaluate(ctx context.Context, questionText, answerText, subject string, maxMarks int) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)
	res, err := s.gen.Generate(ctx, llm.Request{
		System:    "You are a fair but rigorous examiner grading student answers.",
		Prompt:    evaluationPrompt(questionText, answerText, subject, maxMarks),
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, &errs.UpstreamGenerationError{Err: err}
	}

	eval, err := ParseEvaluation(string(res.Content), maxMarks)
	if err != nil {
		return nil, &errs.UpstreamGenerationError{Err: err}
	}
	return eval, nil
}

// ParseQuestions parses generator output into questions. Entries
// without a question text or positive marks are dropped; missing
// fields are defaulted, with ids made unique by a random suffix.
func ParseQuestions(raw, topic, difficulty string) ([]Question, error) {
	var decoded []Question
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &decoded); err != nil {
		return nil, fmt.Errorf("parse question array: %w", err)
	}

	var questions []Question
	for i, q := range decoded {
		if q.Question == "" || q.Marks <= 0 {
			continue
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d_%s", i+1, uuid.NewString()[:8])
		}
		if q.Topic == "" {
			q.Topic = topic
		}
		if q.Difficulty == "" {
			q.Difficulty = difficulty
		}
		if q.Year == 0 {
			q.Year = defaultYear
		}
		if q.KeyPoints == nil {
			q.KeyPoints = []string{}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// ParseEvaluation parses a graded evaluation, defaulting absent list
// fields and clamping the score into [0, max].
func ParseEvaluation(raw string, maxMarks int) (*Evaluation, error) {
	var eval Evaluation
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &eval); err != nil {
		return nil, fmt.Errorf("parse evaluation: %w", err)
	}

	if eval.MaxScore == 0 {
		eval.MaxScore = float64(maxMarks)
	}
	if eval.Score < 0 {
		eval.Score = 0
	}
	if eval.Score > eval.MaxScore {
		eval.Score = eval.MaxScore
	}
	if eval.Strengths == nil {
		eval.Strengths = []string{}
	}
	if eval.Improvements == nil {
		eval.Improvements = []string{}
	}
	if eval.MissingConcepts == nil {
		eval.MissingConcepts = []string{}
	}
	if eval.ExamTips == nil {
		eval.ExamTips = []string{}
	}
	return &eval, nil
}

func questionPrompt(subject, topic, difficulty string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d previous year examination style questions for %s on topic: %s.\n\n", count, subject, topic)
	fmt.Fprintf(&b, "Difficulty level: %s\n\n", difficulty)
	b.WriteString("Requirements:\n")
	b.WriteString("- Create university/competitive exam level questions\n")
	b.WriteString("- Include a mix of short answer (2-3 marks) and long answer (5-10 marks) questions\n")
	b.WriteString("- Questions should test conceptual understanding and application\n")
	b.WriteString("- Include key points that should be covered in the answer\n")
	b.WriteString("- Vary question types (explain, compare, analyze, solve, derive)\n\n")
	b.WriteString("Format as JSON array with this exact structure:\n")
	fmt.Fprintf(&b, `[{"id": "q1", "question": "...", "marks": 5, "topic": %q, "year": 2024, "difficulty": %q, "key_points": ["...", "..."]}]`, topic, difficulty)
	b.WriteString("\n\nMake questions realistic and exam-worthy. Return ONLY the JSON array.")
	return b.String()
}

func evaluationPrompt(questionText, answerText, subject string, maxMarks int) string {
	var b strings.Builder
	b.WriteString("Evaluate this student answer for an examination question.\n\n")
	fmt.Fprintf(&b, "Subject: %s\nMax Marks: %d\n\n", subject, maxMarks)
	fmt.Fprintf(&b, "Question:\n%s\n\nStudent Answer:\n%s\n\n", questionText, answerText)
	b.WriteString("Provide a comprehensive evaluation as JSON with this exact structure:\n")
	fmt.Fprintf(&b, `{"score": 8.5, "max_score": %d, "feedback": "...", "strengths": ["..."], "improvements": ["..."], "missing_concepts": ["..."], "exam_tips": ["..."]}`, maxMarks)
	b.WriteString("\n\nBe fair but constructive. Consider correctness, completeness, clarity, terminology, and structure.")
	b.WriteString("\nReturn ONLY the JSON object.")
	return b.String()
}

func hintPrompt(questionText, subject string) string {
	var b strings.Builder
	b.WriteString("Generate 3 helpful hints for solving this exam question.\n\n")
	fmt.Fprintf(&b, "Subject: %s\nQuestion: %s\n\n", subject, questionText)
	b.WriteString("Hints should not give away the answer, should guide the thinking process, and should be progressively more helpful.\n")
	b.WriteString(`Return as JSON array: ["Hint 1", "Hint 2", "Hint 3"]`)
	return b.String()
}
