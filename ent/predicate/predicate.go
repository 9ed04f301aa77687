// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementUnlock is the predicate function for achievementunlock builders.
type AchievementUnlock func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// Owner is the predicate function for owner builders.
type Owner func(*sql.Selector)

// PointEvent is the predicate function for pointevent builders.
type PointEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// ReviewItem is the predicate function for reviewitem builders.
type ReviewItem func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)
