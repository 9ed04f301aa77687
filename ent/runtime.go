// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepmate/engine/ent/achievementunlock"
	"github.com/prepmate/engine/ent/llmrequestevent"
	"github.com/prepmate/engine/ent/note"
	"github.com/prepmate/engine/ent/owner"
	"github.com/prepmate/engine/ent/pointevent"
	"github.com/prepmate/engine/ent/reviewevent"
	"github.com/prepmate/engine/ent/reviewitem"
	"github.com/prepmate/engine/ent/schema"
	"github.com/prepmate/engine/ent/studysession"
	"github.com/prepmate/engine/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementunlockMixin := schema.AchievementUnlock{}.Mixin()
	achievementunlockMixinFields0 := achievementunlockMixin[0].Fields()
	_ = achievementunlockMixinFields0
	achievementunlockFields := schema.AchievementUnlock{}.Fields()
	_ = achievementunlockFields
	// achievementunlockDescOwnerID is the schema descriptor for owner_id field.
	achievementunlockDescOwnerID := achievementunlockMixinFields0[0].Descriptor()
	// achievementunlock.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	achievementunlock.OwnerIDValidator = achievementunlockDescOwnerID.Validators[0].(func(string) error)
	// achievementunlockDescAchievementType is the schema descriptor for achievement_type field.
	achievementunlockDescAchievementType := achievementunlockFields[0].Descriptor()
	// achievementunlock.AchievementTypeValidator is a validator for the "achievement_type" field. It is called by the builders before save.
	achievementunlock.AchievementTypeValidator = achievementunlockDescAchievementType.Validators[0].(func(string) error)
	// achievementunlockDescTitle is the schema descriptor for title field.
	achievementunlockDescTitle := achievementunlockFields[1].Descriptor()
	// achievementunlock.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievementunlock.TitleValidator = achievementunlockDescTitle.Validators[0].(func(string) error)
	// achievementunlockDescDescription is the schema descriptor for description field.
	achievementunlockDescDescription := achievementunlockFields[2].Descriptor()
	// achievementunlock.DefaultDescription holds the default value on creation for the description field.
	achievementunlock.DefaultDescription = achievementunlockDescDescription.Default.(string)
	// achievementunlockDescIcon is the schema descriptor for icon field.
	achievementunlockDescIcon := achievementunlockFields[3].Descriptor()
	// achievementunlock.DefaultIcon holds the default value on creation for the icon field.
	achievementunlock.DefaultIcon = achievementunlockDescIcon.Default.(string)
	// achievementunlockDescRarity is the schema descriptor for rarity field.
	achievementunlockDescRarity := achievementunlockFields[4].Descriptor()
	// achievementunlock.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	achievementunlock.RarityValidator = achievementunlockDescRarity.Validators[0].(func(string) error)
	// achievementunlockDescUnlockedAt is the schema descriptor for unlocked_at field.
	achievementunlockDescUnlockedAt := achievementunlockFields[5].Descriptor()
	// achievementunlock.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	achievementunlock.DefaultUnlockedAt = achievementunlockDescUnlockedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	noteMixin := schema.Note{}.Mixin()
	noteMixinFields0 := noteMixin[0].Fields()
	_ = noteMixinFields0
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescOwnerID is the schema descriptor for owner_id field.
	noteDescOwnerID := noteMixinFields0[0].Descriptor()
	// note.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	note.OwnerIDValidator = noteDescOwnerID.Validators[0].(func(string) error)
	// noteDescTitle is the schema descriptor for title field.
	noteDescTitle := noteFields[0].Descriptor()
	// note.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	note.TitleValidator = noteDescTitle.Validators[0].(func(string) error)
	// noteDescContent is the schema descriptor for content field.
	noteDescContent := noteFields[1].Descriptor()
	// note.DefaultContent holds the default value on creation for the content field.
	note.DefaultContent = noteDescContent.Default.(string)
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[2].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	ownerFields := schema.Owner{}.Fields()
	_ = ownerFields
	// ownerDescOwnerID is the schema descriptor for owner_id field.
	ownerDescOwnerID := ownerFields[0].Descriptor()
	// owner.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	owner.OwnerIDValidator = ownerDescOwnerID.Validators[0].(func(string) error)
	// ownerDescDisplayName is the schema descriptor for display_name field.
	ownerDescDisplayName := ownerFields[1].Descriptor()
	// owner.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	owner.DisplayNameValidator = ownerDescDisplayName.Validators[0].(func(string) error)
	// ownerDescCreatedAt is the schema descriptor for created_at field.
	ownerDescCreatedAt := ownerFields[2].Descriptor()
	// owner.DefaultCreatedAt holds the default value on creation for the created_at field.
	owner.DefaultCreatedAt = ownerDescCreatedAt.Default.(func() time.Time)
	pointeventMixin := schema.PointEvent{}.Mixin()
	pointeventMixinFields0 := pointeventMixin[0].Fields()
	_ = pointeventMixinFields0
	pointeventMixinFields1 := pointeventMixin[1].Fields()
	_ = pointeventMixinFields1
	pointeventFields := schema.PointEvent{}.Fields()
	_ = pointeventFields
	// pointeventDescTimestamp is the schema descriptor for timestamp field.
	pointeventDescTimestamp := pointeventMixinFields0[1].Descriptor()
	// pointevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointevent.DefaultTimestamp = pointeventDescTimestamp.Default.(func() time.Time)
	// pointeventDescOwnerID is the schema descriptor for owner_id field.
	pointeventDescOwnerID := pointeventMixinFields1[0].Descriptor()
	// pointevent.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	pointevent.OwnerIDValidator = pointeventDescOwnerID.Validators[0].(func(string) error)
	// pointeventDescActionType is the schema descriptor for action_type field.
	pointeventDescActionType := pointeventFields[1].Descriptor()
	// pointevent.ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	pointevent.ActionTypeValidator = pointeventDescActionType.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventMixinFields1 := revieweventMixin[1].Fields()
	_ = revieweventMixinFields1
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescOwnerID is the schema descriptor for owner_id field.
	revieweventDescOwnerID := revieweventMixinFields1[0].Descriptor()
	// reviewevent.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	reviewevent.OwnerIDValidator = revieweventDescOwnerID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[0].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[1].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(string) error)
	reviewitemMixin := schema.ReviewItem{}.Mixin()
	reviewitemMixinFields0 := reviewitemMixin[0].Fields()
	_ = reviewitemMixinFields0
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescOwnerID is the schema descriptor for owner_id field.
	reviewitemDescOwnerID := reviewitemMixinFields0[0].Descriptor()
	// reviewitem.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	reviewitem.OwnerIDValidator = reviewitemDescOwnerID.Validators[0].(func(string) error)
	// reviewitemDescItemID is the schema descriptor for item_id field.
	reviewitemDescItemID := reviewitemFields[0].Descriptor()
	// reviewitem.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewitem.ItemIDValidator = reviewitemDescItemID.Validators[0].(func(string) error)
	// reviewitemDescQuestion is the schema descriptor for question field.
	reviewitemDescQuestion := reviewitemFields[1].Descriptor()
	// reviewitem.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	reviewitem.QuestionValidator = reviewitemDescQuestion.Validators[0].(func(string) error)
	// reviewitemDescAnswer is the schema descriptor for answer field.
	reviewitemDescAnswer := reviewitemFields[2].Descriptor()
	// reviewitem.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	reviewitem.AnswerValidator = reviewitemDescAnswer.Validators[0].(func(string) error)
	// reviewitemDescDifficulty is the schema descriptor for difficulty field.
	reviewitemDescDifficulty := reviewitemFields[3].Descriptor()
	// reviewitem.DefaultDifficulty holds the default value on creation for the difficulty field.
	reviewitem.DefaultDifficulty = reviewitemDescDifficulty.Default.(string)
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[5].Descriptor()
	// reviewitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewitem.DefaultIntervalDays = reviewitemDescIntervalDays.Default.(int)
	// reviewitem.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewitem.IntervalDaysValidator = reviewitemDescIntervalDays.Validators[0].(func(int) error)
	// reviewitemDescNextReviewAt is the schema descriptor for next_review_at field.
	reviewitemDescNextReviewAt := reviewitemFields[6].Descriptor()
	// reviewitem.DefaultNextReviewAt holds the default value on creation for the next_review_at field.
	reviewitem.DefaultNextReviewAt = reviewitemDescNextReviewAt.Default.(func() time.Time)
	// reviewitemDescReviewCount is the schema descriptor for review_count field.
	reviewitemDescReviewCount := reviewitemFields[7].Descriptor()
	// reviewitem.DefaultReviewCount holds the default value on creation for the review_count field.
	reviewitem.DefaultReviewCount = reviewitemDescReviewCount.Default.(int)
	// reviewitemDescCorrectCount is the schema descriptor for correct_count field.
	reviewitemDescCorrectCount := reviewitemFields[8].Descriptor()
	// reviewitem.DefaultCorrectCount holds the default value on creation for the correct_count field.
	reviewitem.DefaultCorrectCount = reviewitemDescCorrectCount.Default.(int)
	// reviewitemDescCreatedAt is the schema descriptor for created_at field.
	reviewitemDescCreatedAt := reviewitemFields[10].Descriptor()
	// reviewitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewitem.DefaultCreatedAt = reviewitemDescCreatedAt.Default.(func() time.Time)
	studysessionMixin := schema.StudySession{}.Mixin()
	studysessionMixinFields0 := studysessionMixin[0].Fields()
	_ = studysessionMixinFields0
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescOwnerID is the schema descriptor for owner_id field.
	studysessionDescOwnerID := studysessionMixinFields0[0].Descriptor()
	// studysession.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	studysession.OwnerIDValidator = studysessionDescOwnerID.Validators[0].(func(string) error)
	// studysessionDescSessionID is the schema descriptor for session_id field.
	studysessionDescSessionID := studysessionFields[0].Descriptor()
	// studysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysession.SessionIDValidator = studysessionDescSessionID.Validators[0].(func(string) error)
	// studysessionDescStartTime is the schema descriptor for start_time field.
	studysessionDescStartTime := studysessionFields[1].Descriptor()
	// studysession.DefaultStartTime holds the default value on creation for the start_time field.
	studysession.DefaultStartTime = studysessionDescStartTime.Default.(func() time.Time)
	// studysessionDescDurationSecs is the schema descriptor for duration_secs field.
	studysessionDescDurationSecs := studysessionFields[3].Descriptor()
	// studysession.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	studysession.DefaultDurationSecs = studysessionDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventMixinFields1 := submissioneventMixin[1].Fields()
	_ = submissioneventMixinFields1
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescOwnerID is the schema descriptor for owner_id field.
	submissioneventDescOwnerID := submissioneventMixinFields1[0].Descriptor()
	// submissionevent.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	submissionevent.OwnerIDValidator = submissioneventDescOwnerID.Validators[0].(func(string) error)
	// submissioneventDescQuestionID is the schema descriptor for question_id field.
	submissioneventDescQuestionID := submissioneventFields[0].Descriptor()
	// submissionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	submissionevent.QuestionIDValidator = submissioneventDescQuestionID.Validators[0].(func(string) error)
	// submissioneventDescSubject is the schema descriptor for subject field.
	submissioneventDescSubject := submissioneventFields[1].Descriptor()
	// submissionevent.DefaultSubject holds the default value on creation for the subject field.
	submissionevent.DefaultSubject = submissioneventDescSubject.Default.(string)
}
