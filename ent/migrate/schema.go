// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementUnlocksColumns holds the columns for the "achievement_unlocks" table.
	AchievementUnlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "achievement_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "rarity", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AchievementUnlocksTable holds the schema information for the "achievement_unlocks" table.
	AchievementUnlocksTable = &schema.Table{
		Name:       "achievement_unlocks",
		Columns:    AchievementUnlocksColumns,
		PrimaryKey: []*schema.Column{AchievementUnlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementunlock_owner_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementUnlocksColumns[1]},
			},
			{
				Name:    "achievementunlock_owner_id_achievement_type",
				Unique:  true,
				Columns: []*schema.Column{AchievementUnlocksColumns[1], AchievementUnlocksColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}
	// NotesColumns holds the columns for the "notes" table.
	NotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotesTable holds the schema information for the "notes" table.
	NotesTable = &schema.Table{
		Name:       "notes",
		Columns:    NotesColumns,
		PrimaryKey: []*schema.Column{NotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "note_owner_id",
				Unique:  false,
				Columns: []*schema.Column{NotesColumns[1]},
			},
		},
	}
	// OwnersColumns holds the columns for the "owners" table.
	OwnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OwnersTable holds the schema information for the "owners" table.
	OwnersTable = &schema.Table{
		Name:       "owners",
		Columns:    OwnersColumns,
		PrimaryKey: []*schema.Column{OwnersColumns[0]},
	}
	// PointEventsColumns holds the columns for the "point_events" table.
	PointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "action_type", Type: field.TypeString},
		{Name: "reference_id", Type: field.TypeString, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// PointEventsTable holds the schema information for the "point_events" table.
	PointEventsTable = &schema.Table{
		Name:       "point_events",
		Columns:    PointEventsColumns,
		PrimaryKey: []*schema.Column{PointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[1]},
			},
			{
				Name:    "pointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[2]},
			},
			{
				Name:    "pointevent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[3]},
			},
			{
				Name:    "pointevent_owner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[3], PointEventsColumns[2]},
			},
			{
				Name:    "pointevent_action_type",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[5]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "hint", Type: field.TypeString, Nullable: true},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1]},
			},
			{
				Name:    "reviewitem_owner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[8]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_owner_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_owner_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1], StudySessionsColumns[3]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: "General"},
		{Name: "answer_text", Type: field.TypeString, Size: 2147483647},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3]},
			},
			{
				Name:    "submissionevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementUnlocksTable,
		LlmRequestEventsTable,
		NotesTable,
		OwnersTable,
		PointEventsTable,
		ReviewEventsTable,
		ReviewItemsTable,
		StudySessionsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
