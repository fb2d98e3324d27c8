package models

import "time"

const (
	SourceAPI     = "api"
	SourceJournal = "journal"
)

// DreamSubmission is a raw dream narrative entering the pipeline, either from
// the HTTP API or from the journal importer.
type DreamSubmission struct {
	SubmissionID string             `json:"submission_id"`
	UserID       string             `json:"user_id,omitempty"`
	Source       string             `json:"source"`
	Language     string             `json:"language,omitempty"`
	Text         string             `json:"text"`
	Metadata     SubmissionMetadata `json:"metadata"`
}

type SubmissionMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author,omitempty"`
	JournalID string    `json:"journal_id,omitempty"`
	URL       string    `json:"url,omitempty"`
}

// JournalEntry is the shape returned by the external journal service.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"` // markdown
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
