package entity

import "time"

// Problem is a single queued item. ID is assigned by the database at
// insertion and doubles as the storage order for position lookups.
type Problem struct {
	ID      int64     `json:"id" db:"id"`
	Body    string    `json:"body" db:"body"`
	Source  string    `json:"source" db:"source"`
	Used    bool      `json:"used" db:"used"`
	AddedAt time.Time `json:"added_at" db:"added_at"`
}

// ProblemInput is one record of the import file.
type ProblemInput struct {
	Body   string `json:"body"`
	Source string `json:"source"`
}

// Stats summarizes the queue state.
type Stats struct {
	Total      int64
	Used       int64
	Remaining  int64
	SkipOffset int64
	// NextLogicalIndex is Used + 1 + SkipOffset, the 1-based position the
	// next scheduled delivery will target.
	NextLogicalIndex int64
}
