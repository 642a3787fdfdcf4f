package entity

import "time"

// ImportRow is one input line of a batch import.
type ImportRow struct {
	SerialNumber string `json:"serial_number"`
	DisplayName  string `json:"display_name"`
}

// ImportSkip records why a row of a batch import was not registered. Row is 1-based.
type ImportSkip struct {
	Row          int    `json:"row"`
	SerialNumber string `json:"serial_number,omitempty"`
	Reason       string `json:"reason"`
}

// ImportResult summarizes a batch import.
type ImportResult struct {
	RegisteredCount int          `json:"registered_count"`
	Skipped         []ImportSkip `json:"skipped"`
}

// HistoryRow is the flat report projection of one checkpoint.
type HistoryRow struct {
	CheckpointID uint      `json:"checkpoint_id"`
	Timestamp    time.Time `json:"timestamp"`
	SerialNumber string    `json:"serial_number"`
	StatusBefore string    `json:"status_before"`
	StatusAfter  string    `json:"status_after"`
	Location     string    `json:"location"`
	Responsible  string    `json:"responsible"`
}
