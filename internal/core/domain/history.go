package domain

import "time"

// HistoryEntry is a recorded successful conversion.
type HistoryEntry struct {
	// ID uniquely identifies the entry.
	ID string `json:"id"`

	// Source is the converted input.
	Source Numeral `json:"source"`

	// Target is the conversion output.
	Target Numeral `json:"target"`

	// Magnitude is the decimal value of Source.
	Magnitude int64 `json:"magnitude"`

	// CreatedAt is when the conversion ran.
	CreatedAt time.Time `json:"created_at"`
}
