package notes

import "time"

// TypeInsight is the only note type generated today. The column stays
// free-form so future generators can tag their own types.
const TypeInsight = "insight"

type Note struct {
	ID        int       `json:"id"`
	Text      string    `json:"note_text"`
	Type      string    `json:"note_type"`
	CreatedAt time.Time `json:"created_at"`
}

// NotesResult always carries a notes list, possibly empty. Message is
// set only when generation was wanted but could not run; it explains
// why the list is stale or empty instead of failing the request.
type NotesResult struct {
	Notes   []Note `json:"notes"`
	Message string `json:"message,omitempty"`
}
