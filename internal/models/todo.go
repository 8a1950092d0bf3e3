package models

// Todo is a one-off task bound to a single due date. Unlike habits there
// is no recurrence: exactly one date, one completion flag.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD due date
	IsCompleted bool   `json:"is_completed"`
	CreatedAt   int64  `json:"created_at"` // epoch milliseconds
}
