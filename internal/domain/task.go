package domain

import "time"

// Task belongs to exactly one user. The owner is set at creation and
// never changes afterwards; updates touch title, description and the
// completed flag only.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
