package dto

import "time"

// CreateTaskRequest carries the owner explicitly; the referenced
// account must exist.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=1000"`
	UserID      int64  `json:"user_id" binding:"required"`
}

// UpdateTaskRequest replaces title, description and completed. A
// user_id in the body is accepted but ignored: the stored owner wins.
type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=1000"`
	Completed   bool   `json:"completed"`
	UserID      int64  `json:"user_id"`
}

type TaskResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}
