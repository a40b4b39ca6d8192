package domain

// Task is a to-do item. Description is a pointer so a task created
// without one serializes as null rather than "".
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}
