package entities

// TaskStatus is the two-state to-do lifecycle.

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a to-do item scoped by account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI: username-index (PK: username)
//
// CompletedDate is present only while Status is completed; reopening clears it.
type Task struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssignedTo  string     `json:"assigned_to"`

	DateAssigned  Date `json:"date_assigned"`
	DueDate       Date `json:"due_date"`
	CompletedDate Date `json:"completed_date"`
}
