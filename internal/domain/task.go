package domain

// TaskStatus representa o estado de uma tarefa interna
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// TaskPriority representa a prioridade de uma tarefa
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task representa uma tarefa interna, opcionalmente vinculada a um cliente
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ClientID    int64        `json:"clientId,omitempty"` // 0 = sem cliente
	Assignee    string       `json:"assignee"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *Date        `json:"dueDate,omitempty"`
}
