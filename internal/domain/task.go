package domain

// Task represents a single to-do item
type Task struct {
	Record
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
