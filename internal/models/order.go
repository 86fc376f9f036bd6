package models

import "time"

// Order statuses. Any status may be assigned from any other; the admin has
// full override and no transition is guarded.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid status.
func OrderStatuses() []string {
	return []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order records a customer purchase of one catalog project. Price is the
// project's price at the time the order was placed; after creation only
// Status may change.
type Order struct {
	ID            string    `json:"id" db:"id"`
	ProjectID     string    `json:"projectId" db:"project_id"`
	ProjectTitle  string    `json:"projectTitle" db:"project_title"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	CustomerEmail string    `json:"customerEmail" db:"customer_email"`
	Price         float64   `json:"price" db:"price"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// OrderForm is the public purchase payload.
type OrderForm struct {
	ProjectID     string `json:"projectId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
}

// OrderStats summarizes the order book for the admin dashboard.
type OrderStats struct {
	Total     int     `json:"total"`
	Revenue   float64 `json:"revenue"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
}
