package models

import "time"

// Inquiry is a purchase inquiry submitted through the public contact flow.
// This layer only reads, deletes, and exports inquiries; creation happens on
// the public intake endpoint.
type Inquiry struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	ProjectType string    `json:"projectType" db:"project_type"`
	Budget      string    `json:"budget" db:"budget"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// InquiryForm is the public intake payload.
type InquiryForm struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ProjectType string `json:"projectType" binding:"required"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}
