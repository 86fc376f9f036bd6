package models

import (
	"strings"
	"time"
)

// Catalog categories are a fixed set; the filter layer compares them
// case-insensitively.
const (
	CategoryIoT        = "IoT"
	CategoryBlockchain = "Blockchain"
	CategoryWeb        = "Web"
)

// Categories lists every valid project category in display order.
func Categories() []string {
	return []string{CategoryIoT, CategoryBlockchain, CategoryWeb}
}

// Project is one purchasable listing in the catalog. Projects are created and
// updated only through the admin panel; the public catalog is read-only.
type Project struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	Category         string    `json:"category" db:"category"`
	Price            float64   `json:"price" db:"price"`
	Image            string    `json:"image,omitempty" db:"image"`
	Features         []string  `json:"features" db:"features"`
	TechnicalDetails string    `json:"technicalDetails,omitempty" db:"technical_details"`
	Featured         bool      `json:"featured" db:"featured"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// ProjectForm carries the fields an admin may set when creating or updating
// a project.
type ProjectForm struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	Price            float64  `json:"price"`
	Image            string   `json:"image"`
	Features         []string `json:"features"`
	TechnicalDetails string   `json:"technicalDetails"`
	Featured         bool     `json:"featured"`
}

// ValidCategory reports whether c names one of the fixed categories,
// ignoring case.
func ValidCategory(c string) bool {
	for _, known := range Categories() {
		if strings.EqualFold(known, c) {
			return true
		}
	}
	return false
}
