// Package database provides the persistent store behind the storefront.
// Two implementations exist: a JSON file for local development (JSONDatabase)
// and PostgreSQL for hosted deployments (PostgresStore). Both satisfy the
// handlers.Store interface.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"devmarket/internal/models"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// dbData is the on-disk layout of the JSON store.
type dbData struct {
	Projects  []models.Project `json:"projects"`
	Inquiries []models.Inquiry `json:"inquiries"`
	Orders    []models.Order   `json:"orders"`
}

// JSONDatabase keeps all collections in a single JSON file, guarded by a
// read-write mutex. Every mutation rewrites the file.
type JSONDatabase struct {
	mu       sync.RWMutex
	data     dbData
	filePath string
}

// NewJSONDatabase opens or creates the store at filePath.
func NewJSONDatabase(filePath string) (*JSONDatabase, error) {
	db := &JSONDatabase{filePath: filePath}
	if err := db.loadData(); err != nil {
		return nil, fmt.Errorf("load %s: %w", filePath, err)
	}
	return db, nil
}

func (db *JSONDatabase) loadData() error {
	fileData, err := os.ReadFile(db.filePath)
	if os.IsNotExist(err) {
		return db.saveData()
	}
	if err != nil {
		return err
	}
	if len(fileData) == 0 {
		return nil
	}
	return json.Unmarshal(fileData, &db.data)
}

// saveData is called with db.mu held for writing.
func (db *JSONDatabase) saveData() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(db.filePath, data, 0644)
}

// --- Projects ---

// GetAllProjects returns a copy of every project.
func (db *JSONDatabase) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	projects := make([]models.Project, len(db.data.Projects))
	copy(projects, db.data.Projects)
	return projects, nil
}

// GetProjectByID returns the project with the given id.
func (db *JSONDatabase) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, p := range db.data.Projects {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// CreateProject appends a new project.
func (db *JSONDatabase) CreateProject(ctx context.Context, project *models.Project) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	project.UpdatedAt = time.Now()
	db.data.Projects = append(db.data.Projects, *project)
	return db.saveData()
}

// UpdateProject replaces the stored project with the same id.
func (db *JSONDatabase) UpdateProject(ctx context.Context, project *models.Project) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.data.Projects {
		if p.ID == project.ID {
			project.UpdatedAt = time.Now()
			db.data.Projects[i] = *project
			return db.saveData()
		}
	}
	return ErrNotFound
}

// DeleteProject removes the project with the given id.
func (db *JSONDatabase) DeleteProject(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, p := range db.data.Projects {
		if p.ID == id {
			db.data.Projects = append(db.data.Projects[:i], db.data.Projects[i+1:]...)
			return db.saveData()
		}
	}
	return ErrNotFound
}

// --- Inquiries ---

// CreateInquiry appends a new inquiry.
func (db *JSONDatabase) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	db.data.Inquiries = append(db.data.Inquiries, *inquiry)
	return db.saveData()
}

// GetAllInquiries returns a copy of every inquiry.
func (db *JSONDatabase) GetAllInquiries(ctx context.Context) ([]models.Inquiry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	inquiries := make([]models.Inquiry, len(db.data.Inquiries))
	copy(inquiries, db.data.Inquiries)
	return inquiries, nil
}

// DeleteInquiry removes the inquiry with the given id.
func (db *JSONDatabase) DeleteInquiry(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, in := range db.data.Inquiries {
		if in.ID == id {
			db.data.Inquiries = append(db.data.Inquiries[:i], db.data.Inquiries[i+1:]...)
			return db.saveData()
		}
	}
	return ErrNotFound
}

// --- Orders ---

// CreateOrder appends a new order.
func (db *JSONDatabase) CreateOrder(ctx context.Context, order *models.Order) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	db.data.Orders = append(db.data.Orders, *order)
	return db.saveData()
}

// GetAllOrders returns a copy of every order.
func (db *JSONDatabase) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	orders := make([]models.Order, len(db.data.Orders))
	copy(orders, db.data.Orders)
	return orders, nil
}

// GetOrderByID returns the order with the given id.
func (db *JSONDatabase) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, o := range db.data.Orders {
		if o.ID == id {
			out := o
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateOrderStatus assigns a new status to the order. Transitions are not
// guarded; any status may follow any other.
func (db *JSONDatabase) UpdateOrderStatus(ctx context.Context, id, status string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, o := range db.data.Orders {
		if o.ID == id {
			db.data.Orders[i].Status = status
			return db.saveData()
		}
	}
	return ErrNotFound
}

// DeleteOrder removes the order with the given id.
func (db *JSONDatabase) DeleteOrder(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, o := range db.data.Orders {
		if o.ID == id {
			db.data.Orders = append(db.data.Orders[:i], db.data.Orders[i+1:]...)
			return db.saveData()
		}
	}
	return ErrNotFound
}
