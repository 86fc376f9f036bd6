package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devmarket/internal/models"
)

// schema creates the three collections on first start. Idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id                TEXT PRIMARY KEY,
	title             TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	category          TEXT NOT NULL,
	price             DOUBLE PRECISION NOT NULL DEFAULT 0,
	image             TEXT NOT NULL DEFAULT '',
	features          TEXT[] NOT NULL DEFAULT '{}',
	technical_details TEXT NOT NULL DEFAULT '',
	featured          BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS inquiries (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	project_type TEXT NOT NULL DEFAULT '',
	budget       TEXT NOT NULL DEFAULT '',
	message      TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS orders (
	id             TEXT PRIMARY KEY,
	project_id     TEXT NOT NULL,
	project_title  TEXT NOT NULL,
	customer_name  TEXT NOT NULL,
	customer_email TEXT NOT NULL,
	price          DOUBLE PRECISION NOT NULL DEFAULT 0,
	status         TEXT NOT NULL DEFAULT 'pending',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// PostgresStore implements the store interface on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database, verifies the connection, and
// applies the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// --- Projects ---

const projectColumns = `id, title, description, category, price, image, features, technical_details, featured, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Price,
		&p.Image, &p.Features, &p.TechnicalDetails, &p.Featured, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAllProjects returns every project, oldest first.
func (s *PostgresStore) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY updated_at`)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// GetProjectByID returns the project with the given id.
func (s *PostgresStore) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	p, err := scanProject(s.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select project: %w", err)
	}
	return p, nil
}

// CreateProject inserts a new project.
func (s *PostgresStore) CreateProject(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO projects (id, title, description, category, price, image, features, technical_details, featured, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		project.ID, project.Title, project.Description, project.Category, project.Price,
		project.Image, project.Features, project.TechnicalDetails, project.Featured, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// UpdateProject replaces every mutable field of the stored project.
func (s *PostgresStore) UpdateProject(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()
	tag, err := s.pool.Exec(ctx, `
		UPDATE projects
		SET title = $2, description = $3, category = $4, price = $5, image = $6,
		    features = $7, technical_details = $8, featured = $9, updated_at = $10
		WHERE id = $1`,
		project.ID, project.Title, project.Description, project.Category, project.Price,
		project.Image, project.Features, project.TechnicalDetails, project.Featured, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProject removes the project with the given id.
func (s *PostgresStore) DeleteProject(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Inquiries ---

// CreateInquiry inserts a new inquiry.
func (s *PostgresStore) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO inquiries (id, name, email, project_type, budget, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.ProjectType, inquiry.Budget,
		inquiry.Message, inquiry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// GetAllInquiries returns every inquiry, oldest first.
func (s *PostgresStore) GetAllInquiries(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, project_type, budget, message, created_at
		FROM inquiries ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("select inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var in models.Inquiry
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.ProjectType, &in.Budget, &in.Message, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, in)
	}
	return inquiries, rows.Err()
}

// DeleteInquiry removes the inquiry with the given id.
func (s *PostgresStore) DeleteInquiry(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Orders ---

// CreateOrder inserts a new order.
func (s *PostgresStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO orders (id, project_id, project_title, customer_name, customer_email, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID, order.ProjectID, order.ProjectTitle, order.CustomerName, order.CustomerEmail,
		order.Price, order.Status, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetAllOrders returns every order, oldest first.
func (s *PostgresStore) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, project_id, project_title, customer_name, customer_email, price, status, created_at
		FROM orders ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.ProjectID, &o.ProjectTitle, &o.CustomerName, &o.CustomerEmail, &o.Price, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrderByID returns the order with the given id.
func (s *PostgresStore) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.pool.QueryRow(ctx, `
		SELECT id, project_id, project_title, customer_name, customer_email, price, status, created_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.ProjectID, &o.ProjectTitle, &o.CustomerName, &o.CustomerEmail, &o.Price, &o.Status, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &o, nil
}

// UpdateOrderStatus assigns a new status to the order. Transitions are not
// guarded; any status may follow any other.
func (s *PostgresStore) UpdateOrderStatus(ctx context.Context, id, status string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOrder removes the order with the given id.
func (s *PostgresStore) DeleteOrder(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
