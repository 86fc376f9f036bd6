package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devmarket/internal/models"
)

func newTestDB(t *testing.T) *JSONDatabase {
	t.Helper()
	db, err := NewJSONDatabase(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return db
}

func TestProjectCRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	p := &models.Project{ID: "p1", Title: "NextGen Diary", Category: models.CategoryIoT, Price: 49999}
	require.NoError(t, db.CreateProject(ctx, p))

	got, err := db.GetProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "NextGen Diary", got.Title)
	assert.False(t, got.UpdatedAt.IsZero())

	p.Title = "NextGen Diary v2"
	require.NoError(t, db.UpdateProject(ctx, p))
	got, err = db.GetProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "NextGen Diary v2", got.Title)

	require.NoError(t, db.DeleteProject(ctx, "p1"))
	_, err = db.GetProjectByID(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.GetProjectByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.UpdateProject(ctx, &models.Project{ID: "missing"}), ErrNotFound)
	assert.ErrorIs(t, db.DeleteProject(ctx, "missing"), ErrNotFound)
}

func TestDataSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	db, err := NewJSONDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.CreateProject(ctx, &models.Project{ID: "p1", Title: "Persisted"}))

	reopened, err := NewJSONDatabase(path)
	require.NoError(t, err)
	got, err := reopened.GetProjectByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
}

func TestInquiryLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	in := &models.Inquiry{ID: "i1", Name: "Ann", Email: "ann@example.com", ProjectType: "IoT"}
	require.NoError(t, db.CreateInquiry(ctx, in))
	assert.False(t, in.CreatedAt.IsZero(), "created timestamp is assigned")

	inquiries, err := db.GetAllInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, inquiries, 1)

	require.NoError(t, db.DeleteInquiry(ctx, "i1"))
	inquiries, err = db.GetAllInquiries(ctx)
	require.NoError(t, err)
	assert.Empty(t, inquiries)

	assert.ErrorIs(t, db.DeleteInquiry(ctx, "i1"), ErrNotFound)
}

func TestOrderStatusUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	o := &models.Order{ID: "o1", ProjectTitle: "EvalUT", Status: models.StatusPending}
	require.NoError(t, db.CreateOrder(ctx, o))

	// No transition guards: cancelled may follow pending, and completed may
	// follow cancelled.
	require.NoError(t, db.UpdateOrderStatus(ctx, "o1", models.StatusCancelled))
	require.NoError(t, db.UpdateOrderStatus(ctx, "o1", models.StatusCompleted))

	got, err := db.GetOrderByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)

	assert.ErrorIs(t, db.UpdateOrderStatus(ctx, "missing", models.StatusPending), ErrNotFound)
}

func TestGetAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, db.CreateProject(ctx, &models.Project{ID: "p1", Title: "original"}))

	projects, err := db.GetAllProjects(ctx)
	require.NoError(t, err)
	projects[0].Title = "mutated"

	again, err := db.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Title)
}
