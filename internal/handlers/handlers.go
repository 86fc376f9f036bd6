package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devmarket/internal/catalog"
	"devmarket/internal/database"
	"devmarket/internal/models"
	"devmarket/internal/selection"
	"devmarket/internal/services"
)

// Store is the record-oriented boundary to the hosted storage service. The
// handlers only need fetch-all, get/update/delete by id, and create.
type Store interface {
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error

	CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error
	GetAllInquiries(ctx context.Context) ([]models.Inquiry, error)
	DeleteInquiry(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, order *models.Order) error
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	DeleteOrder(ctx context.Context, id string) error
}

// Table view names for the admin selection trackers. Each view owns its own
// selection; they are never shared.
const (
	ViewProjects  = "projects"
	ViewInquiries = "inquiries"
	ViewOrders    = "orders"
)

// Handler wires the HTTP surface to the store and services.
type Handler struct {
	db     Store
	auth   *services.AuthService
	email  *services.EmailService
	cache  *catalog.Cache
	logger *slog.Logger

	selMu      sync.Mutex
	selections map[string]*selection.Tracker
}

// NewHandler builds the handler and warms the catalog cache.
func NewHandler(db Store, auth *services.AuthService, email *services.EmailService, logger *slog.Logger) *Handler {
	h := &Handler{
		db:     db,
		auth:   auth,
		email:  email,
		cache:  catalog.NewCache(),
		logger: logger,
		selections: map[string]*selection.Tracker{
			ViewProjects:  selection.NewTracker(),
			ViewInquiries: selection.NewTracker(),
			ViewOrders:    selection.NewTracker(),
		},
	}
	// Clear all admin table selections when the admin session changes.
	auth.Subscribe(func(*models.Session) { h.clearSelections() })
	h.refreshCatalog(context.Background())
	return h
}

// refreshCatalog reloads the base project collection into the cache. Loads
// are generation-tagged: if another refresh starts while this one is reading
// the store, the stale result is discarded (last write wins).
func (h *Handler) refreshCatalog(ctx context.Context) {
	gen := h.cache.Begin()
	projects, err := h.db.GetAllProjects(ctx)
	if err != nil {
		h.logger.Error("catalog refresh failed", "err", err)
		return
	}
	if !h.cache.Complete(gen, projects) {
		h.logger.Debug("discarded stale catalog refresh", "generation", gen)
	}
}

func (h *Handler) tracker(view string) (*selection.Tracker, bool) {
	h.selMu.Lock()
	defer h.selMu.Unlock()
	t, ok := h.selections[view]
	return t, ok
}

func (h *Handler) clearSelections() {
	h.selMu.Lock()
	defer h.selMu.Unlock()
	for _, t := range h.selections {
		t.Clear()
	}
}

// --- Public catalog ---

// HomePage returns the featured projects.
func (h *Handler) HomePage(c *gin.Context) {
	var featured []models.Project
	for _, p := range h.cache.Projects() {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"featured":   featured,
		"categories": models.Categories(),
	})
}

// ListProjects returns the catalog filtered by the criteria in the query
// string. The response echoes the canonical encoding of the applied criteria
// so the client can keep its address bar shareable.
func (h *Handler) ListProjects(c *gin.Context) {
	criteria := catalog.Decode(c.Request.URL.Query())
	items := catalog.Filter(h.cache.Projects(), criteria)

	c.JSON(http.StatusOK, gin.H{
		"projects":   items,
		"total":      len(items),
		"query":      catalog.Encode(criteria).Encode(),
		"categories": models.Categories(),
	})
}

// GetProject returns one project by id.
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.db.GetProjectByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.logger.Error("get project failed", "id", c.Param("id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateInquiry handles the public purchase-inquiry form.
func (h *Handler) CreateInquiry(c *gin.Context) {
	var form models.InquiryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and project type are required"})
		return
	}

	inquiry := &models.Inquiry{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Email:       form.Email,
		ProjectType: form.ProjectType,
		Budget:      form.Budget,
		Message:     form.Message,
		CreatedAt:   time.Now(),
	}
	if err := h.db.CreateInquiry(c.Request.Context(), inquiry); err != nil {
		h.logger.Error("create inquiry failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	// Fire and forget; a failed confirmation never fails the inquiry.
	if err := h.email.SendInquiryReceived(inquiry); err != nil {
		h.logger.Warn("inquiry confirmation email failed", "inquiry", inquiry.ID, "err", err)
	}

	c.JSON(http.StatusCreated, inquiry)
}

// CreateOrder handles a public purchase. The order is created pending at the
// project's current price; only the status changes afterwards.
func (h *Handler) CreateOrder(c *gin.Context) {
	var form models.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project, customer name and email are required"})
		return
	}

	project, err := h.db.GetProjectByID(c.Request.Context(), form.ProjectID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.logger.Error("load project for order failed", "project", form.ProjectID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		ProjectID:     project.ID,
		ProjectTitle:  project.Title,
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		Price:         project.Price,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
	}
	if err := h.db.CreateOrder(c.Request.Context(), order); err != nil {
		h.logger.Error("create order failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	if err := h.email.SendOrderConfirmation(order); err != nil {
		h.logger.Warn("order confirmation email failed", "order", order.ID, "err", err)
	}

	c.JSON(http.StatusCreated, order)
}
