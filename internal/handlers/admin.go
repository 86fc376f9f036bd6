package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devmarket/internal/database"
	"devmarket/internal/models"
	"devmarket/internal/services"
)

const sessionCookie = "admin_session"

// AuthMiddleware gates the admin group on a valid admin session cookie.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		session, ok := h.auth.Session(token)
		if !ok || !session.IsAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set("session", session)
		c.Next()
	}
}

type loginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin signs the admin in and sets the session cookie.
func (h *Handler) AdminLogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.auth.SignIn(form.Email, form.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	c.SetCookie(sessionCookie, session.Token, 3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"email": session.Email, "isAdmin": session.IsAdmin})
}

// AdminLogout closes the session and clears the cookie.
func (h *Handler) AdminLogout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		h.auth.SignOut(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Project management ---

// AdminListProjects returns the full, unfiltered catalog for the admin table.
func (h *Handler) AdminListProjects(c *gin.Context) {
	projects, err := h.db.GetAllProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// AddProject creates a new catalog project.
func (h *Handler) AddProject(c *gin.Context) {
	var form models.ProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, description and category are required"})
		return
	}
	if !models.ValidCategory(form.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if form.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	project := &models.Project{
		ID:               uuid.New().String(),
		Title:            form.Title,
		Description:      form.Description,
		Category:         form.Category,
		Price:            form.Price,
		Image:            form.Image,
		Features:         form.Features,
		TechnicalDetails: form.TechnicalDetails,
		Featured:         form.Featured,
		UpdatedAt:        time.Now(),
	}
	if err := h.db.CreateProject(c.Request.Context(), project); err != nil {
		h.logger.Error("create project failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	h.refreshCatalog(c.Request.Context())
	c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces a project's fields.
func (h *Handler) UpdateProject(c *gin.Context) {
	var form models.ProjectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, description and category are required"})
		return
	}
	if !models.ValidCategory(form.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if form.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	project := &models.Project{
		ID:               c.Param("id"),
		Title:            form.Title,
		Description:      form.Description,
		Category:         form.Category,
		Price:            form.Price,
		Image:            form.Image,
		Features:         form.Features,
		TechnicalDetails: form.TechnicalDetails,
		Featured:         form.Featured,
	}
	err := h.db.UpdateProject(c.Request.Context(), project)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.logger.Error("update project failed", "id", project.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	h.refreshCatalog(c.Request.Context())
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project and prunes it from the projects selection.
func (h *Handler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	err := h.db.DeleteProject(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.logger.Error("delete project failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	if t, ok := h.tracker(ViewProjects); ok {
		t.Prune(id)
	}
	h.refreshCatalog(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Inquiry management ---

// AdminListInquiries returns inquiries, optionally filtered by a free-text
// search across name, email, project type, and message.
func (h *Handler) AdminListInquiries(c *gin.Context) {
	inquiries, err := h.db.GetAllInquiries(c.Request.Context())
	if err != nil {
		h.logger.Error("list inquiries failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	filtered := filterInquiries(inquiries, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"inquiries": filtered, "total": len(filtered)})
}

// DeleteInquiry removes an inquiry and prunes it from the selection.
func (h *Handler) DeleteInquiry(c *gin.Context) {
	id := c.Param("id")
	err := h.db.DeleteInquiry(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}
	if err != nil {
		h.logger.Error("delete inquiry failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	if t, ok := h.tracker(ViewInquiries); ok {
		t.Prune(id)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Order management ---

// AdminListOrders returns orders filtered by free-text search (customer
// name, email, project title) and an optional status.
func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.db.GetAllOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("list orders failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	filtered := filterOrders(orders, c.Query("search"), c.Query("status"))
	c.JSON(http.StatusOK, gin.H{"orders": filtered, "total": len(filtered)})
}

type statusForm struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus assigns a new status. Any status may follow any other;
// the only check is that the value names a known status.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var form statusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !models.ValidStatus(form.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	id := c.Param("id")
	err := h.db.UpdateOrderStatus(c.Request.Context(), id, form.Status)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		h.logger.Error("update order status failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	if order, err := h.db.GetOrderByID(c.Request.Context(), id); err == nil {
		if err := h.email.SendOrderStatusUpdate(order); err != nil {
			h.logger.Warn("order status email failed", "order", id, "err", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": form.Status})
}

// DeleteOrder removes an order and prunes it from the selection.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	err := h.db.DeleteOrder(c.Request.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		h.logger.Error("delete order failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	if t, ok := h.tracker(ViewOrders); ok {
		t.Prune(id)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AdminStats summarizes the order book for the dashboard cards.
func (h *Handler) AdminStats(c *gin.Context) {
	orders, err := h.db.GetAllOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("load orders for stats failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	var stats models.OrderStats
	stats.Total = len(orders)
	for _, o := range orders {
		stats.Revenue += o.Price
		switch o.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusCompleted:
			stats.Completed++
		}
	}
	c.JSON(http.StatusOK, stats)
}

// --- Settings ---

type passwordForm struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ChangePassword updates the admin password. Mismatching confirmation and a
// wrong old password are validation errors surfaced inline, never a panic.
func (h *Handler) ChangePassword(c *gin.Context) {
	var form passwordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all password fields are required"})
		return
	}
	if form.NewPassword != form.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}

	err := h.auth.ChangePassword(form.OldPassword, form.NewPassword)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
		return
	}
	if err != nil {
		h.logger.Error("change password failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Admin table filters ---

func filterInquiries(inquiries []models.Inquiry, term string) []models.Inquiry {
	if term == "" {
		return inquiries
	}
	term = strings.ToLower(term)
	out := make([]models.Inquiry, 0, len(inquiries))
	for _, in := range inquiries {
		if strings.Contains(strings.ToLower(in.Name), term) ||
			strings.Contains(strings.ToLower(in.Email), term) ||
			strings.Contains(strings.ToLower(in.ProjectType), term) ||
			strings.Contains(strings.ToLower(in.Message), term) {
			out = append(out, in)
		}
	}
	return out
}

func filterOrders(orders []models.Order, term, status string) []models.Order {
	term = strings.ToLower(term)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), term) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), term) &&
			!strings.Contains(strings.ToLower(o.ProjectTitle), term) {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	return out
}
