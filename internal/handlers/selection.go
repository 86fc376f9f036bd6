package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type selectForm struct {
	ID string `json:"id" binding:"required"`
}

// ToggleSelection flips one row's checkbox in the named admin table view.
func (h *Handler) ToggleSelection(c *gin.Context) {
	t, ok := h.tracker(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}
	var form selectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	t.Toggle(form.ID)
	c.JSON(http.StatusOK, gin.H{"selected": t.Len()})
}

// ToggleAllSelection applies the all-or-nothing header checkbox against the
// rows currently visible in the view, honoring the view's active filters.
func (h *Handler) ToggleAllSelection(c *gin.Context) {
	view := c.Param("view")
	t, ok := h.tracker(view)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}

	visible, err := h.visibleIDs(c, view)
	if err != nil {
		h.logger.Error("load rows for select-all failed", "view", view, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	t.ToggleAll(visible)
	c.JSON(http.StatusOK, gin.H{"selected": t.Len()})
}

// ClearSelection empties the view's selection, e.g. when the admin navigates
// away from the table.
func (h *Handler) ClearSelection(c *gin.Context) {
	t, ok := h.tracker(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}
	t.Clear()
	c.JSON(http.StatusOK, gin.H{"selected": 0})
}

// GetSelection returns the current selection for a view.
func (h *Handler) GetSelection(c *gin.Context) {
	t, ok := h.tracker(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": t.IDs(), "selected": t.Len()})
}

// visibleIDs resolves the row ids currently displayed in a view, applying
// the same search/status filters the listing endpoints use.
func (h *Handler) visibleIDs(c *gin.Context, view string) ([]string, error) {
	ctx := c.Request.Context()
	switch view {
	case ViewProjects:
		projects, err := h.db.GetAllProjects(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(projects))
		for i, p := range projects {
			ids[i] = p.ID
		}
		return ids, nil
	case ViewInquiries:
		inquiries, err := h.db.GetAllInquiries(ctx)
		if err != nil {
			return nil, err
		}
		filtered := filterInquiries(inquiries, c.Query("search"))
		ids := make([]string, len(filtered))
		for i, in := range filtered {
			ids[i] = in.ID
		}
		return ids, nil
	default: // ViewOrders
		orders, err := h.db.GetAllOrders(ctx)
		if err != nil {
			return nil, err
		}
		filtered := filterOrders(orders, c.Query("search"), c.Query("status"))
		ids := make([]string, len(filtered))
		for i, o := range filtered {
			ids[i] = o.ID
		}
		return ids, nil
	}
}
