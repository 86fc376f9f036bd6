package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Routes builds the gin engine with the full route table.
func Routes(h *Handler, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.Use(gin.Recovery())

	// Public storefront.
	r.GET("/", h.HomePage)
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.POST("/inquiries", h.CreateInquiry)
	r.POST("/orders", h.CreateOrder)

	// Admin authentication (outside the protected group).
	r.POST("/admin/login", h.AdminLogin)
	r.POST("/admin/logout", h.AdminLogout)

	// Admin panel.
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.GET("/projects", h.AdminListProjects)
		admin.POST("/projects", h.AddProject)
		admin.PUT("/projects/:id", h.UpdateProject)
		admin.DELETE("/projects/:id", h.DeleteProject)

		admin.GET("/inquiries", h.AdminListInquiries)
		admin.DELETE("/inquiries/:id", h.DeleteInquiry)
		admin.GET("/inquiries/export", h.ExportInquiries)

		admin.GET("/orders", h.AdminListOrders)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		admin.DELETE("/orders/:id", h.DeleteOrder)
		admin.GET("/orders/export", h.ExportOrders)

		admin.GET("/stats", h.AdminStats)
		admin.POST("/settings/password", h.ChangePassword)

		// Per-view row selection for the admin tables.
		admin.GET("/selection/:view", h.GetSelection)
		admin.POST("/selection/:view/toggle", h.ToggleSelection)
		admin.POST("/selection/:view/toggle-all", h.ToggleAllSelection)
		admin.DELETE("/selection/:view", h.ClearSelection)
	}

	return r
}
