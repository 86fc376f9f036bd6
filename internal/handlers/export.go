package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devmarket/internal/export"
)

// httpDownload delivers a finished CSV as a browser download. It is the HTTP
// implementation of the export.Deliverer port.
type httpDownload struct {
	c *gin.Context
}

func (d httpDownload) Deliver(filename string, data []byte) error {
	d.c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	d.c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	return nil
}

// ExportOrders streams the selected orders as orders.csv. Rows follow the
// order of the stored collection, not the order rows were ticked.
func (h *Handler) ExportOrders(c *gin.Context) {
	t, _ := h.tracker(ViewOrders)
	if t.Len() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no orders selected"})
		return
	}

	orders, err := h.db.GetAllOrders(c.Request.Context())
	if err != nil {
		h.logger.Error("load orders for export failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	h.deliverCSV(c, "orders.csv", export.OrdersTable(orders, t.Contains))
}

// ExportInquiries streams the selected inquiries as inquiries.csv.
func (h *Handler) ExportInquiries(c *gin.Context) {
	t, _ := h.tracker(ViewInquiries)
	if t.Len() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no inquiries selected"})
		return
	}

	inquiries, err := h.db.GetAllInquiries(c.Request.Context())
	if err != nil {
		h.logger.Error("load inquiries for export failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	h.deliverCSV(c, "inquiries.csv", export.InquiriesTable(inquiries, t.Contains))
}

func (h *Handler) deliverCSV(c *gin.Context, filename string, table export.Table) {
	data, err := table.Encode()
	if err != nil {
		h.logger.Error("encode csv failed", "file", filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	var deliverer export.Deliverer = httpDownload{c: c}
	if err := deliverer.Deliver(filename, data); err != nil {
		h.logger.Error("deliver csv failed", "file", filename, "err", err)
	}
}
