package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler exposes the read-only audit query surface; the trail itself has
// no update or delete operations.
type Handler struct {
	repo *AuditLogRepository
}

func NewHandler(repo *AuditLogRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/audit-logs", h.ListLogs)
	group.GET("/audit-logs/:table/:recordId", h.ListRecordLogs)
}

func (h *Handler) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	table := c.Query("table")

	result, err := h.repo.ListByTable(table, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list audit logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListRecordLogs(c *gin.Context) {
	table := c.Param("table")
	recordID, err := strconv.Atoi(c.Param("recordId"))
	if err != nil || recordID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record id must be an integer"})
		return
	}

	logs, err := h.repo.ListByRecord(table, recordID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list audit logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
