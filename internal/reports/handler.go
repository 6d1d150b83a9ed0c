package reports

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Licenses surface on the dashboard once they are within this window of
// their expiry date.
const defaultExpiryWindowDays = 60

type ReportsHandler struct {
	repo *ReportsRepository
}

func NewHandler(repo *ReportsRepository) *ReportsHandler {
	return &ReportsHandler{repo: repo}
}

func (h *ReportsHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/reports/dashboard", h.GetDashboard)
	group.GET("/reports/expiring-licenses", h.GetExpiringLicenses)
	group.GET("/reports/low-stock", h.GetLowStock)
}

func (h *ReportsHandler) GetDashboard(c *gin.Context) {
	summary, err := h.repo.GetDashboardSummary(expiryWindow(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to build dashboard summary", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ReportsHandler) GetExpiringLicenses(c *gin.Context) {
	licenses, err := h.repo.GetExpiringLicenses(time.Now().Add(expiryWindow(c)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list expiring licenses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, licenses)
}

func (h *ReportsHandler) GetLowStock(c *gin.Context) {
	consumables, err := h.repo.GetLowStockConsumables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list low stock consumables", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, consumables)
}

func expiryWindow(c *gin.Context) time.Duration {
	days := defaultExpiryWindowDays
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
