package maintenance

import (
	"net/http"
	"strconv"

	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"
	"assetdesk/pkg/roles"
	"assetdesk/pkg/security"

	"github.com/gin-gonic/gin"
)

type Service interface {
	CreateOrder(req models.CreateMaintenanceRequest, actor models.Actor) (*models.MaintenanceOrder, error)
	UpdateOrder(id int, req models.UpdateMaintenanceRequest, actor models.Actor) (*models.MaintenanceOrder, error)
	SoftDeleteOrder(id int, actor models.Actor) error
}

type Reader interface {
	GetOrder(id int, includeDeleted bool) (*models.MaintenanceOrder, error)
	GetOrders() ([]models.MaintenanceOrder, error)
}

type MaintenanceHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *MaintenanceHandler {
	return &MaintenanceHandler{service: service, reader: reader}
}

func (h *MaintenanceHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/maintenance-orders", h.ListOrders)
	group.GET("/maintenance-orders/:id", h.GetOrder)
	group.POST("/maintenance-orders", security.Authorize(roles.Manager), h.CreateOrder)
	group.PATCH("/maintenance-orders/:id", security.Authorize(roles.Manager), h.UpdateOrder)
	group.DELETE("/maintenance-orders/:id", security.Authorize(roles.Admin), h.DeleteOrder)
}

func (h *MaintenanceHandler) ListOrders(c *gin.Context) {
	orders, err := h.reader.GetOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list maintenance orders", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *MaintenanceHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maintenance order id must be an integer"})
		return
	}

	order, err := h.reader.GetOrder(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *MaintenanceHandler) CreateOrder(c *gin.Context) {
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *MaintenanceHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maintenance order id must be an integer"})
		return
	}

	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.UpdateOrder(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *MaintenanceHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maintenance order id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteOrder(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance order deleted successfully"})
}
