package consumables

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
	CreateConsumable(req models.CreateConsumableRequest, actor models.Actor) (*models.Consumable, error)
	UpdateConsumable(id int, req models.UpdateConsumableRequest, actor models.Actor) (*models.Consumable, error)
	SoftDeleteConsumable(id int, actor models.Actor) error
	AdjustStock(id int, req models.AdjustStockRequest, actor models.Actor) (*models.Consumable, error)
}

type Reader interface {
	GetConsumable(id int, includeDeleted bool) (*models.Consumable, error)
	GetConsumables() ([]models.Consumable, error)
}

type ConsumableHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *ConsumableHandler {
	return &ConsumableHandler{service: service, reader: reader}
}

func (h *ConsumableHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/consumables", h.ListConsumables)
	group.GET("/consumables/:id", h.GetConsumable)
	group.POST("/consumables", security.Authorize(roles.Manager), h.CreateConsumable)
	group.PATCH("/consumables/:id", security.Authorize(roles.Manager), h.UpdateConsumable)
	group.POST("/consumables/:id/adjust-stock", security.Authorize(roles.Operator), h.AdjustStock)
	group.DELETE("/consumables/:id", security.Authorize(roles.Admin), h.DeleteConsumable)
}

func (h *ConsumableHandler) ListConsumables(c *gin.Context) {
	consumables, err := h.reader.GetConsumables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list consumables", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, consumables)
}

func (h *ConsumableHandler) GetConsumable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consumable id must be an integer"})
		return
	}

	consumable, err := h.reader.GetConsumable(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, consumable)
}

func (h *ConsumableHandler) CreateConsumable(c *gin.Context) {
	var req models.CreateConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	consumable, err := h.service.CreateConsumable(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, consumable)
}

func (h *ConsumableHandler) UpdateConsumable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consumable id must be an integer"})
		return
	}

	var req models.UpdateConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	consumable, err := h.service.UpdateConsumable(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, consumable)
}

func (h *ConsumableHandler) AdjustStock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consumable id must be an integer"})
		return
	}

	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	consumable, err := h.service.AdjustStock(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, consumable)
}

func (h *ConsumableHandler) DeleteConsumable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "consumable id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteConsumable(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Consumable deleted successfully"})
}
