package suppliers

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
	CreateSupplier(req models.CreateSupplierRequest, actor models.Actor) (*models.Supplier, error)
	UpdateSupplier(id int, req models.UpdateSupplierRequest, actor models.Actor) (*models.Supplier, error)
	SoftDeleteSupplier(id int, actor models.Actor) error
}

type Reader interface {
	GetSupplier(id int, includeDeleted bool) (*models.Supplier, error)
	GetSuppliers() ([]models.Supplier, error)
}

type SupplierHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *SupplierHandler {
	return &SupplierHandler{service: service, reader: reader}
}

func (h *SupplierHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/suppliers", h.ListSuppliers)
	group.GET("/suppliers/:id", h.GetSupplier)
	group.POST("/suppliers", security.Authorize(roles.Manager), h.CreateSupplier)
	group.PATCH("/suppliers/:id", security.Authorize(roles.Manager), h.UpdateSupplier)
	group.DELETE("/suppliers/:id", security.Authorize(roles.Admin), h.DeleteSupplier)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.reader.GetSuppliers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list suppliers", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier id must be an integer"})
		return
	}

	supplier, err := h.reader.GetSupplier(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req models.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.service.CreateSupplier(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier id must be an integer"})
		return
	}

	var req models.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.service.UpdateSupplier(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteSupplier(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
