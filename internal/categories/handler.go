package categories

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
	CreateCategory(req models.CreateCategoryRequest, actor models.Actor) (*models.Category, error)
	UpdateCategory(id int, req models.UpdateCategoryRequest, actor models.Actor) (*models.Category, error)
	SoftDeleteCategory(id int, actor models.Actor) error
}

type Reader interface {
	GetCategory(id int, includeDeleted bool) (*models.Category, error)
	GetCategories() ([]models.Category, error)
}

type CategoryHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *CategoryHandler {
	return &CategoryHandler{service: service, reader: reader}
}

func (h *CategoryHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/categories", h.ListCategories)
	group.GET("/categories/:id", h.GetCategory)
	group.POST("/categories", security.Authorize(roles.Manager), h.CreateCategory)
	group.PATCH("/categories/:id", security.Authorize(roles.Manager), h.UpdateCategory)
	group.DELETE("/categories/:id", security.Authorize(roles.Admin), h.DeleteCategory)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.reader.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category id must be an integer"})
		return
	}

	category, err := h.reader.GetCategory(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.CreateCategory(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category id must be an integer"})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	category, err := h.service.UpdateCategory(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteCategory(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
