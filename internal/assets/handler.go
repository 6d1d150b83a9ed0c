package assets

import (
	"net/http"
	"strconv"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"
	"assetdesk/pkg/roles"
	"assetdesk/pkg/security"

	"github.com/gin-gonic/gin"
)

// Service is the asset surface the gateway invokes; the handler never
// reaches into storage directly for mutations.
type Service interface {
	CreateAsset(req models.CreateAssetRequest, actor models.Actor) (*models.Asset, error)
	UpdateAsset(id int, req models.UpdateAssetRequest, actor models.Actor) (*models.Asset, error)
	SoftDeleteAsset(id int, actor models.Actor) error
}

type Reader interface {
	GetAsset(id int, includeDeleted bool) (*models.Asset, error)
	GetAssetsBy(conditions repository.QueryBuilder) ([]models.Asset, error)
}

type AssetHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *AssetHandler {
	return &AssetHandler{service: service, reader: reader}
}

func (h *AssetHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/assets", h.ListAssets)
	group.GET("/assets/:id", h.GetAsset)
	group.POST("/assets", security.Authorize(roles.Manager), h.CreateAsset)
	group.PATCH("/assets/:id", security.Authorize(roles.Manager), h.UpdateAsset)
	group.DELETE("/assets/:id", security.Authorize(roles.Admin), h.DeleteAsset)
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	builder := repository.NewQueryBuilder()
	if status := c.Query("status"); status != "" {
		builder.AddCondition("status", status)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		builder.AddCondition("category_id", categoryID)
	}
	if locationID := c.Query("location_id"); locationID != "" {
		builder.AddCondition("location_id", locationID)
	}

	assets, err := h.reader.GetAssetsBy(builder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset id must be an integer"})
		return
	}

	includeDeleted := c.Query("include_deleted") == "true"

	asset, err := h.reader.GetAsset(id, includeDeleted)
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req models.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.service.CreateAsset(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset id must be an integer"})
		return
	}

	var req models.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.service.UpdateAsset(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteAsset(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
