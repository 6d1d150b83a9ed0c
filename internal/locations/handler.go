package locations

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
	CreateLocation(req models.CreateLocationRequest, actor models.Actor) (*models.Location, error)
	UpdateLocation(id int, req models.UpdateLocationRequest, actor models.Actor) (*models.Location, error)
	SoftDeleteLocation(id int, actor models.Actor) error
}

type Reader interface {
	GetLocation(id int, includeDeleted bool) (*models.Location, error)
	GetLocations() ([]models.Location, error)
}

type LocationHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *LocationHandler {
	return &LocationHandler{service: service, reader: reader}
}

func (h *LocationHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/locations", h.ListLocations)
	group.GET("/locations/:id", h.GetLocation)
	group.POST("/locations", security.Authorize(roles.Manager), h.CreateLocation)
	group.PATCH("/locations/:id", security.Authorize(roles.Manager), h.UpdateLocation)
	group.DELETE("/locations/:id", security.Authorize(roles.Admin), h.DeleteLocation)
}

func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.reader.GetLocations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location id must be an integer"})
		return
	}

	location, err := h.reader.GetLocation(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	location, err := h.service.CreateLocation(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location id must be an integer"})
		return
	}

	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	location, err := h.service.UpdateLocation(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteLocation(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully"})
}
