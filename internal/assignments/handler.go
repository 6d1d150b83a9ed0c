package assignments

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
	AssignAsset(req models.AssignAssetRequest, actor models.Actor) (*models.AssetAssignment, error)
	ReturnAsset(id int, req models.ReturnAssetRequest, actor models.Actor) (*models.AssetAssignment, error)
	SoftDeleteAssignment(id int, actor models.Actor) error
}

type Reader interface {
	GetAssignment(id int, includeDeleted bool) (*models.AssetAssignment, error)
	GetAssignments() ([]models.AssetAssignment, error)
}

type AssignmentHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *AssignmentHandler {
	return &AssignmentHandler{service: service, reader: reader}
}

func (h *AssignmentHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/assignments", h.ListAssignments)
	group.GET("/assignments/:id", h.GetAssignment)
	group.POST("/assignments", security.Authorize(roles.Operator), h.AssignAsset)
	group.POST("/assignments/:id/return", security.Authorize(roles.Operator), h.ReturnAsset)
	group.DELETE("/assignments/:id", security.Authorize(roles.Admin), h.DeleteAssignment)
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.reader.GetAssignments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignment id must be an integer"})
		return
	}

	assignment, err := h.reader.GetAssignment(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) AssignAsset(c *gin.Context) {
	var req models.AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.AssignAsset(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) ReturnAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignment id must be an integer"})
		return
	}

	var req models.ReturnAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.ReturnAsset(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignment id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteAssignment(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
