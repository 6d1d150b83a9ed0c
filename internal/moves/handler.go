package moves

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
	CreateMove(req models.CreateMoveRequest, actor models.Actor) (*models.AssetMove, error)
	SoftDeleteMove(id int, actor models.Actor) error
}

type Reader interface {
	GetMove(id int, includeDeleted bool) (*models.AssetMove, error)
	GetMoves() ([]models.AssetMove, error)
}

type MoveHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *MoveHandler {
	return &MoveHandler{service: service, reader: reader}
}

func (h *MoveHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/moves", h.ListMoves)
	group.GET("/moves/:id", h.GetMove)
	group.POST("/moves", security.Authorize(roles.Operator), h.CreateMove)
	group.DELETE("/moves/:id", security.Authorize(roles.Admin), h.DeleteMove)
}

func (h *MoveHandler) ListMoves(c *gin.Context) {
	moves, err := h.reader.GetMoves()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list asset moves", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, moves)
}

func (h *MoveHandler) GetMove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "move id must be an integer"})
		return
	}

	move, err := h.reader.GetMove(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, move)
}

func (h *MoveHandler) CreateMove(c *gin.Context) {
	var req models.CreateMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	move, err := h.service.CreateMove(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, move)
}

func (h *MoveHandler) DeleteMove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "move id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteMove(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset move deleted successfully"})
}
