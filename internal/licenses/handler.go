package licenses

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
	CreateLicense(req models.CreateLicenseRequest, actor models.Actor) (*models.SoftwareLicense, error)
	UpdateLicense(id int, req models.UpdateLicenseRequest, actor models.Actor) (*models.SoftwareLicense, error)
	SoftDeleteLicense(id int, actor models.Actor) error
	AssignLicense(req models.AssignLicenseRequest, actor models.Actor) (*models.LicenseAssignment, error)
	RemoveAssignment(id int, actor models.Actor) error
}

type Reader interface {
	GetLicense(id int, includeDeleted bool) (*models.SoftwareLicense, error)
	GetLicenses() ([]models.SoftwareLicense, error)
	GetAssignment(id int, includeDeleted bool) (*models.LicenseAssignment, error)
	GetAssignments() ([]models.LicenseAssignment, error)
}

type LicenseHandler struct {
	service Service
	reader  Reader
}

func NewHandler(service Service, reader Reader) *LicenseHandler {
	return &LicenseHandler{service: service, reader: reader}
}

func (h *LicenseHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/licenses", h.ListLicenses)
	group.GET("/licenses/:id", h.GetLicense)
	group.POST("/licenses", security.Authorize(roles.Manager), h.CreateLicense)
	group.PATCH("/licenses/:id", security.Authorize(roles.Manager), h.UpdateLicense)
	group.DELETE("/licenses/:id", security.Authorize(roles.Admin), h.DeleteLicense)

	group.GET("/license-assignments", h.ListAssignments)
	group.POST("/license-assignments", security.Authorize(roles.Operator), h.AssignLicense)
	group.DELETE("/license-assignments/:id", security.Authorize(roles.Operator), h.RemoveAssignment)
}

func (h *LicenseHandler) ListLicenses(c *gin.Context) {
	licenses, err := h.reader.GetLicenses()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list licenses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, licenses)
}

func (h *LicenseHandler) GetLicense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "license id must be an integer"})
		return
	}

	license, err := h.reader.GetLicense(id, c.Query("include_deleted") == "true")
	if err != nil {
		c.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, license)
}

func (h *LicenseHandler) CreateLicense(c *gin.Context) {
	var req models.CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	license, err := h.service.CreateLicense(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, license)
}

func (h *LicenseHandler) UpdateLicense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "license id must be an integer"})
		return
	}

	var req models.UpdateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	license, err := h.service.UpdateLicense(id, req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, license)
}

func (h *LicenseHandler) DeleteLicense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "license id must be an integer"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.SoftDeleteLicense(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "License deleted successfully"})
}

func (h *LicenseHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.reader.GetAssignments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to list license assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *LicenseHandler) AssignLicense(c *gin.Context) {
	var req models.AssignLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	actor, err := security.ActorFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.service.AssignLicense(req, actor)
	if err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *LicenseHandler) RemoveAssignment(c *gin.Context) {
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

	if err := h.service.RemoveAssignment(id, actor); err != nil {
		c.AbortWithStatusJSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "License assignment removed"})
}
