package assignments

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) AssignAsset(req models.AssignAssetRequest, actor models.Actor) (*models.AssetAssignment, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetAssignment), args.Error(1)
}

func (m *MockAssignmentService) ReturnAsset(id int, req models.ReturnAssetRequest, actor models.Actor) (*models.AssetAssignment, error) {
	args := m.Called(id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetAssignment), args.Error(1)
}

func (m *MockAssignmentService) SoftDeleteAssignment(id int, actor models.Actor) error {
	args := m.Called(id, actor)
	return args.Error(0)
}

type MockAssignmentReader struct {
	mock.Mock
}

func (m *MockAssignmentReader) GetAssignment(id int, includeDeleted bool) (*models.AssetAssignment, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetAssignment), args.Error(1)
}

func (m *MockAssignmentReader) GetAssignments() ([]models.AssetAssignment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssetAssignment), args.Error(1)
}

func setupContext(body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "1")
	c.Set("role", "admin")

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/assignments", &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestAssignAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validPayload := models.AssignAssetRequest{
		AssetID:      7,
		UserID:       3,
		AssignedDate: "2026-09-01",
	}

	tests := []struct {
		name           string
		payload        interface{}
		setupMock      func(service *MockAssignmentService)
		expectedStatus int
	}{
		{
			name:    "successful assignment",
			payload: validPayload,
			setupMock: func(service *MockAssignmentService) {
				service.On("AssignAsset", mock.Anything, mock.Anything).Return(&models.AssetAssignment{
					ID:      1,
					AssetID: 7,
					UserID:  3,
					Status:  models.AssignmentActive,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "asset already assigned",
			payload: validPayload,
			setupMock: func(service *MockAssignmentService) {
				service.On("AssignAsset", mock.Anything, mock.Anything).
					Return(nil, apperrors.Conflict("asset 7 already has an active assignment"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "unknown asset",
			payload: validPayload,
			setupMock: func(service *MockAssignmentService) {
				service.On("AssignAsset", mock.Anything, mock.Anything).
					Return(nil, apperrors.NotFound("asset 7 not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing required fields",
			payload:        map[string]interface{}{"asset_id": 7},
			setupMock:      func(service *MockAssignmentService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockAssignmentService)
			reader := new(MockAssignmentReader)
			handler := NewHandler(service, reader)
			tt.setupMock(service)

			c, w := setupContext(tt.payload)
			handler.AssignAsset(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestReturnAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	returnDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		id             string
		setupMock      func(service *MockAssignmentService)
		expectedStatus int
	}{
		{
			name: "successful return",
			id:   "4",
			setupMock: func(service *MockAssignmentService) {
				service.On("ReturnAsset", 4, mock.Anything, mock.Anything).Return(&models.AssetAssignment{
					ID:         4,
					Status:     models.AssignmentReturned,
					ReturnDate: &returnDate,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already returned",
			id:   "4",
			setupMock: func(service *MockAssignmentService) {
				service.On("ReturnAsset", 4, mock.Anything, mock.Anything).
					Return(nil, apperrors.State("assignment 4 is already returned"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "non numeric id",
			id:             "abc",
			setupMock:      func(service *MockAssignmentService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockAssignmentService)
			reader := new(MockAssignmentReader)
			handler := NewHandler(service, reader)
			tt.setupMock(service)

			c, w := setupContext(models.ReturnAssetRequest{})
			c.Params = gin.Params{{Key: "id", Value: tt.id}}
			handler.ReturnAsset(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestDeleteAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("tombstoned rows stay gone", func(t *testing.T) {
		service := new(MockAssignmentService)
		reader := new(MockAssignmentReader)
		handler := NewHandler(service, reader)

		service.On("SoftDeleteAssignment", 9, mock.Anything).
			Return(apperrors.NotFound("asset_assignments record 9 not found"))

		c, w := setupContext(nil)
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		handler.DeleteAssignment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		service.AssertExpectations(t)
	})
}
