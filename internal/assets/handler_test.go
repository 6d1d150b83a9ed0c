package assets

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) CreateAsset(req models.CreateAssetRequest, actor models.Actor) (*models.Asset, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetService) UpdateAsset(id int, req models.UpdateAssetRequest, actor models.Actor) (*models.Asset, error) {
	args := m.Called(id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetService) SoftDeleteAsset(id int, actor models.Actor) error {
	args := m.Called(id, actor)
	return args.Error(0)
}

type MockAssetReader struct {
	mock.Mock
}

func (m *MockAssetReader) GetAsset(id int, includeDeleted bool) (*models.Asset, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetReader) GetAssetsBy(conditions repository.QueryBuilder) ([]models.Asset, error) {
	args := m.Called(conditions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func setupContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "1")
	c.Set("role", "manager")

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestCreateAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validPayload := models.CreateAssetRequest{
		AssetTag:         "IT-0001",
		Name:             "ThinkPad T14",
		AcquisitionDate:  "2026-01-15",
		AcquisitionValue: 1200,
		CategoryID:       1,
		LocationID:       2,
	}

	tests := []struct {
		name           string
		payload        interface{}
		setupMock      func(service *MockAssetService)
		expectedStatus int
	}{
		{
			name:    "successful creation",
			payload: validPayload,
			setupMock: func(service *MockAssetService) {
				service.On("CreateAsset", mock.Anything, mock.Anything).Return(&models.Asset{
					ID:       1,
					AssetTag: "IT-0001",
					Name:     "ThinkPad T14",
					Status:   models.AssetActive,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "duplicate tag",
			payload: validPayload,
			setupMock: func(service *MockAssetService) {
				service.On("CreateAsset", mock.Anything, mock.Anything).
					Return(nil, apperrors.Conflict("assets: Key (asset_tag)=(IT-0001) already exists."))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "unknown category",
			payload: validPayload,
			setupMock: func(service *MockAssetService) {
				service.On("CreateAsset", mock.Anything, mock.Anything).
					Return(nil, apperrors.Validation("assets: referenced record does not exist"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing required fields",
			payload:        map[string]interface{}{"name": "ThinkPad T14"},
			setupMock:      func(service *MockAssetService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockAssetService)
			reader := new(MockAssetReader)
			handler := NewHandler(service, reader)
			tt.setupMock(service)

			c, w := setupContext(http.MethodPost, "/assets", tt.payload)
			handler.CreateAsset(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestListAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters forwarded to reader", func(t *testing.T) {
		service := new(MockAssetService)
		reader := new(MockAssetReader)
		handler := NewHandler(service, reader)

		reader.On("GetAssetsBy", mock.Anything).Return([]models.Asset{
			{ID: 1, AssetTag: "IT-0001", Status: models.AssetStored},
		}, nil)

		c, w := setupContext(http.MethodGet, "/assets?status=stored", nil)
		handler.ListAssets(c)

		assert.Equal(t, http.StatusOK, w.Code)
		reader.AssertExpectations(t)
	})
}

func TestGetAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("tombstoned asset hidden by default", func(t *testing.T) {
		service := new(MockAssetService)
		reader := new(MockAssetReader)
		handler := NewHandler(service, reader)

		reader.On("GetAsset", 7, false).Return(nil, apperrors.NotFound("asset 7 not found"))

		c, w := setupContext(http.MethodGet, "/assets/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		handler.GetAsset(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		reader.AssertExpectations(t)
	})

	t.Run("tombstoned asset visible on request", func(t *testing.T) {
		service := new(MockAssetService)
		reader := new(MockAssetReader)
		handler := NewHandler(service, reader)

		reader.On("GetAsset", 7, true).Return(&models.Asset{ID: 7, AssetTag: "IT-0007"}, nil)

		c, w := setupContext(http.MethodGet, "/assets/7?include_deleted=true", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		handler.GetAsset(c)

		assert.Equal(t, http.StatusOK, w.Code)
		reader.AssertExpectations(t)
	})
}

func TestDeleteAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("second delete fails", func(t *testing.T) {
		service := new(MockAssetService)
		reader := new(MockAssetReader)
		handler := NewHandler(service, reader)

		service.On("SoftDeleteAsset", 7, mock.Anything).
			Return(apperrors.NotFound("assets record 7 not found"))

		c, w := setupContext(http.MethodDelete, "/assets/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}
		handler.DeleteAsset(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		service.AssertExpectations(t)
	})
}
