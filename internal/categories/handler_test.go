package categories

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(req models.CreateCategoryRequest, actor models.Actor) (*models.Category, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(id int, req models.UpdateCategoryRequest, actor models.Actor) (*models.Category, error) {
	args := m.Called(id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) SoftDeleteCategory(id int, actor models.Actor) error {
	args := m.Called(id, actor)
	return args.Error(0)
}

type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) GetCategory(id int, includeDeleted bool) (*models.Category, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryReader) GetCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func intPtr(v int) *int {
	return &v
}

func TestUpdateCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        models.UpdateCategoryRequest
		setupMock      func(service *MockCategoryService)
		expectedStatus int
	}{
		{
			name:    "reparent accepted",
			payload: models.UpdateCategoryRequest{ParentID: intPtr(1)},
			setupMock: func(service *MockCategoryService) {
				service.On("UpdateCategory", 3, mock.Anything, mock.Anything).Return(&models.Category{
					ID:       3,
					Name:     "Laptops",
					ParentID: intPtr(1),
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "cycle rejected",
			payload: models.UpdateCategoryRequest{ParentID: intPtr(5)},
			setupMock: func(service *MockCategoryService) {
				service.On("UpdateCategory", 3, mock.Anything, mock.Anything).
					Return(nil, apperrors.Validation("category parent change would create a cycle"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockCategoryService)
			reader := new(MockCategoryReader)
			handler := NewHandler(service, reader)
			tt.setupMock(service)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("userID", "1")
			c.Set("role", "manager")

			var buf bytes.Buffer
			json.NewEncoder(&buf).Encode(tt.payload)
			c.Request = httptest.NewRequest(http.MethodPatch, "/categories/3", &buf)
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "3"}}

			handler.UpdateCategory(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}
