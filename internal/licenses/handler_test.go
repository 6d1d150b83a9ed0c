package licenses

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

type MockLicenseService struct {
	mock.Mock
}

func (m *MockLicenseService) CreateLicense(req models.CreateLicenseRequest, actor models.Actor) (*models.SoftwareLicense, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SoftwareLicense), args.Error(1)
}

func (m *MockLicenseService) UpdateLicense(id int, req models.UpdateLicenseRequest, actor models.Actor) (*models.SoftwareLicense, error) {
	args := m.Called(id, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SoftwareLicense), args.Error(1)
}

func (m *MockLicenseService) SoftDeleteLicense(id int, actor models.Actor) error {
	args := m.Called(id, actor)
	return args.Error(0)
}

func (m *MockLicenseService) AssignLicense(req models.AssignLicenseRequest, actor models.Actor) (*models.LicenseAssignment, error) {
	args := m.Called(req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LicenseAssignment), args.Error(1)
}

func (m *MockLicenseService) RemoveAssignment(id int, actor models.Actor) error {
	args := m.Called(id, actor)
	return args.Error(0)
}

type MockLicenseReader struct {
	mock.Mock
}

func (m *MockLicenseReader) GetLicense(id int, includeDeleted bool) (*models.SoftwareLicense, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SoftwareLicense), args.Error(1)
}

func (m *MockLicenseReader) GetLicenses() ([]models.SoftwareLicense, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SoftwareLicense), args.Error(1)
}

func (m *MockLicenseReader) GetAssignment(id int, includeDeleted bool) (*models.LicenseAssignment, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LicenseAssignment), args.Error(1)
}

func (m *MockLicenseReader) GetAssignments() ([]models.LicenseAssignment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LicenseAssignment), args.Error(1)
}

func setupContext(body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "1")
	c.Set("role", "manager")

	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/license-assignments", &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func intPtr(v int) *int {
	return &v
}

func TestAssignLicense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		payload        models.AssignLicenseRequest
		setupMock      func(service *MockLicenseService)
		expectedStatus int
	}{
		{
			name:    "seat granted",
			payload: models.AssignLicenseRequest{LicenseID: 5, UserID: intPtr(3)},
			setupMock: func(service *MockLicenseService) {
				service.On("AssignLicense", mock.Anything, mock.Anything).Return(&models.LicenseAssignment{
					ID:        1,
					LicenseID: 5,
					UserID:    intPtr(3),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "no seats left",
			payload: models.AssignLicenseRequest{LicenseID: 5, UserID: intPtr(3)},
			setupMock: func(service *MockLicenseService) {
				service.On("AssignLicense", mock.Anything, mock.Anything).
					Return(nil, apperrors.Capacity("no seats available: 10 of 10 in use"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "both targets set",
			payload: models.AssignLicenseRequest{LicenseID: 5, AssetID: intPtr(2), UserID: intPtr(3)},
			setupMock: func(service *MockLicenseService) {
				service.On("AssignLicense", mock.Anything, mock.Anything).
					Return(nil, apperrors.Validation("license must be assigned to exactly one of asset_id or user_id"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockLicenseService)
			reader := new(MockLicenseReader)
			handler := NewHandler(service, reader)
			tt.setupMock(service)

			c, w := setupContext(tt.payload)
			handler.AssignLicense(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestUpdateLicense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("seat shrink below usage rejected", func(t *testing.T) {
		service := new(MockLicenseService)
		reader := new(MockLicenseReader)
		handler := NewHandler(service, reader)

		service.On("UpdateLicense", 5, mock.Anything, mock.Anything).
			Return(nil, apperrors.Capacity("seats_total cannot drop below 7 seats in use"))

		c, w := setupContext(models.UpdateLicenseRequest{SeatsTotal: intPtr(3)})
		c.Params = gin.Params{{Key: "id", Value: "5"}}
		handler.UpdateLicense(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		service.AssertExpectations(t)
	})
}
